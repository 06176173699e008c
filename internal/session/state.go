package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/bandwise/internal/question"
	"github.com/abhisek/bandwise/internal/scoring"
	"github.com/abhisek/bandwise/internal/skill"
)

// maxPriorPrompts bounds the prompts handed to the generator for dedup.
const maxPriorPrompts = 8

// Language is the display language of a session.
type Language string

const (
	English Language = "english"
	Arabic  Language = "arabic"
)

// ParseLanguage accepts the language name or its ISO 639-1 code.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en":
		return English, nil
	case "arabic", "ar":
		return Arabic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
}

// Attempt is one answered question in the practice log.
type Attempt struct {
	At         time.Time        `json:"at"`
	Skill      skill.Skill      `json:"skill"`
	Type       string           `json:"type"`
	Difficulty skill.Difficulty `json:"difficulty"`
	Prompt     string           `json:"prompt"`
	Origin     question.Origin  `json:"origin"`
	Correct    bool             `json:"is_correct"`
	Score      int              `json:"score"`
}

// Session is the practice state of one user. All fields behind mu are only
// touched through Session methods, which keeps one pending question and an
// append-only history under concurrent use.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	mu            sync.Mutex
	lastSeen      time.Time
	current       *question.Question
	practiceSkill skill.Skill
	history       scoring.History
	attempts      []Attempt
	language      Language
	historyCap    int
}

func newSession(userID string, historyCap int, now time.Time) *Session {
	return &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		CreatedAt:  now,
		lastSeen:   now,
		history:    make(scoring.History),
		language:   English,
		historyCap: historyCap,
	}
}

// View is a point-in-time copy of a session for callers.
type View struct {
	SessionID       string             `json:"session_id"`
	UserID          string             `json:"user_id"`
	PracticeSkill   skill.Skill        `json:"practice_skill,omitempty"`
	CurrentQuestion *question.Question `json:"current_question,omitempty"`
	Language        Language           `json:"display_language"`
	Answered        int                `json:"answered"`
	CreatedAt       time.Time          `json:"created_at"`
	LastSeen        time.Time          `json:"last_seen"`
}

// View returns a copy of the session's state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		SessionID:     s.ID,
		UserID:        s.UserID,
		PracticeSkill: s.practiceSkill,
		Language:      s.language,
		Answered:      len(s.attempts),
		CreatedAt:     s.CreatedAt,
		LastSeen:      s.lastSeen,
	}
	if s.current != nil {
		q := *s.current
		v.CurrentQuestion = &q
	}
	return v
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// assign makes q the pending question, replacing any earlier one.
func (s *Session) assign(q question.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &q
	s.practiceSkill = q.Skill
}

// currentQuestion returns the pending question, if any.
func (s *Session) currentQuestion() (question.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return question.Question{}, false
	}
	return *s.current, true
}

func (s *Session) displayLanguage() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *Session) setLanguage(l Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = l
}

func (s *Session) currentPracticeSkill() skill.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.practiceSkill
}

// answer grades the pending question, records the result and clears it.
func (s *Session) answer(text string, now time.Time) (question.Question, scoring.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return question.Question{}, scoring.Outcome{}, ErrNoPendingQuestion
	}
	q := *s.current
	out := scoring.Evaluate(q, text)

	s.history[q.Skill] = append(s.history[q.Skill], out.Score)
	if s.historyCap > 0 && len(s.history[q.Skill]) > s.historyCap {
		s.history[q.Skill] = s.history[q.Skill][len(s.history[q.Skill])-s.historyCap:]
	}

	s.attempts = append(s.attempts, Attempt{
		At:         now,
		Skill:      q.Skill,
		Type:       q.Type,
		Difficulty: q.Difficulty,
		Prompt:     q.Prompt,
		Origin:     q.Origin,
		Correct:    out.Correct,
		Score:      out.Score,
	})
	if limit := s.historyCap * len(skill.AllSkills()); s.historyCap > 0 && len(s.attempts) > limit {
		s.attempts = s.attempts[len(s.attempts)-limit:]
	}

	s.current = nil
	return q, out, nil
}

// historyCopy returns a deep copy of the score history.
func (s *Session) historyCopy() scoring.History {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := make(scoring.History, len(s.history))
	for sk, scores := range s.history {
		h[sk] = append([]int(nil), scores...)
	}
	return h
}

func (s *Session) attemptsCopy() []Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Attempt(nil), s.attempts...)
}

// priorPrompts returns the most recent prompts answered for sk.
func (s *Session) priorPrompts(sk skill.Skill) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for i := len(s.attempts) - 1; i >= 0 && len(out) < maxPriorPrompts; i-- {
		if s.attempts[i].Skill == sk {
			out = append(out, s.attempts[i].Prompt)
		}
	}
	// Oldest first, as the generator prompt lists them.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
