package session

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/bandwise/internal/question"
	"github.com/abhisek/bandwise/internal/scoring"
	"github.com/abhisek/bandwise/internal/skill"
	"github.com/abhisek/bandwise/internal/store"
	"github.com/abhisek/bandwise/internal/translate"
)

// DefaultQuestionType is used when a generation request names no type.
const DefaultQuestionType = "general"

// Options configures a Service. Every field is optional.
type Options struct {
	// Translator renders prompts for Arabic sessions. Defaults to the
	// phrasebook.
	Translator translate.Translator

	// Events receives one record per submitted answer.
	Events store.EventRepo

	// ExternalTimeout bounds each translation call.
	ExternalTimeout time.Duration

	Logger *slog.Logger
}

// Service implements the practice operations on top of a Store.
//
// Calls to the generator and translator never hold a session lock. The
// session is only changed once those calls have returned or fallen back.
type Service struct {
	sessions   *Store
	acquirer   *question.Acquirer
	translator translate.Translator
	events     store.EventRepo
	timeout    time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// NewService wires a Service.
func NewService(st *Store, acq *question.Acquirer, opts Options) *Service {
	svc := &Service{
		sessions:   st,
		acquirer:   acq,
		translator: opts.Translator,
		events:     opts.Events,
		timeout:    opts.ExternalTimeout,
		logger:     opts.Logger,
		now:        time.Now,
	}
	if svc.translator == nil {
		svc.translator = translate.Phrasebook{}
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.DiscardHandler)
	}
	return svc
}

// Store returns the underlying session store.
func (svc *Service) Store() *Store { return svc.sessions }

// Session returns the session of userID, creating it if needed.
func (svc *Service) Session(userID string) (*Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	return svc.sessions.GetOrCreate(userID), nil
}

// StartPractice serves an archived question of any type for sk.
func (svc *Service) StartPractice(ctx context.Context, s *Session, sk skill.Skill) (question.Question, error) {
	return svc.ArchivedQuestion(ctx, s, sk, "")
}

// ArchivedQuestion serves an archived question. questionType is advisory.
func (svc *Service) ArchivedQuestion(ctx context.Context, s *Session, sk skill.Skill, questionType string) (question.Question, error) {
	if !sk.Valid() {
		return question.Question{}, skill.ErrUnknownSkill
	}
	q := svc.acquirer.Archived(ctx, sk, questionType)
	return svc.serve(ctx, s, q), nil
}

// GenerateQuestion serves a generated question, or an archived one of the
// same skill when generation is unavailable.
func (svc *Service) GenerateQuestion(ctx context.Context, s *Session, sk skill.Skill, questionType string, diff skill.Difficulty) (question.Question, error) {
	if !sk.Valid() {
		return question.Question{}, skill.ErrUnknownSkill
	}
	if strings.TrimSpace(questionType) == "" {
		questionType = DefaultQuestionType
	}
	if diff == "" {
		diff = skill.Medium
	}
	q := svc.acquirer.Generated(ctx, question.Request{
		Skill:      sk,
		Type:       questionType,
		Difficulty: diff,
		Prior:      s.priorPrompts(sk),
	})
	return svc.serve(ctx, s, q), nil
}

// Skip replaces the pending question with another archived question of the
// current practice skill.
func (svc *Service) Skip(ctx context.Context, s *Session) (question.Question, error) {
	sk := s.currentPracticeSkill()
	if sk == "" {
		return question.Question{}, ErrNoPracticeSkill
	}
	return svc.ArchivedQuestion(ctx, s, sk, "")
}

// CurrentQuestion returns the pending question, if any.
func (svc *Service) CurrentQuestion(s *Session) (question.Question, bool) {
	return s.currentQuestion()
}

// serve translates q for Arabic sessions and makes it the pending question.
func (svc *Service) serve(ctx context.Context, s *Session, q question.Question) question.Question {
	if s.displayLanguage() == Arabic && q.TranslatedPrompt == "" {
		q = q.WithTranslation(svc.translate(ctx, q.Prompt))
	}
	s.assign(q)

	svc.logger.Info("question served",
		"user_id", s.UserID,
		"skill", q.Skill,
		"type", q.Type,
		"source", q.Origin,
	)
	return q
}

// SubmitAnswer grades text against the pending question and records it.
func (svc *Service) SubmitAnswer(ctx context.Context, s *Session, text string) (scoring.Outcome, error) {
	q, out, err := s.answer(text, svc.now())
	if err != nil {
		return scoring.Outcome{}, err
	}

	svc.logger.Info("answer recorded",
		"user_id", s.UserID,
		"skill", q.Skill,
		"source", q.Origin,
		"correct", out.Correct,
	)

	if svc.events != nil {
		err := svc.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     s.ID,
			UserID:        s.UserID,
			Skill:         string(q.Skill),
			QuestionType:  q.Type,
			Difficulty:    string(q.Difficulty),
			Source:        string(q.Origin),
			QuestionText:  q.Prompt,
			CorrectAnswer: q.CorrectAnswer,
			Submitted:     text,
			Correct:       out.Correct,
			Score:         out.Score,
		})
		if err != nil {
			svc.logger.Warn("record answer event", "user_id", s.UserID, "error", err)
		}
	}
	return out, nil
}

// History returns a copy of the per-skill scores in recorded order.
func (svc *Service) History(s *Session) scoring.History {
	return s.historyCopy()
}

// Attempts returns a copy of the practice log.
func (svc *Service) Attempts(s *Session) []Attempt {
	return s.attemptsCopy()
}

// Projection estimates bands from the session history.
func (svc *Service) Projection(s *Session) scoring.Projection {
	return scoring.Project(s.historyCopy())
}

// Level classifies the session's overall accuracy.
func (svc *Service) Level(s *Session) skill.Level {
	return scoring.CurrentLevel(s.historyCopy())
}

// StudyPlan builds a plan toward target over weeks, labelled with the
// session's current level.
func (svc *Service) StudyPlan(s *Session, target float64, weeks int) (scoring.Plan, error) {
	return scoring.BuildPlan(target, svc.Level(s), weeks)
}

// SetDisplayLanguage changes the language questions are shown in. It
// affects questions served afterwards.
func (svc *Service) SetDisplayLanguage(s *Session, lang Language) error {
	if lang != English && lang != Arabic {
		return ErrUnknownLanguage
	}
	s.setLanguage(lang)
	svc.logger.Info("display language changed", "user_id", s.UserID, "language", lang)
	return nil
}

// Translate renders text in target. English returns text unchanged. It
// never fails for a known language; failures end in a marked placeholder.
func (svc *Service) Translate(ctx context.Context, text string, target Language) (string, error) {
	switch target {
	case English:
		return text, nil
	case Arabic:
		return svc.translate(ctx, text), nil
	default:
		return "", ErrUnknownLanguage
	}
}

func (svc *Service) translate(ctx context.Context, text string) string {
	if svc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, svc.timeout)
		defer cancel()
	}
	out, err := svc.translator.Translate(ctx, text)
	if err != nil {
		svc.logger.Warn("translation failed, using phrasebook", "error", err)
		out, _ = translate.Phrasebook{}.Translate(ctx, text)
	}
	return out
}
