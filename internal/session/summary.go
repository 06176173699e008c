package session

import (
	"github.com/abhisek/bandwise/internal/skill"
)

// recentScores is how many of the latest scores a SkillSummary shows.
const recentScores = 5

// SkillSummary condenses the scores of one skill.
type SkillSummary struct {
	Skill   skill.Skill `json:"skill"`
	Count   int         `json:"count"`
	Average float64     `json:"average"`
	Recent  []int       `json:"recent"`
}

// Dashboard holds the headline progress figures of a session.
type Dashboard struct {
	TotalQuestions int     `json:"total_questions"`
	Accuracy       float64 `json:"accuracy"`
	PracticeDays   int     `json:"practice_days"`
	PredictedBand  float64 `json:"predicted_band"`
	Level          string  `json:"level"`
}

// ScoreSummary returns per-skill averages and recent scores for skills
// with at least one answer, in canonical skill order.
func (svc *Service) ScoreSummary(s *Session) []SkillSummary {
	h := s.historyCopy()
	out := []SkillSummary{}
	for _, sk := range skill.AllSkills() {
		scores := h[sk]
		if len(scores) == 0 {
			continue
		}
		var total int
		for _, v := range scores {
			total += v
		}
		recent := scores
		if len(recent) > recentScores {
			recent = recent[len(recent)-recentScores:]
		}
		out = append(out, SkillSummary{
			Skill:   sk,
			Count:   len(scores),
			Average: float64(total) / float64(len(scores)),
			Recent:  append([]int(nil), recent...),
		})
	}
	return out
}

// Dashboard computes totals over the practice log.
func (svc *Service) Dashboard(s *Session) Dashboard {
	attempts := s.attemptsCopy()

	d := Dashboard{
		TotalQuestions: len(attempts),
		PredictedBand:  svc.Projection(s).OverallBand,
		Level:          string(svc.Level(s)),
	}
	if len(attempts) == 0 {
		return d
	}

	days := make(map[string]struct{})
	var correct int
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
		days[a.At.Format("2006-01-02")] = struct{}{}
	}
	d.Accuracy = float64(correct) / float64(len(attempts))
	d.PracticeDays = len(days)
	return d
}
