package scoring

import (
	"errors"
	"fmt"

	"github.com/abhisek/bandwise/internal/skill"
)

// ErrInvalidPlan is returned for a target band outside 1-9 (or NaN) or a
// duration outside 1-MaxPlanWeeks weeks.
var ErrInvalidPlan = errors.New("invalid study plan request")

// Allocation is the daily practice time for one area.
type Allocation struct {
	Area    string `json:"area"`
	Minutes int    `json:"minutes"`
}

// Resource lists study material for a skill.
type Resource struct {
	Skill skill.Skill `json:"skill"`
	Items []string    `json:"items"`
}

// Plan is a study plan. The daily schedule does not depend on the target or
// the level; the level is informational.
type Plan struct {
	TargetBand    float64      `json:"target_band"`
	CurrentLevel  skill.Level  `json:"current_level"`
	DurationWeeks int          `json:"duration_weeks"`
	DailySchedule []Allocation `json:"daily_schedule"`
	WeeklyGoals   []string     `json:"weekly_goals"`
	Resources     []Resource   `json:"resources"`
}

// TotalDailyMinutes sums the daily schedule.
func (p Plan) TotalDailyMinutes() int {
	var n int
	for _, a := range p.DailySchedule {
		n += a.Minutes
	}
	return n
}

var dailySchedule = []Allocation{
	{Area: "listening", Minutes: 30},
	{Area: "reading", Minutes: 45},
	{Area: "writing", Minutes: 30},
	{Area: "speaking", Minutes: 20},
	{Area: "vocabulary", Minutes: 15},
}

var resources = []Resource{
	{Skill: skill.Listening, Items: []string{"BBC Learning English", "IELTS Podcasts"}},
	{Skill: skill.Reading, Items: []string{"Academic articles", "Cambridge IELTS books"}},
	{Skill: skill.Writing, Items: []string{"Essay templates", "Task 1 samples"}},
	{Skill: skill.Speaking, Items: []string{"Recording practice", "Topic discussions"}},
}

// MaxPlanWeeks bounds the plan length; one weekly goal is produced per week.
const MaxPlanWeeks = 104

// BuildPlan returns the plan for reaching target in weeks.
func BuildPlan(target float64, level skill.Level, weeks int) (Plan, error) {
	// Written as a negated range so NaN is rejected too.
	if !(target >= minBand && target <= maxBand) {
		return Plan{}, fmt.Errorf("%w: target band %.1f outside %.0f-%.0f", ErrInvalidPlan, target, minBand, maxBand)
	}
	if weeks < 1 || weeks > MaxPlanWeeks {
		return Plan{}, fmt.Errorf("%w: duration must be 1-%d weeks, got %d", ErrInvalidPlan, MaxPlanWeeks, weeks)
	}

	p := Plan{
		TargetBand:    target,
		CurrentLevel:  level,
		DurationWeeks: weeks,
		DailySchedule: append([]Allocation(nil), dailySchedule...),
		WeeklyGoals:   make([]string, 0, weeks),
		Resources:     make([]Resource, 0, len(resources)),
	}
	for week := 1; week <= weeks; week++ {
		p.WeeklyGoals = append(p.WeeklyGoals, fmt.Sprintf("Week %d: Focus on %s", week, weekFocus(week)))
	}
	for _, r := range resources {
		p.Resources = append(p.Resources, Resource{Skill: r.Skill, Items: append([]string(nil), r.Items...)})
	}
	return p, nil
}

func weekFocus(week int) string {
	switch {
	case week <= 2:
		return "basic skills"
	case week <= 4:
		return "advanced techniques"
	default:
		return "mock tests and refinement"
	}
}
