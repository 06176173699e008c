package scoring

import (
	"math"

	"github.com/abhisek/bandwise/internal/skill"
)

const (
	minBand     = 1.0
	maxBand     = 9.0
	defaultBand = 5.0

	// Bands below improvementBelow need work; bands at or above
	// strengthFrom are strengths.
	improvementBelow = 6.0
	strengthFrom     = 7.0
)

// History maps a skill to its scores in the order they were recorded.
type History map[skill.Skill][]int

// SkillBand is the projected band of one skill.
type SkillBand struct {
	Skill skill.Skill `json:"skill"`
	Band  float64     `json:"band"`
}

// Projection is the estimated exam result for a practice history.
type Projection struct {
	Bands            []SkillBand `json:"section_scores"`
	OverallBand      float64     `json:"overall_band"`
	ImprovementAreas []SkillBand `json:"improvement_areas"`
	Strengths        []SkillBand `json:"strengths"`
}

// RoundHalfBand rounds v to the nearest half band, with halves going up:
// 6.25 becomes 6.5 and 6.75 becomes 7.0. The small tolerance keeps values
// such as 6.2499999999 from float arithmetic on the upper side.
func RoundHalfBand(v float64) float64 {
	return math.Floor(v*2+0.5+1e-9) / 2
}

// Band converts a mean score in [0,1] to the 1-9 scale, unrounded.
func Band(mean float64) float64 {
	return math.Min(maxBand, math.Max(minBand, mean*9))
}

// Project computes per-skill bands, the overall band and the skill
// classification. Skills without scores are left out. With no data at all
// the overall band is 5.0.
func Project(h History) Projection {
	p := Projection{
		Bands:            []SkillBand{},
		ImprovementAreas: []SkillBand{},
		Strengths:        []SkillBand{},
	}

	var sum float64
	for _, sk := range skill.AllSkills() {
		scores := h[sk]
		if len(scores) == 0 {
			continue
		}
		sb := SkillBand{Skill: sk, Band: RoundHalfBand(Band(mean(scores)))}
		p.Bands = append(p.Bands, sb)
		sum += sb.Band

		switch {
		case sb.Band < improvementBelow:
			p.ImprovementAreas = append(p.ImprovementAreas, sb)
		case sb.Band >= strengthFrom:
			p.Strengths = append(p.Strengths, sb)
		}
	}

	if len(p.Bands) == 0 {
		p.OverallBand = defaultBand
		return p
	}
	p.OverallBand = RoundHalfBand(sum / float64(len(p.Bands)))
	return p
}

// CurrentLevel classifies the mean of every recorded score across skills.
func CurrentLevel(h History) skill.Level {
	var total, n int
	for _, scores := range h {
		for _, s := range scores {
			total += s
			n++
		}
	}
	if n == 0 {
		return skill.Intermediate
	}
	m := float64(total) / float64(n)
	switch {
	case m < 0.5:
		return skill.Beginner
	case m <= 0.75:
		return skill.Intermediate
	default:
		return skill.Advanced
	}
}

func mean(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	var total int
	for _, s := range scores {
		total += s
	}
	return float64(total) / float64(len(scores))
}
