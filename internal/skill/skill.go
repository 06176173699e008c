package skill

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSkill is returned when a skill name is not one of the four
// exam sections.
var ErrUnknownSkill = errors.New("unknown skill")

// ErrUnknownDifficulty is returned for a difficulty outside easy/medium/hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ErrUnknownLevel is returned by ParseLevel for an unrecognised level.
var ErrUnknownLevel = errors.New("unknown level")

// Skill is one of the four IELTS exam sections.
type Skill string

const (
	Listening Skill = "listening"
	Reading   Skill = "reading"
	Writing   Skill = "writing"
	Speaking  Skill = "speaking"
)

// AllSkills returns all skills in display order.
func AllSkills() []Skill {
	return []Skill{Listening, Reading, Writing, Speaking}
}

// ParseSkill normalizes s and maps it to a Skill.
func ParseSkill(s string) (Skill, error) {
	switch sk := Skill(strings.ToLower(strings.TrimSpace(s))); sk {
	case Listening, Reading, Writing, Speaking:
		return sk, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSkill, s)
	}
}

// Valid reports whether s is one of the four sections.
func (s Skill) Valid() bool {
	switch s {
	case Listening, Reading, Writing, Speaking:
		return true
	}
	return false
}

// Gradable reports whether questions of this skill normally carry a single
// correct answer. Writing and speaking prompts are open-ended.
func (s Skill) Gradable() bool {
	return s == Listening || s == Reading
}

// DisplayName returns the title-cased name.
func (s Skill) DisplayName() string {
	switch s {
	case Listening:
		return "Listening"
	case Reading:
		return "Reading"
	case Writing:
		return "Writing"
	case Speaking:
		return "Speaking"
	default:
		return string(s)
	}
}

// Difficulty is the requested difficulty of a question.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps s to a Difficulty. Empty input yields Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Medium, nil
	}
	switch d := Difficulty(s); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Level is the learner's estimated current level.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// ParseLevel maps s to a Level.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case Beginner, Intermediate, Advanced:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// LevelOrDefault is ParseLevel with Intermediate as the fallback.
func LevelOrDefault(s string) Level {
	l, err := ParseLevel(s)
	if err != nil {
		return Intermediate
	}
	return l
}
