package skill

import (
	"errors"
	"testing"
)

func TestParseSkill(t *testing.T) {
	tests := []struct {
		in      string
		want    Skill
		wantErr bool
	}{
		{"listening", Listening, false},
		{"  Reading ", Reading, false},
		{"WRITING", Writing, false},
		{"speaking", Speaking, false},
		{"grammar", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSkill(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSkill) {
					t.Fatalf("expected ErrUnknownSkill, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSkill(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGradable(t *testing.T) {
	if !Listening.Gradable() || !Reading.Gradable() {
		t.Error("listening and reading should be gradable")
	}
	if Writing.Gradable() || Speaking.Gradable() {
		t.Error("writing and speaking should not be gradable")
	}
}

func TestValid(t *testing.T) {
	for _, s := range AllSkills() {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Skill("Listening").Valid() {
		t.Error("non-canonical casing should not be valid")
	}
}

func TestParseDifficulty_DefaultsToMedium(t *testing.T) {
	d, err := ParseDifficulty("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != Medium {
		t.Errorf("expected medium, got %q", d)
	}
	if _, err := ParseDifficulty("extreme"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestLevelOrDefault(t *testing.T) {
	if got := LevelOrDefault("Advanced"); got != Advanced {
		t.Errorf("expected advanced, got %q", got)
	}
	if got := LevelOrDefault("expert"); got != Intermediate {
		t.Errorf("expected intermediate fallback, got %q", got)
	}
}

func TestSyllabus_CoversAllSkills(t *testing.T) {
	secs := Syllabus()
	if len(secs) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(secs))
	}
	for i, s := range AllSkills() {
		if secs[i].Skill != s {
			t.Errorf("section %d: expected %q, got %q", i, s, secs[i].Skill)
		}
		if len(QuestionTypes(s)) == 0 {
			t.Errorf("%q has no question types", s)
		}
	}
	if QuestionTypes(Skill("grammar")) != nil {
		t.Error("unknown skill should have no question types")
	}
}
