package question

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/bandwise/internal/skill"
)

//go:embed archive.yaml
var archiveYAML []byte

// Repository is read access to archived questions.
type Repository interface {
	// Query returns every archived question of the skill whose type matches
	// questionType. An empty questionType matches all types.
	Query(sk skill.Skill, questionType string) []Question
}

// Catalog is an in-memory Repository loaded from YAML.
type Catalog struct {
	bySkill map[skill.Skill][]Question
}

// catalogEntry is the on-disk shape of one archived question.
type catalogEntry struct {
	Type        string   `yaml:"type"`
	Question    string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
	Difficulty  string   `yaml:"difficulty"`
	Passage     string   `yaml:"passage"`
}

// DefaultCatalog loads the archive compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(archiveYAML))
}

// LoadCatalog parses a YAML document mapping skill names to question lists.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var raw map[string][]catalogEntry
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode archive: %w", err)
	}

	c := &Catalog{bySkill: make(map[skill.Skill][]Question)}
	for name, entries := range raw {
		sk, err := skill.ParseSkill(name)
		if err != nil {
			return nil, fmt.Errorf("archive section %q: %w", name, err)
		}
		for i, e := range entries {
			q, err := e.toQuestion(sk)
			if err != nil {
				return nil, fmt.Errorf("archive %s[%d]: %w", sk, i, err)
			}
			c.bySkill[sk] = append(c.bySkill[sk], q)
		}
	}
	return c, nil
}

func (e catalogEntry) toQuestion(sk skill.Skill) (Question, error) {
	prompt := strings.TrimSpace(e.Question)
	if prompt == "" {
		return Question{}, errors.New("empty question")
	}
	diff, err := skill.ParseDifficulty(e.Difficulty)
	if err != nil {
		return Question{}, err
	}
	return Question{
		Skill:         sk,
		Type:          strings.TrimSpace(e.Type),
		Difficulty:    diff,
		Prompt:        prompt,
		Choices:       e.Options,
		CorrectAnswer: strings.TrimSpace(e.Answer),
		Explanation:   strings.TrimSpace(e.Explanation),
		Passage:       strings.TrimSpace(e.Passage),
		Origin:        OriginArchive,
	}, nil
}

// Query implements Repository. Type comparison ignores case.
func (c *Catalog) Query(sk skill.Skill, questionType string) []Question {
	var out []Question
	for _, q := range c.bySkill[sk] {
		if questionType != "" && !strings.EqualFold(q.Type, questionType) {
			continue
		}
		q.Choices = slices.Clone(q.Choices)
		out = append(out, q)
	}
	return out
}

// Count returns the number of archived questions for sk.
func (c *Catalog) Count(sk skill.Skill) int {
	return len(c.bySkill[sk])
}
