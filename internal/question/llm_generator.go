package question

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/bandwise/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLMGenerator creates a new LLMGenerator with the given provider and config.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Passage       string   `json:"passage"`
}

// Generate produces a single question for the given input context.
// Provider failures are returned as they come from the provider; parse and
// validation failures match ErrGenerationMalformed.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestion)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema: QuestionSchema,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse LLM response: %v", ErrGenerationMalformed, err)
	}

	q := &Question{
		Skill:         input.Skill,
		Type:          input.Type,
		Difficulty:    input.Difficulty,
		Prompt:        strings.TrimSpace(raw.Question),
		Choices:       raw.Options,
		CorrectAnswer: strings.TrimSpace(raw.CorrectAnswer),
		Explanation:   strings.TrimSpace(raw.Explanation),
		Passage:       strings.TrimSpace(raw.Passage),
		Origin:        OriginGenerated,
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}
