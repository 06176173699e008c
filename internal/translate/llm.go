package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/bandwise/internal/llm"
)

var translationSchema = &llm.Schema{
	Name:        "translation",
	Description: "An Arabic translation of English IELTS practice text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"description": "The text translated into Modern Standard Arabic",
			},
		},
		"required":             []any{"translation"},
		"additionalProperties": false,
	},
}

const translateSystemPrompt = `You translate English IELTS practice material into Modern Standard Arabic for learners in Oman.
Translate faithfully. Keep option labels such as "A)" and any numbers unchanged. Do not answer the question.`

// LLM translates through a language model provider.
type LLM struct {
	provider llm.Provider
}

// NewLLM returns an LLM translator, or nil when provider is nil.
func NewLLM(provider llm.Provider) *LLM {
	if provider == nil {
		return nil
	}
	return &LLM{provider: provider}
}

// Translate implements Translator.
func (t *LLM) Translate(ctx context.Context, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTranslate)
	resp, err := t.provider.Generate(ctx, llm.Request{
		System:   translateSystemPrompt,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: text}},
		Schema:   translationSchema,
	})
	if err != nil {
		return "", fmt.Errorf("%w: llm: %v", ErrUnavailable, err)
	}

	var out struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("%w: llm: decode: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(out.Translation) == "" {
		return "", fmt.Errorf("%w: llm: empty translation", ErrUnavailable)
	}
	return out.Translation, nil
}
