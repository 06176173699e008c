package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type geminiBackend struct {
	client *genai.Client
}

// NewGemini returns a Client for the Gemini API.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{
		name:  "gemini",
		model: resolveModel(cfg.Model),
		be:    &geminiBackend{client: client},
	}, nil
}

func (b *geminiBackend) complete(ctx context.Context, model string, req Request) (completion, error) {
	conf := &genai.GenerateContentConfig{MaxOutputTokens: int32(req.MaxTokens)}
	if req.Temperature > 0 {
		conf.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.System != "" {
		conf.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		conf.ResponseMIMEType = "application/json"
		conf.ResponseSchema = geminiSchema(req.Schema.Definition)
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	res, err := b.client.Models.GenerateContent(ctx, model, contents, conf)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return completion{}, classifyStatus(apiErr.Code, nil, err)
		}
		return completion{}, &ErrProviderUnavailable{Err: err}
	}

	text := res.Text()
	if text == "" {
		return completion{}, errNoText("gemini")
	}
	out := completion{Text: text, Model: res.ModelVersion, Stop: StopEnd}
	if u := res.UsageMetadata; u != nil {
		out.Usage = newUsage(int(u.PromptTokenCount), int(u.CandidatesTokenCount))
	}
	if len(res.Candidates) > 0 && res.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		out.Stop = StopMaxTokens
	}
	return out, nil
}

var geminiTypes = map[string]genai.Type{
	"string":  genai.TypeString,
	"number":  genai.TypeNumber,
	"integer": genai.TypeInteger,
	"boolean": genai.TypeBoolean,
	"array":   genai.TypeArray,
	"object":  genai.TypeObject,
}

// geminiSchema converts the JSON Schema subset used by the question and
// translation schemas. Keywords Gemini does not accept, such as
// additionalProperties and minItems, are dropped; Client still validates
// the reply against the full schema.
func geminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{Type: genai.TypeString}
	if t, ok := def["type"].(string); ok {
		if gt, ok := geminiTypes[t]; ok {
			s.Type = gt
		}
	}
	s.Description, _ = def["description"].(string)

	if props, ok := def["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if sub, ok := raw.(map[string]any); ok {
				s.Properties[name] = geminiSchema(sub)
			}
		}
	}
	s.Required = stringList(def["required"])
	s.Enum = stringList(def["enum"])
	if items, ok := def["items"].(map[string]any); ok {
		s.Items = geminiSchema(items)
	}
	return s
}

func stringList(v any) []string {
	var out []string
	switch vals := v.(type) {
	case []any:
		for _, x := range vals {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, vals...)
	}
	return out
}
