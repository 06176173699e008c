package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicBackend struct {
	client anthropic.Client
}

// NewAnthropic returns a Client backed by the Anthropic Messages API.
func NewAnthropic(cfg AnthropicConfig, opts ...option.RequestOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: API key is required")
	}
	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return &Client{
		name:  "anthropic",
		model: resolveModel(cfg.Model),
		be:    &anthropicBackend{client: anthropic.NewClient(opts...)},
	}, nil
}

func (b *anthropicBackend) complete(ctx context.Context, model string, req Request) (completion, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(req.MaxTokens),
	}
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(block))
		} else {
			params.Messages = append(params.Messages, anthropic.NewUserMessage(block))
		}
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: req.Schema.Definition},
		}
	}

	msg, err := b.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return completion{}, classifyStatus(apiErr.StatusCode, apiErr.Response, err)
		}
		return completion{}, &ErrProviderUnavailable{Err: err}
	}

	out := completion{
		Model: string(msg.Model),
		Usage: newUsage(int(msg.Usage.InputTokens), int(msg.Usage.OutputTokens)),
		Stop:  StopEnd,
	}
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		out.Stop = StopMaxTokens
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			out.Text = block.Text
			return out, nil
		}
	}
	return completion{}, errNoText("anthropic")
}
