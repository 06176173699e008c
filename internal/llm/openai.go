package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openaiBackend speaks the chat completions protocol. OpenRouter and other
// compatible gateways reuse it with a different base URL.
type openaiBackend struct {
	client *openai.Client
}

// NewOpenAI returns a Client for the OpenAI API, or a compatible API when
// cfg.BaseURL is set.
func NewOpenAI(cfg OpenAIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	return newChatClient("openai", cfg.APIKey, cfg.BaseURL, resolveModel(cfg.Model)), nil
}

// NewOpenRouter returns a Client for OpenRouter. Models are OpenRouter
// "vendor/model" IDs and are not alias-resolved.
func NewOpenRouter(cfg OpenRouterConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter: API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	return newChatClient("openrouter", cfg.APIKey, baseURL, cfg.Model), nil
}

func newChatClient(name, key, baseURL, model string) *Client {
	conf := openai.DefaultConfig(key)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	return &Client{
		name:  name,
		model: model,
		be:    &openaiBackend{client: openai.NewClientWithConfig(conf)},
	}
}

func (b *openaiBackend) complete(ctx context.Context, model string, req Request) (completion, error) {
	chat := openai.ChatCompletionRequest{
		Model:               model,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
		Messages:            make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1),
	}
	if req.System != "" {
		chat.Messages = append(chat.Messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		chat.Messages = append(chat.Messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return completion{}, fmt.Errorf("openai: encode schema %q: %w", req.Schema.Name, err)
		}
		chat.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(def),
				Strict: true,
			},
		}
	}

	resp, err := b.client.CreateChatCompletion(ctx, chat)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return completion{}, classifyStatus(apiErr.HTTPStatusCode, nil, err)
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return completion{}, classifyStatus(reqErr.HTTPStatusCode, nil, err)
		}
		return completion{}, &ErrProviderUnavailable{Err: err}
	}
	if len(resp.Choices) == 0 {
		return completion{}, errNoText("openai")
	}

	choice := resp.Choices[0]
	out := completion{
		Text:  choice.Message.Content,
		Model: resp.Model,
		Usage: newUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens),
		Stop:  StopEnd,
	}
	if choice.FinishReason == openai.FinishReasonLength {
		out.Stop = StopMaxTokens
	}
	return out, nil
}
