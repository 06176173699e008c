package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
)

var translationTestSchema = &Schema{
	Name: "translation",
	Definition: map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"translation": map[string]any{"type": "string"}},
		"required":             []any{"translation"},
		"additionalProperties": false,
	},
}

// anthropicStub serves a Messages API reply and records the decoded request
// body.
func anthropicStub(t *testing.T, status int, header http.Header, reply map[string]any) (*Client, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		for k, v := range header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)

	c, err := NewAnthropic(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	if err != nil {
		t.Fatal(err)
	}
	return c, &got
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func anthropicError(kind, msg string) map[string]any {
	return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": msg}}
}

func TestAnthropicTranslation(t *testing.T) {
	c, body := anthropicStub(t, http.StatusOK, nil,
		anthropicMessage(`{"translation":"ما الوقت الذي تغلق فيه المكتبة؟"}`, "end_turn"))

	resp, err := c.Generate(context.Background(), Request{
		System:    "Translate into Modern Standard Arabic.",
		Messages:  []Message{{Role: RoleUser, Content: "What time does the library close?"}},
		Schema:    translationTestSchema,
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage != (Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}) {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("stop = %q, want %q", resp.StopReason, StopEnd)
	}
	if c.Backend() != "anthropic" || c.ModelID() != "claude-haiku-4-5-20251001" {
		t.Errorf("backend/model = %s/%s", c.Backend(), c.ModelID())
	}
	if (*body)["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("sent model = %v", (*body)["model"])
	}
	if (*body)["max_tokens"] != float64(512) {
		t.Errorf("sent max_tokens = %v", (*body)["max_tokens"])
	}
}

func TestAnthropicRequestModelOverride(t *testing.T) {
	c, body := anthropicStub(t, http.StatusOK, nil, anthropicMessage("Good morning", "end_turn"))

	_, err := c.Generate(context.Background(), Request{
		Model:     "claude-sonnet",
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 64,
	})
	if err != nil {
		t.Fatal(err)
	}
	if (*body)["model"] != "claude-sonnet-4-5-20250929" {
		t.Errorf("sent model = %v, want alias resolved", (*body)["model"])
	}
}

func TestAnthropicTruncatedStructuredReply(t *testing.T) {
	c, _ := anthropicStub(t, http.StatusOK, nil, anthropicMessage(`{"translation":"ما الوق`, "max_tokens"))

	_, err := c.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "What time does the library close?"}},
		Schema:    translationTestSchema,
		MaxTokens: 8,
	})
	var tr *ErrTruncated
	if !errors.As(err, &tr) {
		t.Fatalf("err = %v, want *ErrTruncated", err)
	}
	if tr.MaxTokens != 8 {
		t.Errorf("MaxTokens = %d, want 8", tr.MaxTokens)
	}
}

func TestAnthropicRateLimitRetryAfter(t *testing.T) {
	c, _ := anthropicStub(t, http.StatusTooManyRequests, http.Header{"Retry-After": {"7"}},
		anthropicError("rate_limit_error", "Rate limit exceeded"))

	_, err := c.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, MaxTokens: 10})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want *ErrRateLimit", err, err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %s, want 7s", rl.RetryAfter)
	}
}

func TestAnthropicServerError(t *testing.T) {
	c, _ := anthropicStub(t, http.StatusInternalServerError, nil, anthropicError("api_error", "Internal server error"))

	_, err := c.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, MaxTokens: 10})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want *ErrProviderUnavailable", err, err)
	}
}

func TestNewAnthropicRequiresKey(t *testing.T) {
	if _, err := NewAnthropic(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
