package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// chatStub serves chat completions and records the decoded request body.
func chatStub(t *testing.T, status int, reply map[string]any) (string, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/v1", &got
}

func chatReply(model, content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   model,
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

const listeningQuestionJSON = `{"question":"What time does the library close on Saturdays?","options":["A) 4 pm","B) 5 pm","C) 6 pm"],"correct_answer":"B","explanation":"The librarian says five o'clock.","passage":""}`

var questionTestSchema = &Schema{
	Name: "ielts-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":       map[string]any{"type": "string"},
			"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"correct_answer": map[string]any{"type": "string"},
			"explanation":    map[string]any{"type": "string"},
			"passage":        map[string]any{"type": "string"},
		},
		"required":             []any{"question", "options", "correct_answer", "explanation", "passage"},
		"additionalProperties": false,
	},
}

func TestOpenAIQuestionGeneration(t *testing.T) {
	url, body := chatStub(t, http.StatusOK, chatReply("gpt-4o-mini-2024-07-18", listeningQuestionJSON, "stop"))
	c, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", Model: "gpt-mini", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := c.Generate(context.Background(), Request{
		System:    "You are an IELTS examiner.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate a listening question."}},
		Schema:    questionTestSchema,
		MaxTokens: 900,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 65 || resp.StopReason != StopEnd {
		t.Errorf("usage/stop = %+v/%q", resp.Usage, resp.StopReason)
	}
	if resp.Model != "gpt-4o-mini-2024-07-18" {
		t.Errorf("model = %q", resp.Model)
	}

	if (*body)["model"] != "gpt-4o-mini" {
		t.Errorf("sent model = %v", (*body)["model"])
	}
	msgs, _ := (*body)["messages"].([]any)
	if len(msgs) != 2 || msgs[0].(map[string]any)["role"] != "system" {
		t.Errorf("messages = %v, want system then user", msgs)
	}
	format, _ := (*body)["response_format"].(map[string]any)
	schema, _ := format["json_schema"].(map[string]any)
	if format["type"] != "json_schema" || schema["name"] != "ielts-question" || schema["strict"] != true {
		t.Errorf("response_format = %v", format)
	}
}

func TestOpenAIRejectsOffSchemaReply(t *testing.T) {
	url, _ := chatStub(t, http.StatusOK, chatReply("gpt-4o-mini", `{"question":"no options"}`, "stop"))
	c, _ := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: url})

	_, err := c.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "x"}}, Schema: questionTestSchema, MaxTokens: 10,
	})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want *ErrInvalidResponse", err)
	}
}

func TestOpenAILengthStopIsTruncation(t *testing.T) {
	url, _ := chatStub(t, http.StatusOK, chatReply("gpt-4o-mini", `{"question":"What time`, "length"))
	c, _ := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: url})

	_, err := c.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "x"}}, Schema: questionTestSchema, MaxTokens: 10,
	})
	var tr *ErrTruncated
	if !errors.As(err, &tr) {
		t.Fatalf("err = %v, want *ErrTruncated", err)
	}
}

func TestOpenAIErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, func(err error) bool { return errors.As(err, new(*ErrRateLimit)) }},
		{"server error", http.StatusInternalServerError, func(err error) bool { return errors.As(err, new(*ErrProviderUnavailable)) }},
		{"bad key", http.StatusUnauthorized, func(err error) bool { return errors.As(err, new(*ErrProviderUnavailable)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, _ := chatStub(t, tt.status, map[string]any{
				"error": map[string]any{"type": "error", "message": tt.name},
			})
			c, _ := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: url})
			_, err := c.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, MaxTokens: 10})
			if err == nil || !tt.check(err) {
				t.Fatalf("err = %T (%v)", err, err)
			}
		})
	}
}

func TestOpenRouterKeepsVendorModelIDs(t *testing.T) {
	url, body := chatStub(t, http.StatusOK, chatReply("google/gemini-2.5-flash", `{"translation":"مرحبا"}`, "stop"))
	c, err := NewOpenRouter(OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}
	if c.Backend() != "openrouter" {
		t.Errorf("backend = %q", c.Backend())
	}
	if _, err := c.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Hello"}}, Schema: translationTestSchema, MaxTokens: 64,
	}); err != nil {
		t.Fatal(err)
	}
	if (*body)["model"] != "google/gemini-2.5-flash" {
		t.Errorf("sent model = %v", (*body)["model"])
	}
}

func TestNewChatClientsRequireKey(t *testing.T) {
	if _, err := NewOpenAI(OpenAIConfig{Model: "gpt-mini"}); err == nil {
		t.Error("openai: expected error for empty API key")
	}
	if _, err := NewOpenRouter(OpenRouterConfig{Model: "google/gemini-2.5-flash"}); err == nil {
		t.Error("openrouter: expected error for empty API key")
	}
	c, err := NewOpenRouter(OpenRouterConfig{APIKey: "k", Model: "meta-llama/llama-3-8b"})
	if err != nil || c.ModelID() != "meta-llama/llama-3-8b" {
		t.Errorf("default base URL client = %v, %v", c, err)
	}
}
