package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one queued reply. A non-nil Err is returned instead of
// Content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays queued replies in order and records each request
// with the purpose it was made for. It backs BANDWISE_LLM_PROVIDER=mock and
// the package tests that exercise question generation and translation.
type MockProvider struct {
	mu       sync.Mutex
	queue    []MockResponse
	Calls    []Request
	Purposes []Purpose
}

func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{queue: replies}
}

// Generate pops the next reply. An empty queue is ErrProviderUnavailable,
// so an unconfigured mock behaves like an offline backend.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.Purposes = append(m.Purposes, PurposeFrom(ctx))
	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	if next.Err != nil {
		return nil, next.Err
	}

	model := "mock"
	if req.Model != "" {
		model = req.Model
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: model, StopReason: StopEnd}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// Queue appends replies.
func (m *MockProvider) Queue(replies ...MockResponse) {
	m.mu.Lock()
	m.queue = append(m.queue, replies...)
	m.mu.Unlock()
}

// CallCount is the number of Generate calls so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
