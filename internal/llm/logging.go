package llm

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/bandwise/internal/store"
)

type loggingProvider struct {
	inner   Provider
	backend string
	events  store.EventRepo
	logger  *slog.Logger
}

// WithLogging records every call, one per retry attempt, in the event log
// and as an "llm_request" slog line. Failed calls log at warn level. A nil
// repo skips the event log; a nil logger discards lines. Failing to append
// the event never fails the call.
func WithLogging(p Provider, events store.EventRepo, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	backend := p.ModelID()
	if b, ok := p.(interface{ Backend() string }); ok {
		backend = b.Backend()
	}
	return &loggingProvider{inner: p, backend: backend, events: events, logger: logger}
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.backend,
		Model:       cmp.Or(req.Model, l.inner.ModelID()),
		Purpose:     string(PurposeFrom(ctx)),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens, ev.OutputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}

	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("purpose", ev.Purpose),
		slog.String("provider", ev.Provider),
		slog.String("model", ev.Model),
		slog.Int64("latency_ms", ev.LatencyMs),
		slog.Int("input_tokens", ev.InputTokens),
		slog.Int("output_tokens", ev.OutputTokens),
	}
	if err != nil {
		level = slog.LevelWarn
		ev.ErrorMessage = err.Error()
		attrs = append(attrs, slog.String("error", ev.ErrorMessage))
	}
	l.logger.LogAttrs(ctx, level, "llm_request", attrs...)

	if l.events != nil {
		if aerr := l.events.AppendLLMRequest(ctx, ev); aerr != nil {
			l.logger.WarnContext(ctx, "recording llm event failed", "error", aerr)
		}
	}
	return resp, err
}

// transcript renders the prompt for `bandwise llm view`. The schema is named
// rather than dumped: its definition is fixed per purpose.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		fmt.Fprintf(&b, "[schema] %s\n", req.Schema.Name)
	}
	if req.MaxTokens > 0 {
		fmt.Fprintf(&b, "[budget] %d tokens, temperature %.1f\n", req.MaxTokens, req.Temperature)
	}
	return b.String()
}
