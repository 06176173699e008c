package llm

import (
	"context"
	"time"
)

// Purpose labels why a request is made. It selects the Profile applied to
// the request and is recorded with every logged LLM call.
type Purpose string

const (
	PurposeQuestion  Purpose = "ielts-question"
	PurposeTranslate Purpose = "translate"
	PurposeUnknown   Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose attaches p to ctx.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the purpose attached to ctx, or PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok && p != "" {
		return p
	}
	return PurposeUnknown
}

// Profile holds the per-purpose request defaults. Empty Model keeps the
// backend default.
type Profile struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultProfiles returns the built-in budgets. Question generation gets a
// larger budget and some variety; translation is short and deterministic.
func DefaultProfiles() map[Purpose]Profile {
	return map[Purpose]Profile{
		PurposeQuestion: {
			MaxTokens:   900,
			Temperature: 0.7,
			Timeout:     30 * time.Second,
		},
		PurposeTranslate: {
			MaxTokens:   512,
			Temperature: 0,
			Timeout:     15 * time.Second,
		},
	}
}

type profiledProvider struct {
	inner    Provider
	profiles map[Purpose]Profile
	fallback time.Duration
}

// WithProfiles fills unset request fields from the profile of the context
// purpose and bounds the call with the profile timeout, or fallback when the
// profile has none.
func WithProfiles(p Provider, profiles map[Purpose]Profile, fallback time.Duration) Provider {
	return &profiledProvider{inner: p, profiles: profiles, fallback: fallback}
}

func (p *profiledProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	prof := p.profiles[PurposeFrom(ctx)]
	req = prof.apply(req)

	timeout := prof.Timeout
	if timeout <= 0 {
		timeout = p.fallback
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return p.inner.Generate(ctx, req)
}

func (p *profiledProvider) ModelID() string { return p.inner.ModelID() }

func (prof Profile) apply(req Request) Request {
	if req.Model == "" {
		req.Model = prof.Model
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = prof.MaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = prof.Temperature
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = 1024
	}
	return req
}
