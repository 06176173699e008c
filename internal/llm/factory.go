package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/bandwise/internal/store"
)

// NewProvider builds the configured backend and wraps it as
// profiles → retry → logging → backend, so each attempt is logged and the
// profile timeout covers all attempts.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropic(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAI(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouter(cfg.OpenRouter)
	case "gemini":
		base, err = NewGemini(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	profiles := cfg.Profiles
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	p := WithLogging(base, events, logger)
	p = WithRetry(p, cfg.Retry)
	return WithProfiles(p, profiles, cfg.Timeout), nil
}

// NewProviderFromEnv uses BANDWISE_LLM_PROVIDER when set and otherwise the
// first vendor key DiscoverConfig finds.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, logger *slog.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if !Configured() {
		var ok bool
		if cfg, ok = DiscoverConfig(); !ok {
			return nil, fmt.Errorf("no LLM API key found (set OPENAI_API_KEY or BANDWISE_LLM_PROVIDER)")
		}
	}
	return NewProvider(ctx, cfg, events, logger)
}
