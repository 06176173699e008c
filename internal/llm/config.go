package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config selects and configures the LLM backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter" or
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Profiles holds per-purpose budgets and model overrides.
	Profiles map[Purpose]Profile

	// Timeout bounds a request, retries included, when its profile sets
	// no timeout.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses the cheapest capable model of each backend.
func DefaultConfig() Config {
	return Config{
		Provider:   "openai",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Profiles: DefaultProfiles(),
		Timeout:  30 * time.Second,
	}
}

// ConfigFromEnv overlays BANDWISE_* variables on DefaultConfig.
//
// Per-purpose overrides use BANDWISE_LLM_<PURPOSE>_MODEL and
// BANDWISE_LLM_<PURPOSE>_MAX_TOKENS, where PURPOSE is QUESTION or
// TRANSLATE.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Provider, "BANDWISE_LLM_PROVIDER")
	setString(&cfg.Anthropic.APIKey, "BANDWISE_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "BANDWISE_ANTHROPIC_MODEL")
	setString(&cfg.OpenAI.APIKey, "BANDWISE_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "BANDWISE_OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, "BANDWISE_OPENAI_BASE_URL")
	setString(&cfg.Gemini.APIKey, "BANDWISE_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "BANDWISE_GEMINI_MODEL")
	setString(&cfg.OpenRouter.APIKey, "BANDWISE_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "BANDWISE_OPENROUTER_MODEL")

	if d, err := time.ParseDuration(os.Getenv("BANDWISE_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	applyProfileEnv(cfg.Profiles)
	return cfg
}

var profileEnv = map[Purpose]string{
	PurposeQuestion:  "QUESTION",
	PurposeTranslate: "TRANSLATE",
}

func applyProfileEnv(profiles map[Purpose]Profile) {
	for purpose, key := range profileEnv {
		prof := profiles[purpose]
		setString(&prof.Model, "BANDWISE_LLM_"+key+"_MODEL")
		if n, err := strconv.Atoi(os.Getenv("BANDWISE_LLM_" + key + "_MAX_TOKENS")); err == nil && n > 0 {
			prof.MaxTokens = n
		}
		profiles[purpose] = prof
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Configured reports whether BANDWISE_LLM_PROVIDER selects a backend.
func Configured() bool {
	return os.Getenv("BANDWISE_LLM_PROVIDER") != ""
}

// DiscoverConfig picks the first backend whose vendor-standard key is set,
// in the order OpenAI, Gemini, Anthropic, OpenRouter. Per-purpose profile
// overrides from BANDWISE_* still apply.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()
	switch {
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider, cfg.OpenAI.APIKey = "openai", os.Getenv("OPENAI_API_KEY")
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider, cfg.Gemini.APIKey = "gemini", os.Getenv("GEMINI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider, cfg.Anthropic.APIKey = "anthropic", os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider, cfg.OpenRouter.APIKey = "openrouter", os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate reports a missing key for the selected backend.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "anthropic":
		key = c.Anthropic.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "gemini":
		key = c.Gemini.APIKey
	case "openrouter":
		key = c.OpenRouter.APIKey
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("BANDWISE_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
