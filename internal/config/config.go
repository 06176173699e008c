// Package config loads process settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/bandwise/internal/logging"
)

// Environment variable names.
const (
	EnvAddr            = "BANDWISE_ADDR"
	EnvDB              = "BANDWISE_DB"
	EnvHistoryCap      = "BANDWISE_HISTORY_CAP"
	EnvSessionTTL      = "BANDWISE_SESSION_TTL"
	EnvExternalTimeout = "BANDWISE_EXTERNAL_TIMEOUT"
	EnvCORSOrigins     = "BANDWISE_CORS_ORIGINS"
	EnvGoogleKey       = "GOOGLE_TRANSLATE_API_KEY"
	EnvLogLevel        = "BANDWISE_LOG_LEVEL"
)

// Config holds the server and session settings.
type Config struct {
	Addr string

	// DBPath is empty when the default location should be used.
	DBPath string

	// HistoryCap and SessionTTL form the session retention policy;
	// zero values keep everything forever.
	HistoryCap int
	SessionTTL time.Duration

	// ExternalTimeout bounds each generator and translator call.
	ExternalTimeout time.Duration

	CORSOrigins        []string
	GoogleTranslateKey string
	LogLevel           slog.Level
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:            ":8080",
		ExternalTimeout: 20 * time.Second,
		CORSOrigins:     []string{"*"},
		LogLevel:        slog.LevelInfo,
	}
}

// LoadEnvFiles loads variables from the given files (".env" when none are
// named) without overriding variables already set. Missing files are
// ignored.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads .env and then the environment.
func Load() (Config, error) {
	if err := LoadEnvFiles(); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over the defaults.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	cfg.DBPath = os.Getenv(EnvDB)
	cfg.GoogleTranslateKey = os.Getenv(EnvGoogleKey)

	if v := os.Getenv(EnvHistoryCap); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: want a non-negative integer, got %q", EnvHistoryCap, v)
		}
		cfg.HistoryCap = n
	}
	if v := os.Getenv(EnvSessionTTL); v != "" {
		d, err := parseDuration(EnvSessionTTL, v)
		if err != nil {
			return Config{}, err
		}
		cfg.SessionTTL = d
	}
	if v := os.Getenv(EnvExternalTimeout); v != "" {
		d, err := parseDuration(EnvExternalTimeout, v)
		if err != nil {
			return Config{}, err
		}
		cfg.ExternalTimeout = d
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := logging.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// JanitorInterval is how often idle sessions are swept.
func (c Config) JanitorInterval() time.Duration {
	if c.SessionTTL <= 0 {
		return 0
	}
	return max(c.SessionTTL/4, time.Minute)
}

func parseDuration(key, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: want a non-negative duration such as 30m, got %q", key, v)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
