package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAddr, EnvDB, EnvHistoryCap, EnvSessionTTL, EnvExternalTimeout, EnvCORSOrigins, EnvGoogleKey, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, time.Duration(0), cfg.JanitorInterval())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAddr, ":9000")
	t.Setenv(EnvDB, "/tmp/b.db")
	t.Setenv(EnvHistoryCap, "50")
	t.Setenv(EnvSessionTTL, "2h")
	t.Setenv(EnvExternalTimeout, "5s")
	t.Setenv(EnvCORSOrigins, "https://a.example, https://b.example ,")
	t.Setenv(EnvGoogleKey, "gk")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/tmp/b.db", cfg.DBPath)
	assert.Equal(t, 50, cfg.HistoryCap)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.ExternalTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "gk", cfg.GoogleTranslateKey)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.JanitorInterval())
}

func TestFromEnvInvalid(t *testing.T) {
	cases := map[string]string{
		EnvHistoryCap:      "-1",
		EnvSessionTTL:      "forever",
		EnvExternalTimeout: "-5s",
		EnvLogLevel:        "loud",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BANDWISE_ADDR=:7070\nBANDWISE_HISTORY_CAP=3\n"), 0o600))

	// Variables already present, even empty, win over the file.
	t.Setenv(EnvHistoryCap, "9")
	require.NoError(t, os.Unsetenv(EnvAddr))

	require.NoError(t, LoadEnvFiles(path))
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 9, cfg.HistoryCap)

	assert.NoError(t, LoadEnvFiles(filepath.Join(dir, "missing.env")))
}
