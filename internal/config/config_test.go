package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey, "a missing key is not a load error")
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.BaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.InDelta(t, 0.4, cfg.Temperature, 1e-6)
	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.LLMTimeout)
	assert.Zero(t, cfg.UpstreamRPS)
	assert.Zero(t, cfg.ClientBudget)
	assert.False(t, cfg.OTelEnabled)
	assert.False(t, cfg.StrictTypes)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("UIGEN_MODEL", "llama-3.3-70b")
	t.Setenv("UIGEN_TEMPERATURE", "0")
	t.Setenv("UIGEN_LLM_TIMEOUT", "30s")
	t.Setenv("UIGEN_CORS_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("UIGEN_UPSTREAM_RPS", "2.5")
	t.Setenv("UIGEN_CLIENT_BUDGET", "10")
	t.Setenv("UIGEN_CLIENT_WINDOW", "1m")
	t.Setenv("UIGEN_OTEL_ENABLED", "true")
	t.Setenv("UIGEN_STRICT_TYPES", "1")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "gsk_test", cfg.APIKey)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Zero(t, cfg.Temperature)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 2.5, cfg.UpstreamRPS)
	assert.Equal(t, 10, cfg.ClientBudget)
	assert.Equal(t, time.Minute, cfg.ClientWindow)
	assert.True(t, cfg.OTelEnabled)
	assert.True(t, cfg.StrictTypes)

	pc := cfg.Planner()
	assert.Equal(t, "gsk_test", pc.APIKey)
	assert.Equal(t, "llama-3.3-70b", pc.Model)
	assert.Equal(t, 30*time.Second, pc.Timeout)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"UIGEN_TEMPERATURE", "warm", "UIGEN_TEMPERATURE"},
		{"UIGEN_TEMPERATURE", "3", "UIGEN_TEMPERATURE"},
		{"UIGEN_LLM_TIMEOUT", "soon", "UIGEN_LLM_TIMEOUT"},
		{"UIGEN_UPSTREAM_RPS", "-1", "UIGEN_UPSTREAM_RPS"},
		{"UIGEN_CLIENT_BUDGET", "ten", "UIGEN_CLIENT_BUDGET"},
		{"UIGEN_CLIENT_BUDGET", "5", "UIGEN_CLIENT_WINDOW required"},
		{"UIGEN_OTEL_ENABLED", "maybe", "UIGEN_OTEL_ENABLED"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GROQ_API_KEY=from-file\nUIGEN_API_PORT=9090\n"), 0o600))
	t.Setenv("UIGEN_API_PORT", "7070")

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, "7070", cfg.APIPort, "existing variables win")
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GROQ_API_KEY", "UIGEN_BASE_URL", "UIGEN_MODEL", "UIGEN_TEMPERATURE",
		"UIGEN_LLM_TIMEOUT", "UIGEN_API_PORT", "UIGEN_CORS_ORIGINS", "UIGEN_LOG_LEVEL",
		"UIGEN_OTEL_ENABLED", "UIGEN_UPSTREAM_RPS", "UIGEN_CLIENT_BUDGET",
		"UIGEN_CLIENT_WINDOW", "UIGEN_STRICT_TYPES",
	} {
		// t.Setenv saves the current value and restores it on cleanup.
		// Setting to "" then unsetting ensures the key is absent during the test.
		orig, wasSet := os.LookupEnv(key)
		if wasSet {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}
