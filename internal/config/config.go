// Package config provides application configuration loaded from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Shreerajan/UI-Generator/internal/planner"
)

// Config holds all application configuration.
type Config struct {
	// Upstream model settings. An empty APIKey is reported on first use.
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	LLMTimeout  time.Duration

	// API server settings.
	APIPort     string
	CORSOrigins []string

	LogLevel    string
	OTelEnabled bool

	// Guards. Zero disables each one.
	UpstreamRPS  float64
	ClientBudget int
	ClientWindow time.Duration

	StrictTypes bool
}

// Planner returns the upstream settings for the plan requester.
func (c Config) Planner() planner.Config {
	return planner.Config{
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		Temperature: c.Temperature,
		Timeout:     c.LLMTimeout,
	}
}

// LoadDotEnv loads variables from .env files without overriding ones
// already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
}

// LoadFromEnv reads configuration from environment variables with sensible defaults.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		APIKey:      os.Getenv("GROQ_API_KEY"),
		BaseURL:     envOr("UIGEN_BASE_URL", planner.DefaultBaseURL),
		Model:       envOr("UIGEN_MODEL", planner.DefaultModel),
		APIPort:     envOr("UIGEN_API_PORT", "8080"),
		CORSOrigins: parseCORSOrigins(os.Getenv("UIGEN_CORS_ORIGINS")),
		LogLevel:    envOr("UIGEN_LOG_LEVEL", "info"),
	}

	temp, err := strconv.ParseFloat(envOr("UIGEN_TEMPERATURE", "0.4"), 32)
	if err != nil || temp < 0 || temp > 2 {
		return Config{}, fmt.Errorf("config: invalid UIGEN_TEMPERATURE %q (must be between 0 and 2)", os.Getenv("UIGEN_TEMPERATURE"))
	}
	cfg.Temperature = float32(temp)

	if cfg.LLMTimeout, err = durationEnv("UIGEN_LLM_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.ClientWindow, err = durationEnv("UIGEN_CLIENT_WINDOW"); err != nil {
		return Config{}, err
	}

	if raw := os.Getenv("UIGEN_UPSTREAM_RPS"); raw != "" {
		if cfg.UpstreamRPS, err = strconv.ParseFloat(raw, 64); err != nil || cfg.UpstreamRPS < 0 {
			return Config{}, fmt.Errorf("config: invalid UIGEN_UPSTREAM_RPS %q", raw)
		}
	}
	if raw := os.Getenv("UIGEN_CLIENT_BUDGET"); raw != "" {
		if cfg.ClientBudget, err = strconv.Atoi(raw); err != nil || cfg.ClientBudget < 0 {
			return Config{}, fmt.Errorf("config: invalid UIGEN_CLIENT_BUDGET %q", raw)
		}
	}
	if cfg.ClientBudget > 0 && cfg.ClientWindow == 0 {
		return Config{}, fmt.Errorf("config: UIGEN_CLIENT_WINDOW required when UIGEN_CLIENT_BUDGET is set")
	}

	if cfg.OTelEnabled, err = boolEnv("UIGEN_OTEL_ENABLED"); err != nil {
		return Config{}, err
	}
	if cfg.StrictTypes, err = boolEnv("UIGEN_STRICT_TYPES"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("config: invalid %s %q", key, raw)
	}
	return d, nil
}

func boolEnv(key string) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s %q", key, raw)
	}
	return b, nil
}

func parseCORSOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(o); t != "" {
			origins = append(origins, t)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
