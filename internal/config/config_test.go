package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TTT_DIFFICULTY", "easy")
	t.Setenv("TTT_THINK_DELAY", "0s")
	t.Setenv("TTT_SEED", "42")
	t.Setenv("TTT_LOG_LEVEL", "debug")
	t.Setenv("TTT_OTEL_EXPORTER", "otlp")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("TTT_HTTP_ADDR", "127.0.0.1:9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Difficulty:   "easy",
		ThinkDelay:   0,
		Seed:         42,
		LogLevel:     "debug",
		OtelExporter: "otlp",
		OtlpEndpoint: "collector:4317",
		HTTPAddr:     "127.0.0.1:9000",
	}, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsMalformedEnv(t *testing.T) {
	t.Setenv("TTT_THINK_DELAY", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TTT_THINK_DELAY", "1s")
	t.Setenv("TTT_SEED", "-1")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "Unknown difficulty", mutate: func(c *Config) { c.Difficulty = "nightmare" }},
		{name: "Negative delay", mutate: func(c *Config) { c.ThinkDelay = -time.Second }},
		{name: "Unknown log level", mutate: func(c *Config) { c.LogLevel = "trace" }},
		{name: "Unknown exporter", mutate: func(c *Config) { c.OtelExporter = "jaeger" }},
		{name: "OTLP without endpoint", mutate: func(c *Config) { c.OtelExporter = "otlp"; c.OtlpEndpoint = "" }},
		{name: "Missing address", mutate: func(c *Config) { c.HTTPAddr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
