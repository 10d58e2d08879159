package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ctchen222/tictactoe/internal/validator"
)

// Config holds the settings shared by every command. Flags override the
// values loaded from the environment.
type Config struct {
	Difficulty   string        `validate:"required,difficulty"`
	ThinkDelay   time.Duration `validate:"gte=0"`
	Seed         uint64        // 0 seeds from the runtime
	LogLevel     string        `validate:"oneof=debug info warn error"`
	OtelExporter string        `validate:"oneof=none stdout otlp"`
	OtlpEndpoint string        `validate:"required_if=OtelExporter otlp"`
	HTTPAddr     string        `validate:"required"`
}

func Default() Config {
	return Config{
		Difficulty:   "impossible",
		ThinkDelay:   500 * time.Millisecond,
		LogLevel:     "info",
		OtelExporter: "none",
		OtlpEndpoint: "localhost:4317",
		HTTPAddr:     ":8080",
	}
}

// Load starts from Default and applies the environment.
func Load() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv("TTT_DIFFICULTY"); ok {
		cfg.Difficulty = v
	}
	if v, ok := os.LookupEnv("TTT_THINK_DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TTT_THINK_DELAY %q: %w", v, err)
		}
		cfg.ThinkDelay = d
	}
	if v, ok := os.LookupEnv("TTT_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TTT_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("TTT_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("TTT_OTEL_EXPORTER"); ok {
		cfg.OtelExporter = v
	}
	if v, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT"); ok {
		cfg.OtlpEndpoint = v
	}
	if v, ok := os.LookupEnv("TTT_HTTP_ADDR"); ok {
		cfg.HTTPAddr = v
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
