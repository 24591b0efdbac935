package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/tcr/pretty-cron/internal/describe"
)

type Config struct {
	Env  string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port string `env:"PORT" envDefault:"8080" validate:"required,numeric"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090" validate:"required,numeric,nefield=Port"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	StepDetection bool `env:"STEP_DETECTION" envDefault:"false"`
	ClockTimes    bool `env:"CLOCK_TIMES" envDefault:"false"`
	PreviewRuns   int  `env:"PREVIEW_RUNS" envDefault:"3" validate:"min=0,max=20"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
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

func (c *Config) DescriberOptions() []describe.Option {
	var opts []describe.Option
	if c.StepDetection {
		opts = append(opts, describe.WithStepDetection())
	}
	if c.ClockTimes {
		opts = append(opts, describe.WithClockTimes())
	}
	return opts
}
