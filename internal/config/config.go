package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger  Logger  `envPrefix:"LOGGER_"`
	HTTP    HTTP    `envPrefix:"HTTP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Seed    Seed    `envPrefix:"SEED_"`
	Results Results `envPrefix:"RESULTS_"`
}

type Logger struct {
	Level slog.Level `env:"LEVEL,expand" envDefault:"info"`
	// Format is either text or json
	Format string `env:"FORMAT" envDefault:"text"`
}

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN         string        `env:"DSN,expand" envDefault:"data/feedback.sqlite"`
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT" envDefault:"30s"`
}

type Seed struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
	// SampleReviews fills an empty store with a few reviews
	SampleReviews bool `env:"SAMPLE_REVIEWS,expand" envDefault:"false"`
}

type Results struct {
	PageSize int `env:"PAGE_SIZE" envDefault:"20"`
}

var ErrInvalidConfig = errors.New("invalid config")

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "FEEDBACK_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.Results.PageSize < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "results page size must be positive, got %d", conf.Results.PageSize)
	}

	if conf.Logger.Format != "text" && conf.Logger.Format != "json" {
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown logger format '%s'", conf.Logger.Format)
	}

	return &conf, nil
}
