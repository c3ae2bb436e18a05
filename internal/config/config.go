package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/nardogod/diaryquest/internal/storage"
)

// Config is the process environment. Everything has a sensible default so
// the CLI works with zero setup.
type Config struct {
	DBPath   string `env:"DIARYQUEST_DB"`
	User     string `env:"DIARYQUEST_USER" envDefault:"main_user"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}
