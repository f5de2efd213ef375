package platform

import (
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the environment configuration of the stickies CLI.
type Config struct {
	Store       string `env:"STICKIES_STORE" env-description:"board location (path or memory://, redis://, sqlite:// URI)"`
	Key         string `env:"STICKIES_KEY" env-default:"sticky-notes" env-description:"snapshot key for redis and sqlite stores"`
	LogLevel    string `env:"STICKIES_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	EventBuffer int    `env:"STICKIES_EVENT_BUFFER" env-default:"100" env-description:"per-subscriber event buffer"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Usage describes the supported environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
