package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port               string   `env:"PORT" envDefault:"3000"`
	JwtSecret          string   `env:"JWT_SECRET,required,notEmpty"`
	MaxPlayers         int      `env:"ROOM_MAX_PLAYERS" envDefault:"2"`
	AllowedOrigins     []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	NatsURL            string   `env:"NATS_URL"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxPlayers < 1 {
		return nil, fmt.Errorf("ROOM_MAX_PLAYERS must be at least 1, got %d", cfg.MaxPlayers)
	}
	if cfg.RateLimitPerMinute < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be at least 1, got %d", cfg.RateLimitPerMinute)
	}
	return &cfg, nil
}

func MustLoadConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}
