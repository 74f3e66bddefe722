package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server    ServerConfig
	RentalAPI RentalAPIConfig
	Redis     RedisConfig
	Session   SessionConfig
	Ledger    LedgerConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type RentalAPIConfig struct {
	BaseURL string        `env:"RENTAL_API_BASE_URL" envDefault:"https://carback-0v6s.onrender.com/api"`
	Timeout time.Duration `env:"RENTAL_API_TIMEOUT" envDefault:"15s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type SessionConfig struct {
	JWTSecret string        `env:"SESSION_JWT_SECRET" envDefault:"dev-secret-change-me"`
	TTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

type LedgerConfig struct {
	PollInterval time.Duration `env:"LEDGER_POLL_INTERVAL" envDefault:"30s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
