package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:":4101"`
	SocketAddr string `env:"SOCKET_ADDR" envDefault:":8000"`

	RedisURL     string `env:"REDIS_URL" envDefault:"localhost:6379"`
	RedisMaxIdle int    `env:"REDIS_MAX_IDLE" envDefault:"10"`

	DBUser     string `env:"DB_USER"`
	DBAddr     string `env:"DB_ADDR" envDefault:"localhost:5432"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`

	// CatalogSource selects where tiles and cards come from: "file" or "postgres".
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"file"`

	GameStateTTL      time.Duration `env:"GAME_STATE_TTL" envDefault:"30m"`
	TurnDuration      time.Duration `env:"TURN_DURATION" envDefault:"30s"`
	FirstTurnDuration time.Duration `env:"FIRST_TURN_DURATION" envDefault:"35s"`

	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret      string   `env:"JWT_SECRET" envDefault:"secret"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

// Load reads the process environment, after .env has been autoloaded.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CatalogSource != "file" && cfg.CatalogSource != "postgres" {
		return Config{}, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
	return cfg, nil
}
