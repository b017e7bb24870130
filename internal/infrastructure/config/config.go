package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// insecureDevSecret signs tokens only when JWT_SECRET is unset. Deployments
// must always supply their own secret; main logs a warning when this one is
// in effect.
const insecureDevSecret = "your_secret_key"

// Config is the immutable process configuration, built once at startup and
// threaded explicitly to the components that need it.
type Config struct {
	Port      string        `env:"PORT,      default=5000"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cargo_tracker"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = insecureDevSecret
	}
	return &cfg, nil
}

// UsingDevSecret reports whether the insecure fallback secret is in effect.
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == insecureDevSecret
}
