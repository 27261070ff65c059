package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config drives the admin console binary.
type Config struct {
	AuthBaseURL  string        `env:"AUTH_BASE_URL,  default=http://localhost:8085"`
	AdminBaseURL string        `env:"ADMIN_BASE_URL, default=http://localhost:8085"`
	Env          string        `env:"ENV,            default=development"`
	LogLevel     string        `env:"LOG_LEVEL,      default=info"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT,   default=15s"`

	// SessionStore selects the persistence backend: "file" or "redis".
	SessionStore string `env:"SESSION_STORE, default=file"`
	SessionFile  string `env:"SESSION_FILE,  default=.skillgap/session.json"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// StubConfig drives the local stub backend.
type StubConfig struct {
	Port      string  `env:"STUB_PORT,       default=8085"`
	JWTSecret string  `env:"STUB_JWT_SECRET, default=dev-secret"`
	LogLevel  string  `env:"LOG_LEVEL,       default=info"`
	Seed      bool    `env:"STUB_SEED,       default=true"`
	RateRPS   float64 `env:"STUB_RATE_RPS,   default=25"`
	RateBurst int     `env:"STUB_RATE_BURST, default=50"`
}

// Load reads console configuration from environment variables.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// LoadStub reads stub server configuration from environment variables.
func LoadStub() *StubConfig {
	var cfg StubConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load stub configuration: %v", err))
	}
	return &cfg
}
