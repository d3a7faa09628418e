package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vaultpass/passcheck-go/internal/crypto"
)

var (
	ErrSuggestedLengthTooShort = errors.New("SUGGESTED_PASSWORD_LENGTH must be at least 4")
	ErrAuthSecretTooShort      = errors.New("AUTH_SECRET must be at least 32 bytes")
	ErrInvalidRateLimit        = errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	SuggestedLength int `env:"SUGGESTED_PASSWORD_LENGTH" envDefault:"12"`

	// AuthSecret enables bearer token auth on the API when set.
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenExpiry time.Duration `env:"AUTH_TOKEN_EXPIRY" envDefault:"720h"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c Config) Validate() error {
	if c.SuggestedLength < crypto.MinSuggestedLength {
		return ErrSuggestedLengthTooShort
	}
	if c.AuthSecret != "" && len(c.AuthSecret) < 32 {
		return ErrAuthSecretTooShort
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return ErrInvalidRateLimit
	}
	return nil
}

// AuthEnabled reports whether API routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}
