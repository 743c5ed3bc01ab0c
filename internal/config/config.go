// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional `.env`
// file), overlays them on top of built-in defaults, and validates the result
// so the rest of the application can rely on a complete Config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate values so the app fails fast on bad config.
//   - Provide defaults for optional blocks (store, rate limit, observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before LoadConfig reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every environment variable before it is mapped
// onto a koanf key. Nesting uses ".", so BLOGPOSTS_SERVER.PORT maps to
// server.port -> Config.Server.Port.
const EnvPrefix = "BLOGPOSTS_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. DefaultConfig fills it
// so that env vars override single keys without dropping the other defaults.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Store         StoreConfig          `koanf:"store" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required,min=1"`
	BasePath           string          `koanf:"base_path" validate:"required,startswith=/"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig configures the per-client request limiter.
// RequestsPerSecond of zero disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"min=0"`
	Burst             int     `koanf:"burst" validate:"min=0"`
	ExpiresIn         int     `koanf:"expires_in" validate:"min=0"`
}

// StoreConfig controls the in-memory post store.
type StoreConfig struct {
	// IDStrategy selects how post ids are assigned: "uuid" or "counter".
	IDStrategy string `koanf:"id_strategy" validate:"required,oneof=uuid counter"`

	// SeedPosts is the number of sample posts created at startup.
	SeedPosts int `koanf:"seed_posts" validate:"min=0"`

	// SeedRandom seeds the sample post generator. Zero picks a random seed.
	SeedRandom int64 `koanf:"seed_random"`
}

// RedisConfig contains Redis connection details. Address is "host:port".
// Redis is optional; an empty address disables the background job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"omitempty,hostname_port"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// DefaultConfig returns the configuration used when no environment
// variables are set. LoadConfig overlays the environment on top of it.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			BasePath:           "/blog-posts",
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 20,
				Burst:             40,
				ExpiresIn:         180,
			},
		},
		Store: StoreConfig{
			IDStrategy: "uuid",
			SeedPosts:  2,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// over DefaultConfig, validates it, applies observability defaults and
// returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix BLOGPOSTS_
//   - Converts env keys into koanf keys ("." nesting, lowercase)
//   - Unmarshals into Config
//   - Validates struct tags, then observability rules
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Keys missing from the environment keep their default values.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// A single comma separated env var is the natural way to pass a list.
	mainConfig.Server.CORSAllowedOrigins = splitList(mainConfig.Server.CORSAllowedOrigins)

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are always derived, never configured.
	mainConfig.Observability.ServiceName = "blog-posts"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
