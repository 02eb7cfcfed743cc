// Package config loads the service configuration from the environment
package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port       int           `env:"PORT" envDefault:"50051"`
	RedisURL   string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// OpenAIAPIKey absent means manual mode.
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4-turbo"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	AITimeout     time.Duration `env:"AI_TIMEOUT" envDefault:"60s"`

	RollPolicy string `env:"ROLL_POLICY" envDefault:"uniform"`

	DND5eAPIEnabled bool   `env:"DND5E_API_ENABLED" envDefault:"false"`
	DND5eAPIBaseURL string `env:"DND5E_API_BASE_URL"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("PORT", c.Port, 1, 65535, vb)
	errors.ValidateRequired("REDIS_URL", c.RedisURL, vb)
	if c.SessionTTL <= 0 {
		vb.InvalidField("SESSION_TTL", "must be positive")
	}
	if c.AITimeout <= 0 {
		vb.InvalidField("AI_TIMEOUT", "must be positive")
	}
	if !allocation.RollPolicy(c.RollPolicy).Valid() {
		errors.ValidateEnum("ROLL_POLICY", c.RollPolicy, []string{
			string(allocation.RollPolicyUniform),
			string(allocation.RollPolicy4d6DropLowest),
			string(allocation.RollPolicy3d6),
		}, vb)
	}
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LOG_FORMAT", strings.ToLower(c.LogFormat), []string{"text", "json"}, vb)

	return vb.Build()
}

// AIEnabled reports whether a text generation credential is present.
func (c *Config) AIEnabled() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

// SlogLevel maps LOG_LEVEL to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads .env files when present, then the process environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, "failed to load .env")
		}
		slog.Debug("no .env file found")
	}

	return parse(env.Options{})
}

// FromMap builds a Config from explicit values instead of the process
// environment.
func FromMap(values map[string]string) (*Config, error) {
	return parse(env.Options{Environment: values})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
