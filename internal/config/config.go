package config

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/crucial707/habit-countdown/internal/countdown"
	"github.com/crucial707/habit-countdown/internal/page"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080" validate:"required,numeric"`

	// Env is "dev" (default) or "prod".
	Env string `env:"ENV" envDefault:"dev" validate:"oneof=dev prod"`

	// PageFile is the HTML page to host. When empty, the built-in reminders page is built from Reminders.
	PageFile string `env:"PAGE_FILE"`

	// Reminders lists the built-in page's reminders as "HH:MM=label" pairs, comma separated.
	Reminders map[string]string `env:"REMINDERS" envDefault:"08:00=Morning check-in,21:30=Evening reflection" envSeparator:"," envKeyValSeparator:"="`

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// When empty, the server listens with plain HTTP.
	TLSCertFile string `env:"TLS_CERT_FILE" validate:"required_with=TLSKeyFile"`
	TLSKeyFile  string `env:"TLS_KEY_FILE" validate:"required_with=TLSCertFile"`

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	// LogLevel is one of debug, info (default), warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// CORSAllowedOrigins is a list of origins allowed to read the JSON endpoints.
	// When empty, no CORS headers are sent (same-origin only).
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// RateLimitPerMinute is the per-client-IP request budget.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120" validate:"min=1"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field rules and that every configured reminder time parses.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for t := range c.Reminders {
		if _, err := countdown.ParseTimeOfDay(t); err != nil {
			return fmt.Errorf("invalid config: REMINDERS: %w", err)
		}
	}
	return nil
}

// TLS reports whether both TLS files are configured.
func (c Config) TLS() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// DemoReminders returns Reminders as page rows ordered by time.
func (c Config) DemoReminders() []page.DemoReminder {
	out := make([]page.DemoReminder, 0, len(c.Reminders))
	for t, label := range c.Reminders {
		out = append(out, page.DemoReminder{Time: t, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// Level maps LogLevel to a slog level. Unknown values mean info.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
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
