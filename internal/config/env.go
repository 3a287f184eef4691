package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/wagiedev/terminal-emulator-go/internal/emulator"
	"github.com/wagiedev/terminal-emulator-go/internal/probe"
)

// EnvPrefix prefixes every environment setting, e.g. TERMEMU_QUERY_TIMEOUT.
const EnvPrefix = "TERMEMU"

// Env holds settings read from the environment. It provides the defaults of
// the termemu command line flags.
type Env struct {
	Only         []string      `envconfig:"ONLY"`
	Disable      []string      `envconfig:"DISABLE"`
	QueryTimeout time.Duration `envconfig:"QUERY_TIMEOUT" default:"2s"`
	EnvVar       string        `envconfig:"ENV_VAR" default:"TERMINAL_EMULATOR"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"warn"`
}

// LoadEnv loads settings from TERMEMU_* environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return &env, nil
}

// DefaultEnv returns the settings used when nothing is configured.
func DefaultEnv() *Env {
	return &Env{
		QueryTimeout: probe.DefaultQueryTimeout,
		EnvVar:       probe.DefaultEnvVar,
		LogLevel:     "warn",
	}
}

// Apply copies the settings onto o, parsing method tokens.
func (e *Env) Apply(o *Options) error {
	only, err := emulator.ParseDetectionMethods(e.Only)
	if err != nil {
		return fmt.Errorf("parse only: %w", err)
	}

	disabled, err := emulator.ParseDetectionMethods(e.Disable)
	if err != nil {
		return fmt.Errorf("parse disable: %w", err)
	}

	o.Only = only
	o.Disabled = disabled
	o.QueryTimeout = e.QueryTimeout
	o.EnvVar = e.EnvVar

	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (e *Env) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("parse log level: %w", err)
	}

	return level, nil
}
