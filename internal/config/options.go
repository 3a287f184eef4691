// Package config provides configuration types for terminal emulator detection.
package config

import (
	"log/slog"
	"time"

	"github.com/wagiedev/terminal-emulator-go/internal/emulator"
	"github.com/wagiedev/terminal-emulator-go/internal/probe"
)

// Options configures terminal emulator detection.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// System replaces access to the environment, PATH, filesystem and helper
	// processes. If nil, the real host is used.
	System probe.System

	// Platform is the GOOS value the cascade is built for.
	// If empty, the running platform is used.
	Platform string

	// EnvVar is the environment variable naming the preferred terminal.
	// If empty, TERMINAL_EMULATOR is used.
	EnvVar string

	// QueryTimeout bounds each helper query (xdg-terminal-exec, gsettings,
	// kreadconfig). If zero, two seconds are used.
	QueryTimeout time.Duration

	// Only restricts detection to these methods when non-empty.
	Only []emulator.DetectionMethod

	// Disabled removes these methods from detection.
	Disabled []emulator.DetectionMethod
}

// ProbeConfig converts the options into the detector configuration.
func (o *Options) ProbeConfig() *probe.Config {
	return &probe.Config{
		Logger:       o.Logger,
		System:       o.System,
		Platform:     o.Platform,
		EnvVar:       o.EnvVar,
		QueryTimeout: o.QueryTimeout,
		Only:         o.Only,
		Disabled:     o.Disabled,
	}
}
