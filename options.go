package termemu

import (
	"log/slog"
	"slices"
	"time"

	"github.com/wagiedev/terminal-emulator-go/internal/config"
	"github.com/wagiedev/terminal-emulator-go/internal/probe"
)

// Options configures detection. See the With* functions.
type Options = config.Options

// System is the read-only view of the host that detection probes.
// Replace it with WithSystem to test code that depends on detection.
type System = probe.System

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithQueryTimeout bounds each helper query (xdg-terminal-exec, gsettings,
// kreadconfig). A helper that does not answer in time is treated as absent.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.QueryTimeout = timeout
	}
}

// WithEnvVar sets the environment variable that names the preferred terminal.
// Defaults to TERMINAL_EMULATOR.
func WithEnvVar(name string) Option {
	return func(o *Options) {
		o.EnvVar = name
	}
}

// WithMethods restricts detection to the given methods.
// Their relative priority is unchanged.
func WithMethods(methods ...DetectionMethod) Option {
	return func(o *Options) {
		o.Only = append(o.Only, methods...)
	}
}

// WithoutMethods removes the given methods from detection.
func WithoutMethods(methods ...DetectionMethod) Option {
	return func(o *Options) {
		o.Disabled = append(o.Disabled, methods...)
	}
}

// WithPlatform builds the cascade for another GOOS value, e.g. "darwin".
// Probing still happens on the current host.
func WithPlatform(goos string) Option {
	return func(o *Options) {
		o.Platform = goos
	}
}

// WithSystem replaces access to the environment, PATH, filesystem and helper
// processes.
func WithSystem(sys System) Option {
	return func(o *Options) {
		o.System = sys
	}
}

// WithOptions copies a complete Options value, such as one built from
// environment settings. Later options still apply on top and never modify
// src. A nil src leaves the options unchanged.
func WithOptions(src *Options) Option {
	return func(o *Options) {
		if src == nil {
			return
		}

		*o = *src
		o.Only = slices.Clone(src.Only)
		o.Disabled = slices.Clone(src.Disabled)
	}
}
