package probe

import (
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/wagiedev/terminal-emulator-go/internal/emulator"
)

const (
	// DefaultEnvVar is the environment variable consulted by the
	// EnvironmentVariable stage.
	DefaultEnvVar = "TERMINAL_EMULATOR"

	// DefaultQueryTimeout bounds every helper query.
	DefaultQueryTimeout = 2 * time.Second
)

// Platform groups.
var (
	unixPlatforms = []string{"linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos"}
	linuxOnly     = []string{"linux"}
	darwinOnly    = []string{"darwin"}
	windowsOnly   = []string{"windows"}
	nonWindows    = append(slices.Clone(unixPlatforms), "darwin")
)

// Config holds configuration for terminal emulator detection.
type Config struct {
	// Logger is an optional logger for detection operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger

	// System is the host view stages probe. If nil, OSSystem is used.
	System System

	// Platform is the GOOS value the stage list is built for.
	// If empty, runtime.GOOS is used.
	Platform string

	// EnvVar overrides the environment variable read by the
	// EnvironmentVariable stage. If empty, DefaultEnvVar is used.
	EnvVar string

	// QueryTimeout bounds each helper query. If zero, DefaultQueryTimeout
	// is used.
	QueryTimeout time.Duration

	// Only restricts detection to these methods when non-empty.
	Only []emulator.DetectionMethod

	// Disabled removes these methods from detection.
	Disabled []emulator.DetectionMethod
}

func (c *Config) platform() string {
	if c.Platform != "" {
		return c.Platform
	}

	return runtime.GOOS
}

func (c *Config) envVar() string {
	if c.EnvVar != "" {
		return c.EnvVar
	}

	return DefaultEnvVar
}

func (c *Config) queryTimeout() time.Duration {
	if c.QueryTimeout > 0 {
		return c.QueryTimeout
	}

	return DefaultQueryTimeout
}

func (c *Config) system() System {
	if c.System != nil {
		return c.System
	}

	return OSSystem()
}

// enabled reports whether the method filters allow m.
func (c *Config) enabled(m emulator.DetectionMethod) bool {
	if len(c.Only) > 0 && !slices.Contains(c.Only, m) {
		return false
	}

	return !slices.Contains(c.Disabled, m)
}
