package termemu

import "github.com/wagiedev/terminal-emulator-go/internal/errors"

// Re-export error types from internal package

// NotFoundError indicates every enabled stage declined and no fallback applies.
type NotFoundError = errors.NotFoundError

// QueryError indicates a helper query failed. It only appears in logs.
type QueryError = errors.QueryError

// UnknownMethodError indicates a detection method token was not recognized.
type UnknownMethodError = errors.UnknownMethodError

// UnknownSyntaxError indicates an execution syntax token was not recognized.
type UnknownSyntaxError = errors.UnknownSyntaxError

// TermEmuError is the base interface for all detection errors.
type TermEmuError = errors.TermEmuError

// Re-export sentinel errors from internal package.
var (
	// ErrNoTerminalEmulator indicates no terminal emulator could be determined.
	ErrNoTerminalEmulator = errors.ErrNoTerminalEmulator

	// ErrNoStagesEnabled indicates no detection stage is enabled for the platform.
	ErrNoStagesEnabled = errors.ErrNoStagesEnabled
)
