package errors

import (
	"errors"
	"fmt"
	"strings"
)

// TermEmuError is the base interface for all detection errors.
type TermEmuError interface {
	error
	IsTermEmuError() bool
}

// Compile-time verification that all error types implement TermEmuError.
var (
	_ TermEmuError = (*NotFoundError)(nil)
	_ TermEmuError = (*QueryError)(nil)
	_ TermEmuError = (*UnknownMethodError)(nil)
	_ TermEmuError = (*UnknownSyntaxError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNoTerminalEmulator indicates every enabled stage declined and no
	// fallback applies.
	ErrNoTerminalEmulator = errors.New("no terminal emulator could be determined")

	// ErrNoStagesEnabled indicates the configuration leaves no detection stage
	// available on the current platform.
	ErrNoStagesEnabled = errors.New("no detection stage is enabled for this platform")
)

// NotFoundError indicates the detection cascade was exhausted.
type NotFoundError struct {
	Platform string
	Tried    []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no terminal emulator could be determined on %s (tried: %s)",
		e.Platform, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNoTerminalEmulator
}

// IsTermEmuError implements TermEmuError.
func (e *NotFoundError) IsTermEmuError() bool { return true }

// QueryError indicates a helper query (xdg-terminal-exec, gsettings,
// kreadconfig) failed, timed out or produced unusable output.
type QueryError struct {
	Helper string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Helper, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsTermEmuError implements TermEmuError.
func (e *QueryError) IsTermEmuError() bool { return true }

// UnknownMethodError indicates a detection method token was not recognized.
type UnknownMethodError struct {
	Token string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown detection method %q", e.Token)
}

// IsTermEmuError implements TermEmuError.
func (e *UnknownMethodError) IsTermEmuError() bool { return true }

// UnknownSyntaxError indicates an execution syntax token was not recognized.
type UnknownSyntaxError struct {
	Token string
}

func (e *UnknownSyntaxError) Error() string {
	return fmt.Sprintf("unknown execution syntax %q", e.Token)
}

// IsTermEmuError implements TermEmuError.
func (e *UnknownSyntaxError) IsTermEmuError() bool { return true }
