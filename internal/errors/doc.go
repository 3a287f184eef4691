// Package errors defines error types for terminal emulator detection.
//
// Stage declines are not errors and never reach this package. Only cascade
// exhaustion, configuration mistakes and parse failures are surfaced to
// callers; helper query failures are wrapped in QueryError for logging and
// then downgraded to a decline. All error types support unwrapping and can be
// checked using errors.Is, errors.As, and errors.AsType.
package errors
