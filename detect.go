package termemu

import (
	"context"

	"github.com/wagiedev/terminal-emulator-go/internal/probe"
)

// Report lists what every enabled detection stage yields on this host.
type Report = probe.Report

// StageResult is the outcome of one stage in a Report.
type StageResult = probe.StageResult

// Detector determines the terminal emulator of the host.
type Detector = probe.Detector

// NewDetector creates a Detector configured by opts. The set of stages is
// fixed at construction; the detector can be reused and shared.
func NewDetector(opts ...Option) Detector {
	return probe.NewDetector(applyOptions(opts).ProbeConfig())
}

// Detect determines the terminal emulator of the host.
//
// Stages run in priority order and the first one that finds an emulator wins.
// On Linux and the BSDs detection falls back to an unresolved "xterm" when
// every stage declines, so an error is returned only when the fallback is
// disabled (NotFoundError) or when no stage is enabled (ErrNoStagesEnabled).
func Detect(ctx context.Context, opts ...Option) (Emulator, error) {
	return NewDetector(opts...).Detect(ctx)
}

// Survey runs every enabled stage and reports each outcome. It is intended
// for diagnostics; use Detect to pick a terminal.
func Survey(ctx context.Context, opts ...Option) (*Report, error) {
	return NewDetector(opts...).Survey(ctx)
}
