package probe

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/terminal-emulator-go/internal/emulator"
	"github.com/wagiedev/terminal-emulator-go/internal/errors"
)

// Detector determines the terminal emulator of the host.
type Detector interface {
	// Detect walks the cascade and returns the first emulator found.
	// It fails only when the cascade is exhausted and no fallback applies,
	// or when no stage is enabled at all.
	Detect(ctx context.Context) (emulator.Emulator, error)

	// Survey runs every enabled stage and reports what each one yields.
	Survey(ctx context.Context) (*Report, error)

	// Methods returns the enabled methods in priority order.
	Methods() []emulator.DetectionMethod
}

// detector implements the Detector interface.
type detector struct {
	cfg      *Config
	log      *slog.Logger
	platform string
	stages   []stage
}

// Compile-time verification that detector implements Detector.
var _ Detector = (*detector)(nil)

// NewDetector creates a detector whose stage list is fixed from the
// configured platform and method filters.
func NewDetector(cfg *Config) Detector {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	platform := cfg.platform()

	enabled := make([]stage, 0, len(stages))
	for _, s := range stages {
		if slices.Contains(s.platforms, platform) && cfg.enabled(s.method) {
			enabled = append(enabled, s)
		}
	}

	return &detector{
		cfg:      cfg,
		log:      log.With("component", "terminal_detector"),
		platform: platform,
		stages:   enabled,
	}
}

// Methods returns the enabled methods in priority order.
func (d *detector) Methods() []emulator.DetectionMethod {
	methods := make([]emulator.DetectionMethod, len(d.stages))
	for i, s := range d.stages {
		methods[i] = s.method
	}

	return methods
}

// newProber creates the per-call stage state, tagging logs with a detection id.
func (d *detector) newProber(id string) *prober {
	return &prober{
		sys:     d.cfg.system(),
		log:     d.log.With("detection_id", id),
		envVar:  d.cfg.envVar(),
		timeout: d.cfg.queryTimeout(),
	}
}

// Detect walks the cascade and returns the first emulator found.
func (d *detector) Detect(ctx context.Context) (emulator.Emulator, error) {
	if len(d.stages) == 0 {
		d.log.Error("No detection stage enabled", "platform", d.platform)

		return emulator.Emulator{}, errors.ErrNoStagesEnabled
	}

	p := d.newProber(ulid.Make().String())
	p.log.Debug("Detecting terminal emulator", "platform", d.platform, "stages", len(d.stages))

	tried := make([]string, 0, len(d.stages))

	for _, s := range d.stages {
		if err := ctx.Err(); err != nil {
			return emulator.Emulator{}, err
		}

		stageLog := p.log.With("method", s.method.Token())
		stageProber := *p
		stageProber.log = stageLog

		if term, ok := s.probe(ctx, &stageProber); ok {
			stageLog.Debug("Detected terminal emulator", "name", term.Name(), "path", term.Path())

			return term, nil
		}

		stageLog.Debug("Stage declined")
		tried = append(tried, s.method.String())
	}

	if err := ctx.Err(); err != nil {
		return emulator.Emulator{}, err
	}

	if d.fallbackEnabled() {
		term := emulator.New(
			emulator.FallbackTerminal(),
			emulator.FallbackTerminal(),
			emulator.SyntaxE,
			emulator.MethodHardcodedTraditional,
		)
		p.log.Warn("Every stage declined, falling back to unresolved terminal", "name", term.Name())

		return term, nil
	}

	p.log.Warn("No terminal emulator found", "tried", tried)

	return emulator.Emulator{}, &errors.NotFoundError{Platform: d.platform, Tried: tried}
}

// fallbackEnabled reports whether the traditional list is part of the cascade.
func (d *detector) fallbackEnabled() bool {
	return slices.ContainsFunc(d.stages, func(s stage) bool {
		return s.method == emulator.MethodHardcodedTraditional
	})
}
