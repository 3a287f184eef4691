package probe

import (
	"context"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/terminal-emulator-go/internal/emulator"
	"github.com/wagiedev/terminal-emulator-go/internal/errors"
)

// maxConcurrentStages caps how many stages a survey runs at once.
const maxConcurrentStages = 4

// StageResult is the outcome of one stage during a survey.
type StageResult struct {
	Method   emulator.DetectionMethod `json:"method" yaml:"method"`
	Found    bool                     `json:"found" yaml:"found"`
	Emulator *emulator.Emulator       `json:"emulator,omitempty" yaml:"emulator,omitempty"`
}

// Report lists what every enabled stage yields on this host.
type Report struct {
	ID       string             `json:"id" yaml:"id"`
	Platform string             `json:"platform" yaml:"platform"`
	Results  []StageResult      `json:"results" yaml:"results"`
	Selected *emulator.Emulator `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// Survey runs every enabled stage concurrently and reports each outcome in
// priority order. Selected is the emulator Detect would return, leaving the
// unresolved fallback aside.
func (d *detector) Survey(ctx context.Context) (*Report, error) {
	if len(d.stages) == 0 {
		return nil, errors.ErrNoStagesEnabled
	}

	report := &Report{
		ID:       ulid.Make().String(),
		Platform: d.platform,
		Results:  make([]StageResult, len(d.stages)),
	}

	p := d.newProber(report.ID)
	p.log.Debug("Surveying terminal emulators", "platform", d.platform, "stages", len(d.stages))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentStages)

	for i, s := range d.stages {
		g.Go(func() error {
			stageProber := *p
			stageProber.log = p.log.With("method", s.method.Token())

			result := StageResult{Method: s.method}
			if term, ok := s.probe(gCtx, &stageProber); ok {
				result.Found = true
				result.Emulator = &term
			}

			report.Results[i] = result

			return gCtx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range report.Results {
		if r.Found {
			report.Selected = r.Emulator

			break
		}
	}

	return report, nil
}
