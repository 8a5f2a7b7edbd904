package probe

import (
	"context"
	"time"
)

// Runner executes probes one at a time, in the order given. Probes are
// sequential on purpose: each inspects a shared machine state and several
// shell out to the same interpreter.
type Runner struct {
	probes []Probe
}

func NewRunner(probes ...Probe) *Runner {
	return &Runner{probes: probes}
}

// Names lists the probe names in execution order.
func (r *Runner) Names() []string {
	names := make([]string, len(r.probes))
	for i, p := range r.probes {
		names[i] = p.Name()
	}
	return names
}

// Len returns the number of probes in the suite.
func (r *Runner) Len() int {
	return len(r.probes)
}

// Run executes the suite and assembles a report. onStep, when non-nil, is
// invoked after every probe with its result (used for progress output).
func (r *Runner) Run(ctx context.Context, onStep func(Result)) *Report {
	results := make([]Result, 0, len(r.probes))
	for _, p := range r.probes {
		start := time.Now()
		res := p.Run(ctx)
		res.Name = p.Name()
		res.DurationMs = time.Since(start).Milliseconds()
		results = append(results, res)
		if onStep != nil {
			onStep(res)
		}
	}
	return NewReport(results)
}
