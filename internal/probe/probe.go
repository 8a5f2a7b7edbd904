// Package probe provides the diagnostic probe framework: a probe is a
// single read-only check against the local environment, and a runner
// executes a suite of them sequentially into a report.
package probe

import (
	"context"
)

// Status is the outcome of a single probe.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	// StatusSkip marks probes that could not draw a conclusion
	// (e.g., no supported GPU to inspect). Skips never fail a run.
	StatusSkip Status = "skip"
)

// Probe is a single diagnostic check. Probes must not mutate the
// environment they inspect.
type Probe interface {
	Name() string
	Run(ctx context.Context) Result
}

// Result is the outcome of one probe run.
type Result struct {
	Name       string   `json:"name" yaml:"name"`
	Status     Status   `json:"status" yaml:"status"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Details    []string `json:"details,omitempty" yaml:"details,omitempty"`
	Err        string   `json:"error,omitempty" yaml:"error,omitempty"`
	// Optional failures are reported as warnings and never fail a run.
	Optional   bool  `json:"optional,omitempty" yaml:"optional,omitempty"`
	DurationMs int64 `json:"duration_ms" yaml:"duration_ms"`
}

// Passed reports whether the probe did not fail. Skipped probes count as
// passed for exit-code purposes.
func (r Result) Passed() bool {
	return r.Status != StatusFail
}

// Func adapts a closure into a Probe.
func Func(name string, fn func(ctx context.Context) Result) Probe {
	return funcProbe{name: name, fn: fn}
}

type funcProbe struct {
	name string
	fn   func(ctx context.Context) Result
}

func (p funcProbe) Name() string { return p.name }

func (p funcProbe) Run(ctx context.Context) Result {
	res := p.fn(ctx)
	res.Name = p.name
	return res
}
