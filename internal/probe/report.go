package probe

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/0shamedia/metamorphosis-doctor/internal/sysinfo"
)

// Report is the aggregated outcome of a probe suite run.
type Report struct {
	ID        string           `json:"id" yaml:"id"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	System    sysinfo.Snapshot `json:"system" yaml:"system"`
	Results   []Result         `json:"results" yaml:"results"`
	Passed    bool             `json:"passed" yaml:"passed"`
}

// NewReport assembles a report from probe results and stamps it with a
// fresh identifier. Optional probe failures are carried as warnings and
// do not fail the report.
func NewReport(results []Result) *Report {
	passed := true
	for _, res := range results {
		if !res.Passed() && !res.Optional {
			passed = false
			break
		}
	}
	return &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		System:    sysinfo.Collect(),
		Results:   results,
		Passed:    passed,
	}
}

// Result returns the named probe result from the report.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// Failed lists the names of all failed required probes.
func (r *Report) Failed() []string {
	var names []string
	for _, res := range r.Results {
		if !res.Passed() && !res.Optional {
			names = append(names, res.Name)
		}
	}
	return names
}

// Warnings lists the names of failed optional probes.
func (r *Report) Warnings() []string {
	var names []string
	for _, res := range r.Results {
		if !res.Passed() && res.Optional {
			names = append(names, res.Name)
		}
	}
	return names
}

func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
