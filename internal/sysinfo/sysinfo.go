// Package sysinfo collects basic host facts and disk capacity for
// diagnostic output.
package sysinfo

import (
	"fmt"
	"os"
	"runtime"
)

// Snapshot captures the host facts printed at the top of a doctor run.
type Snapshot struct {
	OS         string `json:"os" yaml:"os"`
	Arch       string `json:"arch" yaml:"arch"`
	NumCPU     int    `json:"num_cpu" yaml:"num_cpu"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	WorkingDir string `json:"working_dir,omitempty" yaml:"working_dir,omitempty"`
}

func Collect() Snapshot {
	wd, _ := os.Getwd()
	return Snapshot{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GoVersion:  runtime.Version(),
		WorkingDir: wd,
	}
}

// Lines renders the snapshot as human-readable output lines.
func (s Snapshot) Lines() []string {
	return []string{
		fmt.Sprintf("OS: %s", s.OS),
		fmt.Sprintf("Arch: %s", s.Arch),
		fmt.Sprintf("CPUs: %d", s.NumCPU),
		fmt.Sprintf("Go: %s", s.GoVersion),
		fmt.Sprintf("Working dir: %s", s.WorkingDir),
	}
}
