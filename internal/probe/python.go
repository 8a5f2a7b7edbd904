package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/0shamedia/metamorphosis-doctor/internal/config"
	"github.com/0shamedia/metamorphosis-doctor/internal/pythonenv"
)

// Output markers printed by the probe scripts.
const (
	successMarker = "SUCCESS"
	errorMarker   = "ERROR:"
)

// PythonImport probes whether a Python package can be imported in the
// bundled environment by running its check script with the environment's
// interpreter. The script's exit code decides the outcome; its output is
// carried verbatim into the result details.
type PythonImport struct {
	Spec   config.ProbeSpec
	Runner *pythonenv.Runner
	Debug  bool // forward --debug to the script (search paths, failure traces)
}

func (p *PythonImport) Name() string { return p.Spec.Name }

func (p *PythonImport) Run(ctx context.Context) Result {
	res := p.runScript(ctx)
	res.Optional = !p.Spec.Required
	return res
}

func (p *PythonImport) runScript(ctx context.Context) Result {
	var args []string
	if p.Debug {
		args = append(args, "--debug")
	}

	out, err := p.Runner.Run(ctx, p.Spec.Script, args...)
	if err != nil {
		// The probe never ran: interpreter or script missing. Clean
		// message, no trace - this is the expected-absence tier.
		return Result{
			Status:  StatusFail,
			Summary: fmt.Sprintf("could not run %s probe", p.Spec.Package),
			Err:     err.Error(),
		}
	}

	details := append([]string{}, out.Stdout...)
	details = append(details, out.Stderr...)

	if out.ExitCode == 0 {
		return Result{
			Status:  StatusPass,
			Summary: firstMarkedLine(out.Stdout, successMarker, p.Spec.Package+" imported"),
			Details: details,
		}
	}

	summary := firstMarkedLine(out.Stdout, errorMarker,
		fmt.Sprintf("ERROR: %s probe exited with code %d", p.Spec.Package, out.ExitCode))
	return Result{
		Status:  StatusFail,
		Summary: summary,
		Details: details,
		Err:     summary,
	}
}

// firstMarkedLine returns the first output line carrying the marker, or the
// fallback when the script produced none.
func firstMarkedLine(lines []string, marker, fallback string) string {
	for _, line := range lines {
		if strings.Contains(line, marker) {
			return line
		}
	}
	return fallback
}
