package pythonenv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Output captures everything a probe script produced.
type Output struct {
	Stdout   []string
	Stderr   []string
	ExitCode int
}

// Runner executes embedded probe scripts with the environment's interpreter.
// The script is materialized to a temporary file for the duration of the run
// and removed afterwards.
type Runner struct {
	env *Env
}

func NewRunner(env *Env) *Runner {
	return &Runner{env: env}
}

// Run executes the named embedded script. A non-zero script exit is not an
// error here - it is reported through Output.ExitCode so callers can
// distinguish "probe ran and said no" from "probe could not run at all".
func (r *Runner) Run(ctx context.Context, scriptName string, args ...string) (*Output, error) {
	script, err := Script(scriptName)
	if err != nil {
		return nil, err
	}

	python, err := r.env.Interpreter()
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "metamorphosis-probe-*.py")
	if err != nil {
		return nil, fmt.Errorf("could not create temp script file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(script); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("could not write temp script file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("could not close temp script file: %w", err)
	}

	cmd := exec.CommandContext(ctx, python, append([]string{tmpPath}, args...)...)
	if dirExists(r.env.ComfyUIDir()) {
		// Scripts import relative to the ComfyUI tree, same as the sidecar.
		cmd.Dir = r.env.ComfyUIDir()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	out := &Output{
		Stdout: splitLines(stdout.String()),
		Stderr: splitLines(stderr.String()),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return nil, fmt.Errorf("could not run %s with %s: %w", scriptName, python, runErr)
	}

	return out, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// splitLines splits process output into lines, dropping the trailing blank
// line produced by a final newline.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
