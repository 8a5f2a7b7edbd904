package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0shamedia/metamorphosis-doctor/internal/config"
	"github.com/0shamedia/metamorphosis-doctor/internal/doctor"
	"github.com/0shamedia/metamorphosis-doctor/internal/probe"
	"github.com/0shamedia/metamorphosis-doctor/internal/pythonenv"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe optional Python libraries",
	Long: `Commands that probe the optional ML libraries inside the bundled
ComfyUI Python environment. Each probe runs a small check script with the
environment's interpreter and reports whether the import succeeded.

Exit code 0 means the library is present and loadable; 1 means it is
missing or the probe failed.`,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.PersistentFlags().Bool("debug", false, "Print interpreter search paths and failure traces")
}

// runPythonProbe executes a single named probe from the embedded manifest
// and prints its output lines verbatim.
func runPythonProbe(cmd *cobra.Command, name string) error {
	cfg := config.Load()

	spec, ok := cfg.Probes.ByName(name)
	if !ok {
		return fmt.Errorf("unknown probe %q", name)
	}

	runner := pythonenv.NewRunner(doctor.Env(cfg))
	p := &probe.PythonImport{
		Spec:   spec,
		Runner: runner,
		Debug:  mustGetBool(cmd, "debug"),
	}

	res := p.Run(cmd.Context())
	for _, line := range res.Details {
		fmt.Println(line)
	}
	if len(res.Details) == 0 && res.Summary != "" {
		fmt.Println(res.Summary)
	}

	if !res.Passed() {
		if res.Err != "" && res.Err != res.Summary {
			return fmt.Errorf("%s probe failed: %s", name, res.Err)
		}
		return fmt.Errorf("%s probe failed", name)
	}
	return nil
}
