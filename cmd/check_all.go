package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/0shamedia/metamorphosis-doctor/internal/config"
	"github.com/0shamedia/metamorphosis-doctor/internal/doctor"
	"github.com/0shamedia/metamorphosis-doctor/internal/probe"
)

var checkAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every Python library probe",
	Long: `Run every probe from the embedded manifest (insightface, onnxruntime,
torch) and print a summary. The exit code is non-zero when any required
probe fails.

Examples:
  # Run all probes with a progress bar
  metamorphosis-doctor check all

  # JSON output for scripting
  metamorphosis-doctor check all --json`,
	RunE: runCheckAll,
}

func init() {
	checkCmd.AddCommand(checkAllCmd)
	checkAllCmd.Flags().Bool("json", false, "Output as JSON instead of a progress bar")
}

func runCheckAll(cmd *cobra.Command, args []string) error {
	jsonOutput := mustGetBool(cmd, "json")
	debug := mustGetBool(cmd, "debug")

	cfg := config.Load()
	runner := probe.NewRunner(doctor.PythonProbes(cfg, debug)...)

	var onStep func(probe.Result)
	var bar *progressbar.ProgressBar
	if !jsonOutput {
		bar = progressbar.Default(int64(runner.Len()), "probing")
		onStep = func(res probe.Result) {
			_ = bar.Add(1)
		}
	}

	report := runner.Run(cmd.Context(), onStep)
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	if jsonOutput {
		data, err := report.JSON()
		if err != nil {
			return fmt.Errorf("could not marshal report: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printResults(report)
	}

	if !report.Passed {
		return fmt.Errorf("probes failed: %v", report.Failed())
	}
	return nil
}

// printResults prints one line per probe plus an overall verdict.
func printResults(report *probe.Report) {
	for _, res := range report.Results {
		fmt.Printf("%-4s %-14s %s (%dms)\n", statusLabel(res.Status), res.Name, res.Summary, res.DurationMs)
	}
	if warnings := report.Warnings(); len(warnings) > 0 {
		fmt.Printf("\nWarnings (optional probes): %v\n", warnings)
	}
	if report.Passed {
		fmt.Println("\nAll required probes passed")
	} else {
		fmt.Printf("\nFailed probes: %v\n", report.Failed())
	}
}

func statusLabel(status probe.Status) string {
	switch status {
	case probe.StatusPass:
		return "PASS"
	case probe.StatusFail:
		return "FAIL"
	case probe.StatusSkip:
		return "SKIP"
	default:
		return string(status)
	}
}
