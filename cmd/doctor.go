package cmd

import (
	"errors"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/0shamedia/metamorphosis-doctor/internal/config"
	"github.com/0shamedia/metamorphosis-doctor/internal/doctor"
	"github.com/0shamedia/metamorphosis-doctor/internal/probe"
	"github.com/0shamedia/metamorphosis-doctor/internal/sysinfo"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run the full diagnostic suite",
	Long: `Run every diagnostic: installation file checks, free disk space, GPU
detection, the Python library probes, and the sidecar health check. The
report carries an identifier and timestamp so it can be attached to a
support request.

Examples:
  metamorphosis-doctor doctor
  metamorphosis-doctor doctor --json > report.json
  metamorphosis-doctor doctor --yaml`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().Bool("json", false, "Output the report as JSON")
	doctorCmd.Flags().Bool("yaml", false, "Output the report as YAML")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	jsonOutput := mustGetBool(cmd, "json")
	yamlOutput := mustGetBool(cmd, "yaml")
	if jsonOutput && yamlOutput {
		return errors.New("--json and --yaml are mutually exclusive")
	}
	structured := jsonOutput || yamlOutput

	cfg := config.Load()
	runner := probe.NewRunner(doctor.Suite(cfg, false)...)

	var onStep func(probe.Result)
	var bar *progressbar.ProgressBar
	if !structured {
		for _, line := range sysinfo.Collect().Lines() {
			fmt.Println(line)
		}
		fmt.Println()
		bar = progressbar.Default(int64(runner.Len()), "running diagnostics")
		onStep = func(res probe.Result) {
			_ = bar.Add(1)
		}
	}

	report := runner.Run(cmd.Context(), onStep)
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	switch {
	case jsonOutput:
		data, err := report.JSON()
		if err != nil {
			return fmt.Errorf("could not marshal report: %w", err)
		}
		fmt.Println(string(data))
	case yamlOutput:
		data, err := report.YAML()
		if err != nil {
			return fmt.Errorf("could not marshal report: %w", err)
		}
		fmt.Print(string(data))
	default:
		printResults(report)
		fmt.Printf("\nReport ID: %s\n", report.ID)
	}

	if !report.Passed {
		return fmt.Errorf("diagnostics failed: %v", report.Failed())
	}
	return nil
}
