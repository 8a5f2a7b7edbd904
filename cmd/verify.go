package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0shamedia/metamorphosis-doctor/internal/config"
	"github.com/0shamedia/metamorphosis-doctor/internal/doctor"
	"github.com/0shamedia/metamorphosis-doctor/internal/probe"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Quick file-level verification of the installation",
	Long: `Verify that the installed ComfyUI tree is structurally complete:
the .venv directory, its Python interpreter, the main.py entry point,
the IPAdapter custom node, and enough free disk space next to the tree.

This is the fast check the app runs on startup - it touches only the
filesystem and never imports anything.

Examples:
  metamorphosis-doctor verify
  COMFYUI_DIR=/opt/metamorphosis/vendor/comfyui metamorphosis-doctor verify`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	report := probe.NewRunner(doctor.InstallProbes(cfg)...).Run(cmd.Context(), func(res probe.Result) {
		if res.Passed() {
			fmt.Printf("PASSED: %s\n", res.Summary)
		} else {
			fmt.Printf("FAILED: %s\n", res.Summary)
		}
	})

	if !report.Passed {
		return fmt.Errorf("verification failed: %v", report.Failed())
	}
	fmt.Println("All verification checks passed")
	return nil
}
