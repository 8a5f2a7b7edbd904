package cmd

import (
	"github.com/spf13/cobra"
)

var checkInsightfaceCmd = &cobra.Command{
	Use:   "insightface",
	Short: "Probe the insightface face-analysis package",
	Long: `Probe whether the insightface face-analysis toolkit can be imported
in the bundled ComfyUI environment.

Examples:
  # Basic probe
  metamorphosis-doctor check insightface

  # With failure traces
  metamorphosis-doctor check insightface --debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPythonProbe(cmd, "insightface")
	},
}

func init() {
	checkCmd.AddCommand(checkInsightfaceCmd)
}
