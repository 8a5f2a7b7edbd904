package cmd

import (
	"github.com/spf13/cobra"
)

var checkTorchCmd = &cobra.Command{
	Use:   "torch",
	Short: "Probe torch and its CUDA acceleration",
	Long: `Probe whether torch can be imported in the bundled ComfyUI
environment, and report its hardware acceleration state: interpreter
version, torch version, the CUDA version torch was built against, and
whether CUDA is usable. When an accelerator is available the device
count, the selected device index, and its name are printed as well.

Examples:
  metamorphosis-doctor check torch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPythonProbe(cmd, "torch")
	},
}

func init() {
	checkCmd.AddCommand(checkTorchCmd)
}
