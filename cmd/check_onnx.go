package cmd

import (
	"github.com/spf13/cobra"
)

var checkOnnxCmd = &cobra.Command{
	Use:   "onnx",
	Short: "Probe the onnxruntime inference runtime",
	Long: `Probe whether onnxruntime can be imported in the bundled ComfyUI
environment. On success the runtime version and the available execution
providers are printed.

With --debug the probe also prints the interpreter's module search path
and the PATH environment variable, which is usually enough to explain why
a freshly installed runtime fails to load.

Examples:
  metamorphosis-doctor check onnx
  metamorphosis-doctor check onnx --debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPythonProbe(cmd, "onnx")
	},
}

func init() {
	checkCmd.AddCommand(checkOnnxCmd)
}
