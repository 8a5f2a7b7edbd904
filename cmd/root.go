package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "metamorphosis-doctor",
	Short: "Diagnostics for the Metamorphosis ComfyUI environment",
	Long: `Metamorphosis Doctor inspects the bundled ComfyUI Python environment
used by the Metamorphosis desktop app. It probes the optional ML libraries
(insightface, onnxruntime, torch), detects GPU hardware, and verifies that
the installation is complete enough to run.

All commands are read-only: they report, they never install or repair.`,
	// Probe failures are expected outcomes, not usage mistakes.
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
