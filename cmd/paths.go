package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0shamedia/metamorphosis-doctor/internal/config"
	"github.com/0shamedia/metamorphosis-doctor/internal/doctor"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the resolved environment paths",
	Long: `Print every path the doctor resolves from configuration - the ComfyUI
tree, the venv and bundled interpreters, the entry point - annotated with
whether it exists. Handy when an installation landed in the wrong place.`,
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	env := doctor.Env(cfg)

	printPath("ComfyUI directory", env.ComfyUIDir())
	printPath("Venv directory", env.VenvDir())
	printPath("Venv python", env.VenvPython())
	printPath("Bundled python", env.BundledPython())
	printPath("Entry point", env.MainPy())
	printPath("IPAdapter node", env.CustomNodeDir(doctor.IPAdapterNodeName))

	if python, err := env.Interpreter(); err == nil {
		fmt.Printf("%-18s %s\n", "Active interpreter", python)
	} else {
		fmt.Printf("%-18s %v\n", "Active interpreter", err)
	}
	return nil
}

func printPath(label, path string) {
	marker := "missing"
	if _, err := os.Stat(path); err == nil {
		marker = "exists"
	}
	fmt.Printf("%-18s %s (%s)\n", label, path, marker)
}
