package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0shamedia/metamorphosis-doctor/internal/gpu"
)

var gpuCmd = &cobra.Command{
	Use:   "gpu",
	Short: "Detect the primary GPU and CUDA driver version",
	Long: `Detect the primary graphics adapter using the platform inventory tool
(lspci on Linux, wmic on Windows, system_profiler on macOS). For NVIDIA
hardware the CUDA driver version is read from nvidia-smi.

Detection is informational: an unknown GPU is reported, not treated as an
error, since the app falls back to CPU execution.

Examples:
  metamorphosis-doctor gpu
  metamorphosis-doctor gpu --json`,
	RunE: runGpu,
}

func init() {
	rootCmd.AddCommand(gpuCmd)
	gpuCmd.Flags().Bool("json", false, "Output as JSON")
}

func runGpu(cmd *cobra.Command, args []string) error {
	info := gpu.Detect(cmd.Context())

	if mustGetBool(cmd, "json") {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("could not marshal GPU info: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("GPU vendor: %s\n", info.Vendor)
	if info.Name != "" {
		fmt.Printf("Adapter: %s\n", info.Name)
	}
	switch {
	case info.CUDAVersion != "":
		fmt.Printf("CUDA version: %s\n", info.CUDAVersion)
	case info.Vendor == gpu.VendorNvidia:
		fmt.Println("CUDA version: unknown (nvidia-smi unavailable or missing banner)")
	}
	return nil
}
