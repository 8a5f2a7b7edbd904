package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0shamedia/metamorphosis-doctor/internal/config"
	"github.com/0shamedia/metamorphosis-doctor/internal/sidecar"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Poll the ComfyUI sidecar until it responds",
	Long: `Poll the ComfyUI sidecar's queue endpoint until it answers or the
attempt budget runs out. Useful right after the sidecar is started, while
it is still loading models.

The endpoint, attempt budget, and delay come from COMFYUI_URL,
SIDECAR_HEALTH_RETRIES, and SIDECAR_RETRY_DELAY_SECONDS.

Examples:
  metamorphosis-doctor health
  SIDECAR_HEALTH_RETRIES=1 metamorphosis-doctor health`,
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	client := sidecar.New(cfg.Sidecar.URL, cfg.Sidecar.Timeout, cfg.Sidecar.Retries, cfg.Sidecar.RetryDelay)

	fmt.Printf("Polling %s\n", client.URL())
	err := client.Wait(cmd.Context(), func(attempt int, err error) {
		if err != nil {
			fmt.Printf("Health check attempt %d/%d failed: %v\n", attempt, client.Retries(), err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Println("Sidecar is healthy")
	return nil
}
