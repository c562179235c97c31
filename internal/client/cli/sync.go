package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Drain the sync queue once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.apiClient.Ping(ctx); err != nil {
			return fmt.Errorf("server %s is unreachable: %w", a.cfg.ServerURL, err)
		}

		result, err := a.coordinator.Drain(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Sync completed: %d synced, %d failed\n", result.Synced, result.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
