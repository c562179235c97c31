package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync queue and storage status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		items, err := a.coordinator.GetQueuedItems(ctx)
		if err != nil {
			return err
		}

		lastSync, err := a.store.GetLastSyncTime(ctx)
		if err != nil {
			return err
		}

		quota, err := a.store.StorageQuota(ctx)
		if err != nil {
			return err
		}

		online := a.apiClient.Ping(ctx) == nil

		fmt.Printf("Server:     %s (%s)\n", a.cfg.ServerURL, onlineLabel(online))
		if lastSync.IsZero() {
			fmt.Println("Last sync:  never")
		} else {
			fmt.Printf("Last sync:  %s\n", lastSync.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("Storage:    %d bytes used", quota.Used)
		if quota.Total > 0 {
			fmt.Printf(" of %d (%.1f%%)", quota.Total, quota.Percentage)
		}
		fmt.Println()

		fmt.Printf("Queued:     %d\n", len(items))
		for _, item := range items {
			fmt.Printf("  %-6s %s %s (attempts: %d)\n",
				item.Action, item.EntityType, item.EntityID, item.Attempts)
		}
		return nil
	},
}

func onlineLabel(online bool) string {
	if online {
		return "online"
	}
	return "offline"
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
