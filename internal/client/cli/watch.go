package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alawein/labsync/internal/client/connectivity"
	syncpkg "github.com/alawein/labsync/internal/client/sync"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run background sync until interrupted",
	Long: `Runs the connectivity monitor and the sync scheduler in the
foreground. The queue is drained on the configured interval and
immediately when the server becomes reachable again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		monitor := connectivity.NewMonitor(a.apiClient.Ping, a.cfg.ProbeInterval, a.logger)

		coordinator := syncpkg.NewCoordinator(
			a.apiClient, a.store, a.store, a.store, monitor.Online, a.logger)

		unsubscribe := coordinator.Subscribe(syncpkg.EventConflict, func(event syncpkg.Event) {
			if event.Conflict != nil {
				fmt.Printf("CONFLICT %s %s (server version: %d)\n",
					event.Conflict.EntityType, event.Conflict.EntityID, event.Conflict.ServerVersion)
			}
		})
		defer unsubscribe()

		// Переходы онлайн/офлайн транслируются планировщику
		transitions := make(chan bool, 1)
		defer monitor.Subscribe(func(online bool) {
			select {
			case transitions <- online:
			default:
			}
		})()

		scheduler := syncpkg.NewScheduler(coordinator, a.cfg.SyncInterval, transitions, a.logger)

		fmt.Printf("Watching queue, syncing to %s every %s (Ctrl+C to stop)\n",
			a.cfg.ServerURL, a.cfg.SyncInterval)

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error { return monitor.Run(groupCtx) })
		group.Go(func() error { return scheduler.Run(groupCtx) })

		if err := group.Wait(); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
