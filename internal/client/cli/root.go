// Package cli реализует команды клиента labsync поверх cobra.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    string
	configPath string
	serverURL  string
)

// SetVersion sets the version string shown by the root command
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "labsync",
	Short: "Offline-first client for simulation data",
	Long: `labsync - An offline-first client for simulation data.

All mutations are written to the local store first and queued for
background synchronization. The client stays fully usable without a
server; queued changes are pushed when connectivity returns.`,
}

// Execute runs the root command
func Execute(ctx context.Context) {
	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "sync server URL override")
}
