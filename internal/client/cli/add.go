package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alawein/labsync/internal/models"
)

var addSimulationID string

var addCmd = &cobra.Command{
	Use:   "add <type> <payload-json>",
	Short: "Create an entity locally and queue it for sync",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		entityType := models.EntityType(args[0])
		if !entityType.Valid() {
			return fmt.Errorf("unknown entity type %q", args[0])
		}

		payload := json.RawMessage(args[1])
		if !json.Valid(payload) {
			return fmt.Errorf("payload is not valid JSON")
		}

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		entity, err := a.dataService.CreateEntity(ctx, entityType, addSimulationID, payload)
		if err != nil {
			return err
		}

		fmt.Printf("CREATED %s %s (status: %s)\n", entity.Type, entity.ID, entity.SyncStatus)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addSimulationID, "simulation", "", "owning simulation ID")
	rootCmd.AddCommand(addCmd)
}
