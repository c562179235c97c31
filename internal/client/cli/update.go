package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alawein/labsync/internal/models"
)

var updateCmd = &cobra.Command{
	Use:   "update <type> <id> <payload-json>",
	Short: "Update an entity locally and queue it for sync",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		entityType := models.EntityType(args[0])
		if !entityType.Valid() {
			return fmt.Errorf("unknown entity type %q", args[0])
		}

		payload := json.RawMessage(args[2])
		if !json.Valid(payload) {
			return fmt.Errorf("payload is not valid JSON")
		}

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		entity, err := a.dataService.UpdateEntity(ctx, entityType, args[1], payload)
		if err != nil {
			return err
		}

		fmt.Printf("UPDATED %s %s (local version: %d)\n", entity.Type, entity.ID, entity.LocalVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
