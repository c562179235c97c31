package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alawein/labsync/internal/models"
)

var getCmd = &cobra.Command{
	Use:   "get <type> <id>",
	Short: "Show a locally stored entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		entityType := models.EntityType(args[0])
		if !entityType.Valid() {
			return fmt.Errorf("unknown entity type %q", args[0])
		}

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		entity, err := a.dataService.GetEntity(ctx, entityType, args[1])
		if err != nil {
			return err
		}
		if entity == nil {
			return fmt.Errorf("%s %s not found", entityType, args[1])
		}

		fmt.Printf("ID:             %s\n", entity.ID)
		fmt.Printf("Type:           %s\n", entity.Type)
		if entity.SimulationID != "" {
			fmt.Printf("Simulation:     %s\n", entity.SimulationID)
		}
		fmt.Printf("Status:         %s\n", entity.SyncStatus)
		fmt.Printf("Local version:  %d\n", entity.LocalVersion)
		fmt.Printf("Server version: %d\n", entity.ServerVersion)
		fmt.Printf("Updated:        %s\n", entity.UpdatedAt.Format("2006-01-02 15:04:05"))
		if entity.SyncError != "" {
			fmt.Printf("Sync error:     %s\n", entity.SyncError)
		}
		fmt.Printf("Payload:        %s\n", string(entity.Payload))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
