package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alawein/labsync/internal/models"
)

var (
	listSimulationID string
	listStatus       string
)

var listCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List locally stored entities",
	Args:  cobra.ExactArgs(1),
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

		var entities []*models.SyncableEntity
		switch {
		case listStatus != "":
			entities, err = a.store.GetEntitiesByStatus(ctx, entityType, models.SyncStatus(listStatus))
		case listSimulationID != "":
			entities, err = a.store.GetEntitiesBySimulation(ctx, entityType, listSimulationID)
		default:
			entities, err = a.dataService.ListEntities(ctx, entityType)
		}
		if err != nil {
			return err
		}

		if len(entities) == 0 {
			fmt.Println("No entities found")
			return nil
		}

		for _, entity := range entities {
			fmt.Printf("%s  %-8s  v%d  %s\n",
				entity.ID, entity.SyncStatus, entity.LocalVersion,
				entity.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("\nTotal: %d\n", len(entities))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSimulationID, "simulation", "", "filter by owning simulation ID")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by sync status (pending, syncing, synced, error)")
	rootCmd.AddCommand(listCmd)
}
