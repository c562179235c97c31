package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alawein/labsync/internal/models"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <type> <id>",
	Short: "Delete an entity locally and queue the deletion for sync",
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

		if err := a.dataService.DeleteEntity(ctx, entityType, args[1]); err != nil {
			return err
		}

		fmt.Printf("DELETED %s %s\n", entityType, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
