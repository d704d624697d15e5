package commands

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and insert sample pizzas into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			seeded, err := database.Seed(db)
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "sample pizzas inserted")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "pizza table not empty, nothing to do")
			}
			return nil
		},
	}
}
