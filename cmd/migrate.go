package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, _, err := setup(cmd.Context(), true); err != nil {
			return err
		}
		log.Println("migrate: database is up to date")
		return nil
	},
}
