package main

import (
	"github.com/spf13/cobra"

	"helping-hands/volunteerhub/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		database, err := openDatabase(c.Context())
		if err != nil {
			return err
		}
		defer database.Close()

		logging.Info("Database schema is up to date")
		return nil
	},
}
