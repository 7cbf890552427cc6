package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"helping-hands/volunteerhub/internal/api"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
)

var adminFlags struct {
	email    string
	name     string
	password string
}

// Admins cannot sign up over HTTP, so the first one is seeded here.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		ctx := c.Context()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		deps, err := api.InitDependencies(ctx, cfg, database, metrics.NewMetricsRegistry())
		if err != nil {
			return err
		}
		defer deps.Close()

		admin, err := deps.Services.Accounts.CreateAdmin(ctx, adminFlags.email, adminFlags.name, adminFlags.password)
		if err != nil {
			return err
		}
		logging.Info("Admin created", "id", admin.ID, "email", admin.Email)
		fmt.Fprintf(c.OutOrStdout(), "created admin %d (%s)\n", admin.ID, admin.Email)
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminFlags.email, "email", "", "admin email")
	f.StringVar(&adminFlags.name, "name", "", "admin display name")
	f.StringVar(&adminFlags.password, "password", "", "admin password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("name")
	_ = createAdminCmd.MarkFlagRequired("password")
}
