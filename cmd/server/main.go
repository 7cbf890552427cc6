package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/config"
	"helping-hands/volunteerhub/internal/db"
	"helping-hands/volunteerhub/internal/logging"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "volunteerhub",
	Short:         "Volunteer and organization matching API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(c *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if err := logging.Init(cfg.AppEnv); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		common.SetProduction(cfg.IsProduction())
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logging.Close()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openDatabase connects and migrates, so every command sees the current schema.
func openDatabase(ctx context.Context) (*db.Database, error) {
	database, err := db.Open(ctx, cfg.DSN(), cfg.Postgres.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logging.Info("Connected to Postgres", "host", cfg.Postgres.Host, "database", cfg.Postgres.Database)

	migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := database.Migrate(migrateCtx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return database, nil
}
