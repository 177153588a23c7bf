package main

import (
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/database"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/logging"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Create or update the schema, seed the Admin, Manager and Employee roles and add indexes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, *configFile)
		},
	}
}

func runMigrate(cmd *cobra.Command, configFile string) error {
	cfg, err := loadConfig(cmd, configFile)
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)

	cmd.Println("Connecting to database...")
	db, err := database.Connect(cfg.DB)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	cmd.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
	}

	cmd.Println("Migrations completed successfully")
	return nil
}
