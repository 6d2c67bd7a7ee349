package main

import (
	"github.com/spf13/cobra"

	"github.com/Vayras/ta-backend/pkg/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	var down int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (or roll back with --down N)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sqlDB, err := a.db.DB()
			if err != nil {
				return err
			}
			if down > 0 {
				return database.RollbackMigrations(sqlDB, down, a.logger)
			}
			return database.RunMigrations(sqlDB, a.logger)
		},
	}
	cmd.Flags().IntVar(&down, "down", 0, "number of migrations to roll back")
	return cmd
}
