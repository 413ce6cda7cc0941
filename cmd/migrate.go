package cmd

import (
	"yournews/config"
	"yournews/logging"

	"github.com/spf13/cobra"
)

func init() {
	migrateCommand := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			db := openDB(cfg)

			if err := config.Migrate(db); err != nil {
				loggingFatal("Migration failed", err)
			}
			logging.Info().Msg("Database schema is up to date")
		},
	}
	RootCommand.AddCommand(migrateCommand)
}
