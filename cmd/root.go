package cmd

import (
	"fmt"
	"os"

	"yournews/config"
	"yournews/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var prettyLogs bool

var RootCommand = &cobra.Command{
	Use:   "yournews",
	Short: "YourNews publishing API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			// not an error outside development
			logging.Debug().Msg("No .env file found")
		}
	},
}

func init() {
	RootCommand.PersistentFlags().BoolVar(&prettyLogs, "pretty-logs", false, "human readable console logs")
}

func Execute() {
	if err := RootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up logging.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LogLevel, prettyLogs)
	return cfg
}

func loggingFatal(msg string, err error) {
	logging.Fatal().Err(err).Msg(msg)
}
