package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/config"
	"github.com/avolkov/primdb/internal/logging"
	"github.com/avolkov/primdb/internal/repl"
)

var logLevelFlag string

var rootCmd = &cobra.Command{
	Use:   "primdb",
	Short: "primdb is a primitive JSON-file table database",
	Long:  "primdb stores typed tables as plain JSON files on disk and speaks a small SQL-like command language",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		level := settings.LogLevel
		if logLevelFlag != "" {
			level = logLevelFlag
		}
		logging.Setup(os.Stderr, level)
		return nil
	},
	// Running primdb with no subcommand opens the interactive session.
	RunE: func(_ *cobra.Command, _ []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		return repl.Run(db)
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level (debug, info, warn, error)")
}
