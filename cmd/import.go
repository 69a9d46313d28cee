package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/importer"
)

var importOverwrite bool

var importCmd = &cobra.Command{
	Use:   "import <source>",
	Short: "Import tables from a SQLite snapshot",
	Long:  "Import every table from a snapshot made by 'primdb export'. Tables that already exist are refused unless --overwrite is given. Example:\n  primdb import backup.db --overwrite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := importer.ImportDatabase(db, args[0], importOverwrite); err != nil {
			return err
		}
		cmd.Printf("database imported from %s\n", args[0])
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "Replace tables that already exist")
	rootCmd.AddCommand(importCmd)
}
