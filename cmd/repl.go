package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Open the interactive session",
	Long:  "Open the interactive session. Running primdb with no arguments does the same thing.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		return repl.Run(db)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
