package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/command"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		res, err := command.Apply(db, command.ListTables{})
		if err != nil {
			return err
		}
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
