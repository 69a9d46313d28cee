package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/command"
)

var infoCmd = &cobra.Command{
	Use:   "info <table>",
	Short: "Show a table's columns and row count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		res, err := command.Apply(db, command.Info{Table: args[0]})
		if err != nil {
			return err
		}
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
