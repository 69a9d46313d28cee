package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/engine"
	"github.com/avolkov/primdb/internal/parser"
)

var selectWhere string

var selectCmd = &cobra.Command{
	Use:   "select <table>",
	Short: "Print rows, optionally filtered",
	Long:  "Print rows as a table. Example:\n  primdb select users --where \"age > 30\"",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var where *engine.Condition
		if selectWhere != "" {
			var err error
			where, err = parser.ParseCondition(selectWhere)
			if err != nil {
				return err
			}
		}
		db, err := openDatabase()
		if err != nil {
			return err
		}
		res, err := command.Apply(db, command.Select{Table: args[0], Where: where})
		if err != nil {
			return err
		}
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	selectCmd.Flags().StringVar(&selectWhere, "where", "", "Filter condition, e.g. \"age > 30\"")
	rootCmd.AddCommand(selectCmd)
}
