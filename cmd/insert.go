package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/parser"
)

var insertCmd = &cobra.Command{
	Use:   "insert <table> <value>...",
	Short: "Insert one row of positional values",
	Long:  "Insert one row. Values are given positionally in column order; the ID is assigned automatically. Example:\n  primdb insert users Ann 30 true",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]any, 0, len(args)-1)
		for _, raw := range args[1:] {
			values = append(values, parser.ParseValue(raw))
		}
		db, err := openDatabase()
		if err != nil {
			return err
		}
		res, err := command.Apply(db, command.Insert{Table: args[0], Values: values})
		if err != nil {
			return err
		}
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insertCmd)
}
