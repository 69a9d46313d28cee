package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/parser"
)

var updateWhere string

var updateCmd = &cobra.Command{
	Use:   "update <table> <col>=<value>...",
	Short: "Update columns on matching rows",
	Long:  "Update columns on the rows matching --where. Example:\n  primdb update users age=31 --where \"name = Ann\"",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if updateWhere == "" {
			return fmt.Errorf("update requires --where")
		}
		where, err := parser.ParseCondition(updateWhere)
		if err != nil {
			return err
		}
		set := make(map[string]any, len(args)-1)
		for _, assignment := range args[1:] {
			col, val, ok := strings.Cut(assignment, "=")
			if !ok || strings.TrimSpace(col) == "" {
				return fmt.Errorf("bad assignment %q, expected <col>=<value>", assignment)
			}
			set[strings.TrimSpace(col)] = parser.ParseValue(strings.TrimSpace(val))
		}
		db, err := openDatabase()
		if err != nil {
			return err
		}
		res, err := command.Apply(db, command.Update{Table: args[0], Set: set, Where: where})
		if err != nil {
			return err
		}
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateWhere, "where", "", "Rows to update, e.g. \"ID = 1\" (required)")
	rootCmd.AddCommand(updateCmd)
}
