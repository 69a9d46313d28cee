package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/engine"
	"github.com/avolkov/primdb/internal/parser"
)

var (
	deleteWhere string
	deleteYes   bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <table>",
	Short: "Delete matching rows",
	Long:  "Delete the rows matching --where. Without --where every row is deleted, which asks for confirmation unless --yes is given. Example:\n  primdb delete users --where \"age < 18\"",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var where *engine.Condition
		if deleteWhere != "" {
			var err error
			where, err = parser.ParseCondition(deleteWhere)
			if err != nil {
				return err
			}
		}
		db, err := openDatabase()
		if err != nil {
			return err
		}
		res, err := newRunner(db, deleteYes).Exec(command.Delete{Table: args[0], Where: where})
		if err != nil {
			return err
		}
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteWhere, "where", "", "Rows to delete, e.g. \"age < 18\"")
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
