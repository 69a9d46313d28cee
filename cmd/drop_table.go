package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/command"
)

var dropTableYes bool

var dropTableCmd = &cobra.Command{
	Use:   "drop-table <table>",
	Short: "Drop a table and all its data",
	Long:  "Drop a table and all its data. Asks for confirmation unless --yes is given. Example:\n  primdb drop-table users --yes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		res, err := newRunner(db, dropTableYes).Exec(command.DropTable{Table: args[0]})
		if err != nil {
			return err
		}
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	dropTableCmd.Flags().BoolVar(&dropTableYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(dropTableCmd)
}
