package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/engine"
)

var createTableCmd = &cobra.Command{
	Use:   "create-table <table> <name:type>...",
	Short: "Create a table with typed columns",
	Long:  "Create a table with typed columns (int, str, bool). Example:\n  primdb create-table users name:str age:int active:bool",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cols := make([]engine.Column, 0, len(args)-1)
		for _, def := range args[1:] {
			name, typ, ok := strings.Cut(def, ":")
			if !ok {
				return fmt.Errorf("bad column definition %q, expected <name>:<type>", def)
			}
			cols = append(cols, engine.Column{Name: name, Type: strings.ToLower(typ)})
		}
		db, err := openDatabase()
		if err != nil {
			return err
		}
		res, err := command.Apply(db, command.CreateTable{Table: args[0], Columns: cols})
		if err != nil {
			return err
		}
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createTableCmd)
}
