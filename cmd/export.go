package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/avolkov/primdb/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export [destination]",
	Short: "Export the database to a portable SQLite snapshot",
	Long:  "Export every table to a single SQLite file. Without a destination a dated file is created in the current directory. Example:\n  primdb export backup.db",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dst string
		if len(args) == 1 {
			dst = args[0]
		} else {
			dst = defaultExportPath()
		}
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := exporter.ExportDatabase(db, dst); err != nil {
			return err
		}
		cmd.Printf("database exported to %s\n", dst)
		return nil
	},
}

// defaultExportPath picks primdb-YYYY-MM-DD.db in the current directory,
// suffixing a counter when the name is taken.
func defaultExportPath() string {
	date := time.Now().UTC().Format("2006-01-02")
	dst := filepath.Join(".", fmt.Sprintf("primdb-%s.db", date))
	for i := 1; ; i++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			return dst
		}
		dst = filepath.Join(".", fmt.Sprintf("primdb-%s-%d.db", date, i))
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
