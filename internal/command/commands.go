package command

import (
	"fmt"
	"strings"

	"github.com/avolkov/primdb/internal/engine"
)

// CreateTable creates a new table.
type CreateTable struct {
	Table   string
	Columns []engine.Column
}

func (c CreateTable) Execute(db *engine.Database) (Result, error) {
	t, err := db.CreateTable(c.Table, c.Columns)
	if err != nil {
		return Result{}, err
	}
	cols := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cols[i] = col.String()
	}
	return Result{
		OK:      true,
		Message: fmt.Sprintf("table %q created with columns: %s", c.Table, strings.Join(cols, ", ")),
	}, nil
}

// DropTable removes a table and its data. Always confirmed.
type DropTable struct {
	Table string
}

func (c DropTable) ConfirmPrompt() string {
	return fmt.Sprintf("Drop table %q and all its data?", c.Table)
}

func (c DropTable) Execute(db *engine.Database) (Result, error) {
	if err := db.DropTable(c.Table); err != nil {
		return Result{}, err
	}
	return Result{OK: true, Message: fmt.Sprintf("table %q dropped", c.Table)}, nil
}

// ListTables prints the table names.
type ListTables struct{}

func (ListTables) Execute(db *engine.Database) (Result, error) {
	names := db.ListTables()
	if len(names) == 0 {
		return Result{OK: true, Message: "no tables in the database"}, nil
	}
	return Result{OK: true, Message: "tables:\n- " + strings.Join(names, "\n- ")}, nil
}

// Info prints a table's schema and row count.
type Info struct {
	Table string
}

func (c Info) Execute(db *engine.Database) (Result, error) {
	t, err := db.Table(c.Table)
	if err != nil {
		return Result{}, err
	}
	count, err := db.RowCount(c.Table)
	if err != nil {
		return Result{}, err
	}
	cols := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cols[i] = col.String()
	}
	msg := fmt.Sprintf("table: %s\ncolumns: %s\nrows: %d", c.Table, strings.Join(cols, ", "), count)
	return Result{OK: true, Message: msg}, nil
}

// Insert appends one row of positional values.
type Insert struct {
	Table  string
	Values []any
}

func (c Insert) Execute(db *engine.Database) (Result, error) {
	id, err := db.Insert(c.Table, c.Values)
	if err != nil {
		return Result{}, err
	}
	return Result{OK: true, Message: fmt.Sprintf("row ID=%d inserted into %q", id, c.Table)}, nil
}

// Select prints rows, optionally filtered.
type Select struct {
	Table string
	Where *engine.Condition
}

func (c Select) Execute(db *engine.Database) (Result, error) {
	t, err := db.Table(c.Table)
	if err != nil {
		return Result{}, err
	}
	rows, err := db.Select(c.Table, c.Where)
	if err != nil {
		return Result{}, err
	}
	if len(rows) == 0 {
		return Result{OK: true, Message: "no rows match"}, nil
	}
	return Result{OK: true, Message: renderRows(t, rows)}, nil
}

// Update changes columns on matching rows.
type Update struct {
	Table string
	Set   map[string]any
	Where *engine.Condition
}

func (c Update) Execute(db *engine.Database) (Result, error) {
	n, err := db.Update(c.Table, c.Set, c.Where)
	if err != nil {
		return Result{}, err
	}
	return Result{OK: true, Message: fmt.Sprintf("updated %d row(s)", n)}, nil
}

// Delete removes matching rows. Wiping a whole table (no condition) is
// confirmed first.
type Delete struct {
	Table string
	Where *engine.Condition
}

func (c Delete) ConfirmPrompt() string {
	if c.Where != nil {
		return ""
	}
	return fmt.Sprintf("Delete ALL rows from %q?", c.Table)
}

func (c Delete) Execute(db *engine.Database) (Result, error) {
	n, err := db.Delete(c.Table, c.Where)
	if err != nil {
		return Result{}, err
	}
	return Result{OK: true, Message: fmt.Sprintf("deleted %d row(s)", n)}, nil
}

// Help prints the command reference.
type Help struct{}

func (Help) Execute(*engine.Database) (Result, error) {
	return Result{OK: true, Message: HelpText()}, nil
}

// Exit ends the session.
type Exit struct{}

func (Exit) Execute(*engine.Database) (Result, error) {
	return Result{}, ErrExit
}
