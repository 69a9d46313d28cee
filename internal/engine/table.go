// Package engine implements the primitive table database: typed columns,
// auto-increment IDs, and row-level insert/select/update/delete on top of a
// pluggable storage layer.
package engine

import (
	"fmt"

	"github.com/avolkov/primdb/internal/nameutil"
	"github.com/avolkov/primdb/internal/storage"
)

// Supported column types.
const (
	TypeInt  = "int"
	TypeStr  = "str"
	TypeBool = "bool"
)

// IDColumn is the auto-increment column prepended to every table.
const IDColumn = "ID"

// SupportedTypes lists the valid column type names.
func SupportedTypes() []string {
	return []string{TypeInt, TypeStr, TypeBool}
}

// Column is a named, typed table column.
type Column struct {
	Name string
	Type string
}

// Validate checks the column name and type.
func (c Column) Validate() error {
	if err := nameutil.ValidateColumnName(c.Name); err != nil {
		return err
	}
	switch c.Type {
	case TypeInt, TypeStr, TypeBool:
		return nil
	default:
		return fmt.Errorf("%w: %q (allowed: int, str, bool)", ErrInvalidType, c.Type)
	}
}

func (c Column) String() string {
	return c.Name + ":" + c.Type
}

// Table holds a table's schema and auto-increment state. Row data lives in
// the storage layer, not here.
type Table struct {
	Name    string
	Columns []Column
	NextID  int64
}

// NewTable builds a table from user-supplied columns. An ID:int column is
// prepended when the definition does not include one.
func NewTable(name string, cols []Column) (*Table, error) {
	if err := nameutil.ValidateTableName(name); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	hasID := false
	for _, c := range cols {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Name == IDColumn {
			hasID = true
		}
	}
	if !hasID {
		cols = append([]Column{{Name: IDColumn, Type: TypeInt}}, cols...)
	}
	return &Table{Name: name, Columns: cols, NextID: 1}, nil
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// BuildRow validates positional values against the non-ID columns, coerces
// each to its column type, and assigns the next auto-increment ID. NextID is
// not advanced; the caller does that once the row is persisted.
func (t *Table) BuildRow(values []any) (map[string]any, error) {
	fill := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Name != IDColumn {
			fill = append(fill, c)
		}
	}
	if len(values) != len(fill) {
		return nil, fmt.Errorf("expected %d values, got %d", len(fill), len(values))
	}
	row := map[string]any{IDColumn: t.NextID}
	for i, c := range fill {
		v, err := Coerce(c.Type, values[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		row[c.Name] = v
	}
	return row, nil
}

// NormalizeRow brings a row loaded from storage back to engine types (JSON
// numbers arrive as float64) and checks that every column is present.
func (t *Table) NormalizeRow(raw map[string]any) (map[string]any, error) {
	row := make(map[string]any, len(t.Columns))
	for _, c := range t.Columns {
		v, ok := raw[c.Name]
		if !ok {
			return nil, fmt.Errorf("row is missing column %q", c.Name)
		}
		cv, err := Coerce(c.Type, v)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		row[c.Name] = cv
	}
	return row, nil
}

func (t *Table) toMeta() storage.TableMeta {
	cols := make([]storage.ColumnMeta, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = storage.ColumnMeta{Name: c.Name, Type: c.Type}
	}
	return storage.TableMeta{Columns: cols, NextID: t.NextID}
}

func tableFromMeta(name string, m storage.TableMeta) (*Table, error) {
	cols := make([]Column, len(m.Columns))
	for i, cm := range m.Columns {
		cols[i] = Column{Name: cm.Name, Type: cm.Type}
		if err := cols[i].Validate(); err != nil {
			return nil, err
		}
	}
	nextID := m.NextID
	if nextID < 1 {
		nextID = 1
	}
	return &Table{Name: name, Columns: cols, NextID: nextID}, nil
}
