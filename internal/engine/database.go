package engine

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/avolkov/primdb/internal/storage"
)

// Database is the catalog of tables plus the storage backing their rows.
type Database struct {
	meta   storage.MetaStore
	data   storage.TableStore
	tables map[string]*Table
}

// Open loads the catalog from meta. Tables whose metadata cannot be decoded
// are skipped with a warning so one bad entry does not take the whole
// database down.
func Open(meta storage.MetaStore, data storage.TableStore) (*Database, error) {
	m, err := meta.Load()
	if err != nil {
		return nil, err
	}
	db := &Database{meta: meta, data: data, tables: map[string]*Table{}}
	for name, tm := range m.Tables {
		t, err := tableFromMeta(name, tm)
		if err != nil {
			log.Warn().Str("table", name).Err(err).Msg("skipping table with bad metadata")
			continue
		}
		db.tables[name] = t
	}
	return db, nil
}

// CreateTable registers a new table and persists the catalog.
func (db *Database) CreateTable(name string, cols []Column) (*Table, error) {
	if _, exists := db.tables[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrTableExists, name)
	}
	t, err := NewTable(name, cols)
	if err != nil {
		return nil, err
	}
	db.tables[name] = t
	if err := db.saveMeta(); err != nil {
		delete(db.tables, name)
		return nil, err
	}
	return t, nil
}

// DropTable removes a table, its metadata, and its data file.
func (db *Database) DropTable(name string) error {
	if _, ok := db.tables[name]; !ok {
		return fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	delete(db.tables, name)
	if err := db.saveMeta(); err != nil {
		return err
	}
	return db.data.Delete(name)
}

// Table returns the named table.
func (db *Database) Table(name string) (*Table, error) {
	t, ok := db.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	return t, nil
}

// ListTables returns all table names, sorted.
func (db *Database) ListTables() []string {
	names := make([]string, 0, len(db.tables))
	for name := range db.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RowCount returns the number of rows stored for the named table.
func (db *Database) RowCount(name string) (int, error) {
	if _, err := db.Table(name); err != nil {
		return 0, err
	}
	rows, err := db.data.Load(name)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Insert appends a row built from positional values and returns its ID.
func (db *Database) Insert(table string, values []any) (int64, error) {
	t, err := db.Table(table)
	if err != nil {
		return 0, err
	}
	row, err := t.BuildRow(values)
	if err != nil {
		return 0, err
	}
	rows, err := db.loadRows(t)
	if err != nil {
		return 0, err
	}
	rows = append(rows, row)
	if err := db.data.Save(table, rows); err != nil {
		return 0, err
	}
	id := t.NextID
	t.NextID++
	if err := db.saveMeta(); err != nil {
		return 0, err
	}
	return id, nil
}

// Select returns the rows matching where; a nil condition matches all rows.
func (db *Database) Select(table string, where *Condition) ([]map[string]any, error) {
	t, err := db.Table(table)
	if err != nil {
		return nil, err
	}
	rows, err := db.loadRows(t)
	if err != nil {
		return nil, err
	}
	if where == nil {
		return rows, nil
	}
	matched := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		ok, err := where.Match(t, row)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// Update applies set to every row matching where and returns the number of
// rows changed. The ID column cannot be assigned.
func (db *Database) Update(table string, set map[string]any, where *Condition) (int, error) {
	t, err := db.Table(table)
	if err != nil {
		return 0, err
	}
	if _, hasID := set[IDColumn]; hasID {
		return 0, fmt.Errorf("column %q cannot be updated", IDColumn)
	}
	coerced := make(map[string]any, len(set))
	for name, v := range set {
		col, ok := t.Column(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		cv, err := Coerce(col.Type, v)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		coerced[name] = cv
	}

	rows, err := db.loadRows(t)
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, row := range rows {
		if where != nil {
			ok, err := where.Match(t, row)
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
		}
		for name, v := range coerced {
			row[name] = v
		}
		changed++
	}
	if changed == 0 {
		return 0, nil
	}
	if err := db.data.Save(table, rows); err != nil {
		return 0, err
	}
	return changed, nil
}

// Delete removes every row matching where and returns the number removed.
// A nil condition removes all rows.
func (db *Database) Delete(table string, where *Condition) (int, error) {
	t, err := db.Table(table)
	if err != nil {
		return 0, err
	}
	rows, err := db.loadRows(t)
	if err != nil {
		return 0, err
	}
	kept := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if where != nil {
			ok, err := where.Match(t, row)
			if err != nil {
				return 0, err
			}
			if !ok {
				kept = append(kept, row)
				continue
			}
		}
	}
	removed := len(rows) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := db.data.Save(table, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// RestoreTable installs a fully formed table (schema, auto-increment state,
// rows) in one step. Snapshot import uses it to preserve row IDs, which a
// plain Insert would reassign.
func (db *Database) RestoreTable(t *Table, rows []map[string]any) error {
	if _, exists := db.tables[t.Name]; exists {
		return fmt.Errorf("%w: %q", ErrTableExists, t.Name)
	}
	normalized := make([]map[string]any, 0, len(rows))
	for i, r := range rows {
		row, err := t.NormalizeRow(r)
		if err != nil {
			return fmt.Errorf("table %q row %d: %w", t.Name, i, err)
		}
		normalized = append(normalized, row)
	}
	db.tables[t.Name] = t
	if err := db.saveMeta(); err != nil {
		delete(db.tables, t.Name)
		return err
	}
	return db.data.Save(t.Name, normalized)
}

func (db *Database) loadRows(t *Table) ([]map[string]any, error) {
	raw, err := db.data.Load(t.Name)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]any, 0, len(raw))
	for i, r := range raw {
		row, err := t.NormalizeRow(r)
		if err != nil {
			return nil, fmt.Errorf("table %q row %d: %w", t.Name, i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (db *Database) saveMeta() error {
	m := storage.Meta{Tables: make(map[string]storage.TableMeta, len(db.tables))}
	for name, t := range db.tables {
		m.Tables[name] = t.toMeta()
	}
	return db.meta.Save(m)
}
