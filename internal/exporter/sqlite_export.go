// Package exporter writes the whole database into a standalone SQLite
// snapshot file.
package exporter

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"

	"github.com/avolkov/primdb/internal/engine"
)

// Schema of a snapshot file. Shared with the importer.
const Schema = `
CREATE TABLE IF NOT EXISTS tables (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	name    TEXT NOT NULL UNIQUE,
	next_id INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS columns (
	table_id INTEGER NOT NULL REFERENCES tables(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	name     TEXT NOT NULL,
	type     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS rows (
	table_id INTEGER NOT NULL REFERENCES tables(id) ON DELETE CASCADE,
	row_id   INTEGER NOT NULL,
	payload  TEXT NOT NULL
);
`

// ExportDatabase snapshots every table of db into a fresh SQLite file at
// dstPath. An existing file at dstPath is replaced.
func ExportDatabase(db *engine.Database, dstPath string) error {
	if dir := filepath.Dir(dstPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dst dir: %w", err)
		}
	}
	if err := os.Remove(dstPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("replace dst: %w", err)
	}

	dst, err := sql.Open("sqlite", dstPath)
	if err != nil {
		return fmt.Errorf("open dst db: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := dst.Exec(Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	trx, err := dst.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	for _, name := range db.ListTables() {
		if err := exportTableTx(trx, db, name); err != nil {
			return err
		}
	}
	return trx.Commit()
}

func exportTableTx(trx *sql.Tx, db *engine.Database, name string) error {
	t, err := db.Table(name)
	if err != nil {
		return err
	}
	res, err := trx.Exec("INSERT INTO tables (name, next_id) VALUES (?, ?)", t.Name, t.NextID)
	if err != nil {
		return fmt.Errorf("insert table %s: %w", name, err)
	}
	tableID, err := res.LastInsertId()
	if err != nil {
		return err
	}
	for i, col := range t.Columns {
		if _, err := trx.Exec(
			"INSERT INTO columns (table_id, position, name, type) VALUES (?, ?, ?, ?)",
			tableID, i+1, col.Name, col.Type,
		); err != nil {
			return fmt.Errorf("insert column %s.%s: %w", name, col.Name, err)
		}
	}

	rows, err := db.Select(name, nil)
	if err != nil {
		return err
	}
	for _, row := range rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encode row of %s: %w", name, err)
		}
		if _, err := trx.Exec(
			"INSERT INTO rows (table_id, row_id, payload) VALUES (?, ?, ?)",
			tableID, row[engine.IDColumn], string(payload),
		); err != nil {
			return fmt.Errorf("insert row of %s: %w", name, err)
		}
	}
	return nil
}
