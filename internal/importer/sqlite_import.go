// Package importer restores tables from a SQLite snapshot file produced by
// the exporter.
package importer

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"

	"github.com/avolkov/primdb/internal/engine"
)

// ImportDatabase loads every table from the snapshot at srcPath into db.
// When overwrite is false, a snapshot table that already exists in db is an
// error and nothing is changed; with overwrite, the existing table is
// dropped first.
func ImportDatabase(db *engine.Database, srcPath string, overwrite bool) error {
	if _, err := os.Stat(srcPath); err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	src, err := sql.Open("sqlite", srcPath)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = src.Close() }()

	snaps, err := readSnapshot(src)
	if err != nil {
		return err
	}

	if !overwrite {
		for _, s := range snaps {
			if _, err := db.Table(s.name); err == nil {
				return fmt.Errorf("table %q already exists; re-run with overwrite to replace it", s.name)
			}
		}
	}

	for _, s := range snaps {
		if overwrite {
			if _, err := db.Table(s.name); err == nil {
				if err := db.DropTable(s.name); err != nil {
					return err
				}
			}
		}
		t, err := engine.NewTable(s.name, s.columns)
		if err != nil {
			return fmt.Errorf("snapshot table %q: %w", s.name, err)
		}
		t.NextID = s.nextID
		if err := db.RestoreTable(t, s.rows); err != nil {
			return err
		}
	}
	return nil
}

type tableSnapshot struct {
	name    string
	nextID  int64
	columns []engine.Column
	rows    []map[string]any
}

func readSnapshot(src *sql.DB) ([]tableSnapshot, error) {
	rows, err := src.Query("SELECT id, name, next_id FROM tables ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("read snapshot tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type entry struct {
		id   int64
		snap tableSnapshot
	}
	entries := []entry{}
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.id, &e.snap.name, &e.snap.nextID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].snap.columns, err = readColumns(src, entries[i].id); err != nil {
			return nil, fmt.Errorf("snapshot table %q: %w", entries[i].snap.name, err)
		}
		if entries[i].snap.rows, err = readRows(src, entries[i].id); err != nil {
			return nil, fmt.Errorf("snapshot table %q: %w", entries[i].snap.name, err)
		}
	}

	out := make([]tableSnapshot, len(entries))
	for i, e := range entries {
		out[i] = e.snap
	}
	return out, nil
}

func readColumns(src *sql.DB, tableID int64) ([]engine.Column, error) {
	rows, err := src.Query("SELECT name, type FROM columns WHERE table_id = ? ORDER BY position ASC", tableID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cols := []engine.Column{}
	for rows.Next() {
		var c engine.Column
		if err := rows.Scan(&c.Name, &c.Type); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

func readRows(src *sql.DB, tableID int64) ([]map[string]any, error) {
	rows, err := src.Query("SELECT payload FROM rows WHERE table_id = ? ORDER BY row_id ASC", tableID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []map[string]any{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var row map[string]any
		if err := json.Unmarshal([]byte(payload), &row); err != nil {
			return nil, fmt.Errorf("decode row payload: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
