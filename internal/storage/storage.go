// Package storage persists database metadata and table data as JSON files.
// All writes go through a temp file and an atomic rename so a crash mid-save
// never leaves a half-written file behind.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Meta is the serialized form of the database catalog.
type Meta struct {
	Tables map[string]TableMeta `json:"tables"`
}

// TableMeta describes one table's schema and auto-increment state.
type TableMeta struct {
	Columns []ColumnMeta `json:"columns"`
	NextID  int64        `json:"next_id"`
}

// ColumnMeta is a single column definition.
type ColumnMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// MetaStore persists the database catalog.
type MetaStore interface {
	Load() (Meta, error)
	Save(Meta) error
}

// TableStore persists per-table row data. Rows are JSON objects keyed by
// column name.
type TableStore interface {
	Load(table string) ([]map[string]any, error)
	Save(table string, rows []map[string]any) error
	Delete(table string) error
	Exists(table string) bool
}

// writeJSONAtomic marshals v and writes it to path via temp file + rename.
func writeJSONAtomic(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
