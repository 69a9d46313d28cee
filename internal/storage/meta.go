package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// JSONMetaStore stores the catalog in a single JSON file.
type JSONMetaStore struct {
	path string
}

// NewJSONMetaStore creates a meta store backed by the file at path.
func NewJSONMetaStore(path string) *JSONMetaStore {
	return &JSONMetaStore{path: path}
}

// Load reads the catalog. A missing file yields an empty catalog; a corrupt
// file is logged and treated as empty rather than aborting startup.
func (s *JSONMetaStore) Load() (Meta, error) {
	empty := Meta{Tables: map[string]TableMeta{}}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return empty, nil
		}
		return empty, fmt.Errorf("read metadata: %w", err)
	}
	var m Meta
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Warn().Str("path", s.path).Err(err).Msg("metadata file is corrupt, starting empty")
		return empty, nil
	}
	if m.Tables == nil {
		m.Tables = map[string]TableMeta{}
	}
	return m, nil
}

// Save atomically replaces the catalog file.
func (s *JSONMetaStore) Save(m Meta) error {
	if err := writeJSONAtomic(s.path, m); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	log.Debug().Str("path", s.path).Int("tables", len(m.Tables)).Msg("metadata saved")
	return nil
}
