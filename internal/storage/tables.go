package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shaj13/libcache"

	// Provides libcache.LRU
	_ "github.com/shaj13/libcache/lru"
)

// CachedTableStore keeps one JSON file per table under dir and caches reads
// for ttl. Saves invalidate the affected entry.
type CachedTableStore struct {
	dir   string
	ttl   time.Duration
	cache libcache.Cache
}

// NewCachedTableStore creates a table store rooted at dir with the given
// read-cache TTL. A non-positive ttl disables caching.
func NewCachedTableStore(dir string, ttl time.Duration) *CachedTableStore {
	return &CachedTableStore{
		dir:   dir,
		ttl:   ttl,
		cache: libcache.LRU.New(0),
	}
}

func (s *CachedTableStore) filePath(table string) string {
	return filepath.Join(s.dir, table+".json")
}

// Load returns the rows of table. A missing data file means an empty table;
// a corrupt file is logged and treated as empty.
func (s *CachedTableStore) Load(table string) ([]map[string]any, error) {
	if s.ttl > 0 {
		if v, ok := s.cache.Load(table); ok {
			log.Debug().Str("table", table).Msg("table cache hit")
			return copyRows(v.([]map[string]any)), nil
		}
	}

	path := s.filePath(table)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Warn().Str("table", table).Str("path", path).Err(err).
			Msg("table file is corrupt, treating as empty")
		rows = nil
	}

	if s.ttl > 0 {
		log.Debug().Str("table", table).Msg("table cache miss")
		s.cache.StoreWithTTL(table, copyRows(rows), s.ttl)
	}
	return rows, nil
}

// Save atomically replaces the table's data file and drops its cache entry.
func (s *CachedTableStore) Save(table string, rows []map[string]any) error {
	if rows == nil {
		rows = []map[string]any{}
	}
	if err := writeJSONAtomic(s.filePath(table), rows); err != nil {
		return fmt.Errorf("save table %s: %w", table, err)
	}
	s.cache.Delete(table)
	log.Debug().Str("table", table).Int("rows", len(rows)).Msg("table saved")
	return nil
}

// Delete removes the table's data file. A missing file is not an error.
func (s *CachedTableStore) Delete(table string) error {
	s.cache.Delete(table)
	if err := os.Remove(s.filePath(table)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete table %s: %w", table, err)
	}
	return nil
}

// Exists reports whether the table has a data file on disk.
func (s *CachedTableStore) Exists(table string) bool {
	_, err := os.Stat(s.filePath(table))
	return err == nil
}

// PurgeCache drops all cached table data.
func (s *CachedTableStore) PurgeCache() {
	s.cache.Purge()
}

// copyRows shallow-copies each row so callers cannot mutate cached data.
// Row values are scalars, so copying the maps is enough.
func copyRows(rows []map[string]any) []map[string]any {
	if rows == nil {
		return nil
	}
	out := make([]map[string]any, len(rows))
	for i, r := range rows {
		c := make(map[string]any, len(r))
		for k, v := range r {
			c[k] = v
		}
		out[i] = c
	}
	return out
}
