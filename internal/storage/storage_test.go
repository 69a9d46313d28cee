package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db_meta.json")
	s := NewJSONMetaStore(path)

	m, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, m.Tables)

	m.Tables["users"] = TableMeta{
		Columns: []ColumnMeta{{Name: "ID", Type: "int"}, {Name: "name", Type: "str"}},
		NextID:  3,
	}
	require.NoError(t, s.Save(m))

	got, err := s.Load()
	require.NoError(t, err)
	require.Contains(t, got.Tables, "users")
	assert.Equal(t, int64(3), got.Tables["users"].NextID)
	assert.Len(t, got.Tables["users"].Columns, 2)

	// no temp file left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestMetaStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db_meta.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	m, err := NewJSONMetaStore(path).Load()
	require.NoError(t, err)
	assert.Empty(t, m.Tables)
}

func TestTableStoreRoundTrip(t *testing.T) {
	s := NewCachedTableStore(t.TempDir(), time.Minute)

	rows, err := s.Load("users")
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.False(t, s.Exists("users"))

	in := []map[string]any{{"ID": int64(1), "name": "Ada"}}
	require.NoError(t, s.Save("users", in))
	assert.True(t, s.Exists("users"))

	got, err := s.Load("users")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0]["name"])
}

func TestTableStoreCachesReads(t *testing.T) {
	dir := t.TempDir()
	s := NewCachedTableStore(dir, time.Minute)

	require.NoError(t, s.Save("users", []map[string]any{{"ID": float64(1)}}))
	first, err := s.Load("users")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// rewrite the file behind the store's back: within the TTL the stale
	// cached rows must still be served
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("[]"), 0o644))
	cached, err := s.Load("users")
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	// a save invalidates the entry
	require.NoError(t, s.Save("users", nil))
	fresh, err := s.Load("users")
	require.NoError(t, err)
	assert.Empty(t, fresh)
}

func TestTableStoreCachedRowsAreCopies(t *testing.T) {
	s := NewCachedTableStore(t.TempDir(), time.Minute)
	require.NoError(t, s.Save("users", []map[string]any{{"name": "Ada"}}))

	first, err := s.Load("users")
	require.NoError(t, err)
	first[0]["name"] = "mutated"

	second, err := s.Load("users")
	require.NoError(t, err)
	assert.Equal(t, "Ada", second[0]["name"])
}

func TestTableStoreDelete(t *testing.T) {
	s := NewCachedTableStore(t.TempDir(), time.Minute)
	require.NoError(t, s.Save("users", []map[string]any{{"ID": float64(1)}}))
	require.NoError(t, s.Delete("users"))
	assert.False(t, s.Exists("users"))

	// deleting a missing table is fine
	require.NoError(t, s.Delete("users"))

	rows, err := s.Load("users")
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestTableStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewCachedTableStore(dir, 0)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("not json"), 0o644))

	rows, err := s.Load("users")
	require.NoError(t, err)
	assert.Nil(t, rows)
}
