package importer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/primdb/internal/engine"
	"github.com/avolkov/primdb/internal/exporter"
	"github.com/avolkov/primdb/internal/storage"
)

func openDB(t *testing.T) *engine.Database {
	t.Helper()
	dir := t.TempDir()
	db, err := engine.Open(
		storage.NewJSONMetaStore(filepath.Join(dir, "db_meta.json")),
		storage.NewCachedTableStore(filepath.Join(dir, "tables"), time.Minute),
	)
	require.NoError(t, err)
	return db
}

func seed(t *testing.T, db *engine.Database) {
	t.Helper()
	_, err := db.CreateTable("users", []engine.Column{
		{Name: "name", Type: engine.TypeStr},
		{Name: "active", Type: engine.TypeBool},
	})
	require.NoError(t, err)
	for _, v := range [][]any{{"Ada", true}, {"Linus", false}} {
		_, err := db.Insert("users", v)
		require.NoError(t, err)
	}
	_, err = db.CreateTable("empty", []engine.Column{{Name: "v", Type: engine.TypeInt}})
	require.NoError(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openDB(t)
	seed(t, src)
	snap := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, exporter.ExportDatabase(src, snap))

	dst := openDB(t)
	require.NoError(t, ImportDatabase(dst, snap, false))

	assert.Equal(t, []string{"empty", "users"}, dst.ListTables())

	rows, err := dst.Select("users", nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0]["ID"])
	assert.Equal(t, "Ada", rows[0]["name"])
	assert.Equal(t, true, rows[0]["active"])

	// the auto-increment sequence continues where the source left off
	id, err := dst.Insert("users", []any{"Grace", true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestImportRefusesExistingTable(t *testing.T) {
	src := openDB(t)
	seed(t, src)
	snap := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, exporter.ExportDatabase(src, snap))

	dst := openDB(t)
	_, err := dst.CreateTable("users", []engine.Column{{Name: "other", Type: engine.TypeStr}})
	require.NoError(t, err)

	err = ImportDatabase(dst, snap, false)
	require.ErrorContains(t, err, `"users" already exists`)

	// nothing was imported, the clash was detected up front
	assert.Equal(t, []string{"users"}, dst.ListTables())
}

func TestImportOverwriteReplacesTable(t *testing.T) {
	src := openDB(t)
	seed(t, src)
	snap := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, exporter.ExportDatabase(src, snap))

	dst := openDB(t)
	_, err := dst.CreateTable("users", []engine.Column{{Name: "other", Type: engine.TypeStr}})
	require.NoError(t, err)
	_, err = dst.Insert("users", []any{"stale"})
	require.NoError(t, err)

	require.NoError(t, ImportDatabase(dst, snap, true))

	tbl, err := dst.Table("users")
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "name", "active"}, tbl.ColumnNames())

	rows, err := dst.Select("users", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestImportMissingFile(t *testing.T) {
	err := ImportDatabase(openDB(t), filepath.Join(t.TempDir(), "nope.db"), false)
	assert.Error(t, err)
}

func TestExportReplacesExistingSnapshot(t *testing.T) {
	src := openDB(t)
	seed(t, src)
	snap := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, exporter.ExportDatabase(src, snap))
	// a second export to the same path must not accumulate rows
	require.NoError(t, exporter.ExportDatabase(src, snap))

	dst := openDB(t)
	require.NoError(t, ImportDatabase(dst, snap, false))
	rows, err := dst.Select("users", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
