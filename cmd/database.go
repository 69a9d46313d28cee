package cmd

import (
	"time"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/config"
	"github.com/avolkov/primdb/internal/engine"
	"github.com/avolkov/primdb/internal/storage"
	"github.com/avolkov/primdb/internal/utils"
)

// openDatabase wires the stores from the resolved configuration and opens
// the database.
func openDatabase() (*engine.Database, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if _, err := config.EnsureDataDir(); err != nil {
		return nil, err
	}
	metaPath, err := config.MetaPath()
	if err != nil {
		return nil, err
	}
	tablesDir, err := config.ResolveTablesDir(settings)
	if err != nil {
		return nil, err
	}
	meta := storage.NewJSONMetaStore(metaPath)
	data := storage.NewCachedTableStore(tablesDir, time.Duration(settings.CacheTTL)*time.Second)
	return engine.Open(meta, data)
}

// newRunner returns a Runner that prompts on stdin for destructive
// commands unless yes is set.
func newRunner(db *engine.Database, yes bool) *command.Runner {
	r := &command.Runner{DB: db}
	if !yes {
		r.Confirm = utils.Confirm
	}
	return r
}
