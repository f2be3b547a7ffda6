package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prittamravi/clines/internal/cache"
	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/core"
	"github.com/prittamravi/clines/internal/db"
)

func historyPath() string {
	return filepath.Join(config.StateDirName, config.DBFileName)
}

// openService builds a service for one command. With record set the
// history database is created if needed; with cached set repeated scans
// reuse unchanged file counts.
func openService(record, cached bool) (*core.Service, func(), error) {
	svc := core.NewService(nil, nil)
	cleanup := func() {}

	if cached {
		c, err := cache.New(config.DefaultCacheSize)
		if err != nil {
			return nil, nil, fmt.Errorf("create cache: %w", err)
		}
		svc.Cache = c
	}
	if record {
		if err := os.MkdirAll(config.StateDirName, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create state dir: %w", err)
		}
		database, err := db.Open(historyPath())
		if err != nil {
			return nil, nil, fmt.Errorf("open history: %w", err)
		}
		svc.DB = database
		cleanup = func() { database.Close() }
	}
	return svc, cleanup, nil
}

// openHistory opens the history database only if it already exists.
func openHistory() (*db.DB, error) {
	if _, err := os.Stat(historyPath()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	database, err := db.Open(historyPath())
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return database, nil
}
