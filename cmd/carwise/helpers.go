package main

import (
	"context"
	"fmt"

	"github.com/carwise/carwise/internal/common"
	"github.com/carwise/carwise/internal/config"
	"github.com/carwise/carwise/internal/service"
	"github.com/carwise/carwise/internal/storage"
)

// initStorage opens the favorites garage and brings its schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.DatabasePath()
	common.LogDebug("opening garage database", common.Fields{"path": dbPath})

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
