package catalog

import (
	"context"
	"fmt"
	"os"

	"broodcore/internal/infra/persistence/memory"
	"broodcore/internal/infra/persistence/postgres"
	"broodcore/internal/infra/persistence/sqlite"
	"broodcore/pkg/domain"
)

// StorageDriver identifies a concrete snapshot-store implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// SnapshotStore persists dataset snapshots so a deployment can pin the exact
// reference data it answered queries from.
type SnapshotStore interface {
	Save(ctx context.Context, ds Dataset) error
	Load(ctx context.Context) (Dataset, bool, error)
	Close() error
}

var (
	_ SnapshotStore = (*memory.Store)(nil)
	_ SnapshotStore = (*sqlite.Store)(nil)
	_ SnapshotStore = (*postgres.Store)(nil)
)

// OpenSnapshotStore selects a backend using environment variables.
// Defaults to sqlite when unset.
//
//	BROODCORE_STORAGE_DRIVER: memory|sqlite|postgres (default sqlite)
//	BROODCORE_SQLITE_PATH: path to sqlite file (default ./broodcore.db)
//	BROODCORE_POSTGRES_DSN: postgres DSN when driver=postgres
func OpenSnapshotStore(ctx context.Context) (SnapshotStore, error) {
	driver := os.Getenv("BROODCORE_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageSQLite)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(), nil
	case StorageSQLite:
		return sqlite.NewStore(os.Getenv("BROODCORE_SQLITE_PATH"))
	case StoragePostgres:
		return postgres.NewStore(ctx, os.Getenv("BROODCORE_POSTGRES_DSN"))
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}

// LoadOrSeed hydrates a registry from the snapshot store, seeding the store
// with the fallback dataset when it is empty. The registry always reflects
// what the store now holds.
func LoadOrSeed(ctx context.Context, store SnapshotStore, fallback Dataset) (*Registry, error) {
	ds, found, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if !found {
		if err := store.Save(ctx, fallback); err != nil {
			return nil, fmt.Errorf("seed snapshot: %w", err)
		}
		ds = fallback
	}
	return domain.NewRegistry(ds)
}
