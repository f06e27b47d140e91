package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"broodcore/internal/infra/persistence/memory"
	"broodcore/internal/infra/persistence/sqlite"
	"broodcore/internal/staticdata"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	if _, found, err := store.Load(ctx); err != nil || found {
		t.Fatalf("empty store: found=%v err=%v", found, err)
	}
	ds, err := staticdata.Dataset()
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	if err := store.Save(ctx, ds); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, found, err := store.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(loaded.Breeds) != len(ds.Breeds) {
		t.Errorf("breed count = %d, want %d", len(loaded.Breeds), len(ds.Breeds))
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshots", "broodcore.db")
	store, err := sqlite.NewStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = store.Close() }()

	ds, err := staticdata.Dataset()
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	if err := store.Save(ctx, ds); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Saving twice exercises the upsert path.
	if err := store.Save(ctx, ds); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, found, err := store.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(loaded.Colours) != len(ds.Colours) {
		t.Fatalf("colour count = %d, want %d", len(loaded.Colours), len(ds.Colours))
	}
	// A loaded snapshot must still satisfy every registry invariant,
	// including the integer-keyed site ID maps surviving JSON.
	reg, err := LoadOrSeed(ctx, store, ds)
	if err != nil {
		t.Fatalf("registry from snapshot: %v", err)
	}
	fae, ok := reg.FindBreed("Fae")
	if !ok {
		t.Fatal("Fae missing after round trip")
	}
	basic, ok := reg.FindGene(SlotPrimary, "Basic")
	if !ok {
		t.Fatal("Basic missing after round trip")
	}
	if id, ok := reg.GeneSiteID(SlotPrimary, basic, fae); !ok || id != 0 {
		t.Errorf("GeneSiteID after round trip = %d, %v; want 0", id, ok)
	}
}

func TestLoadOrSeedSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	ds, err := staticdata.Dataset()
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	reg, err := LoadOrSeed(ctx, store, ds)
	if err != nil {
		t.Fatalf("LoadOrSeed: %v", err)
	}
	if reg == nil {
		t.Fatal("nil registry")
	}
	if _, found, err := store.Load(ctx); err != nil || !found {
		t.Fatalf("store not seeded: found=%v err=%v", found, err)
	}
}

func TestOpenSnapshotStoreSelectsDriver(t *testing.T) {
	ctx := context.Background()

	t.Setenv("BROODCORE_STORAGE_DRIVER", "memory")
	store, err := OpenSnapshotStore(ctx)
	if err != nil {
		t.Fatalf("memory driver: %v", err)
	}
	if _, ok := store.(*memory.Store); !ok {
		t.Fatalf("driver memory yielded %T", store)
	}

	t.Setenv("BROODCORE_STORAGE_DRIVER", "sqlite")
	t.Setenv("BROODCORE_SQLITE_PATH", filepath.Join(t.TempDir(), "state.db"))
	store, err = OpenSnapshotStore(ctx)
	if err != nil {
		t.Fatalf("sqlite driver: %v", err)
	}
	if _, ok := store.(*sqlite.Store); !ok {
		t.Fatalf("driver sqlite yielded %T", store)
	}
	_ = store.Close()

	t.Setenv("BROODCORE_STORAGE_DRIVER", "bogus")
	if _, err := OpenSnapshotStore(ctx); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
