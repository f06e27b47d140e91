// Package sqlite persists dataset snapshots to a single SQLite table as JSON
// blobs, one bucket per collection.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"broodcore/pkg/domain"
)

// Store is a snapshotting SQLite-backed dataset store.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewStore opens (or creates) the SQLite file at path and ensures the state
// table exists. An empty path defaults to ./broodcore.db.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "broodcore.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

var buckets = []string{"breeds", "genes", "colours", "eyes", "same_nest", "mixed_nest"}

func bucketTargets(ds *domain.Dataset) map[string]any {
	return map[string]any{
		"breeds":     &ds.Breeds,
		"genes":      &ds.Genes,
		"colours":    &ds.Colours,
		"eyes":       &ds.Eyes,
		"same_nest":  &ds.SameBreedNest,
		"mixed_nest": &ds.MixedNest,
	}
}

// Save writes every bucket of the dataset within one transaction.
func (s *Store) Save(ctx context.Context, ds domain.Dataset) (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	targets := bucketTargets(&ds)
	for _, bucket := range buckets {
		payload, err := json.Marshal(targets[bucket])
		if err != nil {
			return fmt.Errorf("encode %s: %w", bucket, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO state(bucket, payload) VALUES(?, ?)
			ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, bucket, payload); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	return tx.Commit()
}

// Load reads the snapshot back. The second return is false when no snapshot
// has been saved yet.
func (s *Store) Load(ctx context.Context) (domain.Dataset, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return domain.Dataset{}, false, fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ds domain.Dataset
	targets := bucketTargets(&ds)
	found := false
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return domain.Dataset{}, false, fmt.Errorf("scan: %w", err)
		}
		target, ok := targets[bucket]
		if !ok {
			continue
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return domain.Dataset{}, false, fmt.Errorf("decode %s: %w", bucket, err)
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, false, err
	}
	return ds, found, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
