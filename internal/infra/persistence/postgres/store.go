// Package postgres persists dataset snapshots to a Postgres state table,
// mirroring the sqlite store with JSONB payloads.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"broodcore/pkg/domain"
)

const (
	driverName = "pgx"
	defaultDSN = "postgres://localhost/broodcore?sslmode=disable"
)

// Store is a snapshotting Postgres-backed dataset store.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// NewStore opens a Postgres connection using the provided DSN (falling back
// to a local default) and ensures the state table exists.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("ensure state table: %w", err)
	}
	return &Store{db: db}, nil
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
		if _, err := tx.ExecContext(ctx, `INSERT INTO state(bucket, payload) VALUES($1, $2)
			ON CONFLICT (bucket) DO UPDATE SET payload = excluded.payload`, bucket, payload); err != nil {
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

// DB exposes the underlying handle for integration tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
