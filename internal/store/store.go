// Package store persists benchmark runs to PostgreSQL. Maps are keyed
// by content digest rather than file name; runs reference their map and
// record the outcome of a single scenario execution.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a pgx connection pool for benchmark result operations.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a Store handle.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the database connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// MapRow identifies a benchmark map by content digest.
type MapRow struct {
	Hash   string
	Name   string
	Width  int
	Height int
}

// Run records the outcome of one scenario execution.
type Run struct {
	MapHash    string
	Scenario   int
	Start      int
	Goal       int
	Solved     bool
	PathLen    int
	Cost       float64
	Duration   time.Duration
	BaselineOK bool
}

// UpsertMap inserts the map row if its digest is not yet known.
func (s *Store) UpsertMap(ctx context.Context, m MapRow) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO maps (hash, name, width, height)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (hash) DO NOTHING`,
		m.Hash, m.Name, m.Width, m.Height,
	)
	if err != nil {
		return fmt.Errorf("upserting map %q: %w", m.Name, err)
	}
	return nil
}

// InsertRun appends one scenario result.
func (s *Store) InsertRun(ctx context.Context, r Run) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO runs
		   (map_hash, scenario, start_node, goal_node, solved,
		    path_len, cost, duration_us, baseline_ok, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.MapHash, r.Scenario, r.Start, r.Goal, r.Solved,
		r.PathLen, r.Cost, r.Duration.Microseconds(), r.BaselineOK, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("inserting run for map %s scenario %d: %w", r.MapHash, r.Scenario, err)
	}
	return nil
}

// MeanDuration returns the mean solve time over all stored runs of the
// given map, or zero when none exist.
func (s *Store) MeanDuration(ctx context.Context, mapHash string) (time.Duration, error) {
	var mean *float64
	err := s.pool.QueryRow(ctx,
		`SELECT AVG(duration_us) FROM runs WHERE map_hash = $1`,
		mapHash,
	).Scan(&mean)
	if err != nil {
		return 0, fmt.Errorf("querying mean duration for %s: %w", mapHash, err)
	}
	if mean == nil {
		return 0, nil
	}
	return time.Duration(*mean * float64(time.Microsecond)), nil
}
