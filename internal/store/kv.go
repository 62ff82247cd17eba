// Package store is the engine's persistence surface: a byte-oriented
// key-value contract plus a typed wrapper that round-trips the engine's
// records as JSON. The engine never sees SQL; it sees keys and bytes.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Statusnone420/weeklyquest/internal/db"
)

// KV is the durable key-value contract the engine persists through.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set durably stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SQLiteKV implements KV over the engine_state table.
type SQLiteKV struct {
	db db.DBTX
}

// NewSQLiteKV creates a SQLiteKV bound to the given connection or
// transaction.
func NewSQLiteKV(conn db.DBTX) *SQLiteKV {
	return &SQLiteKV{db: conn}
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM engine_state WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO engine_state (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM engine_state WHERE key = ?`, key,
	)
	if err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// Compile-time verification.
var _ KV = (*SQLiteKV)(nil)
