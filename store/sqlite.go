package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sicko7947/claimflow"
)

// SQLiteStore implements claimflow.ClaimStore on a SQLite key/value table.
//
// It expects an *sql.DB that uses a SQLite driver (for example,
// "modernc.org/sqlite"). The caller is responsible for importing
// the driver, e.g.:
//
//	import _ "modernc.org/sqlite"
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements ClaimStore.
var _ claimflow.ClaimStore = (*SQLiteStore)(nil)

// NewSQLiteStore initializes the required schema in the given
// database and returns a new SQLiteStore.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to init sqlite schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	)
	return err
}

func (s *SQLiteStore) LoadClaim(ctx context.Context) (*claimflow.Claim, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = ?`,
		ClaimKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("sqlite")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load claim: %w", err)
	}

	return DecodeClaim(value)
}

func (s *SQLiteStore) SaveClaim(ctx context.Context, claim *claimflow.Claim) error {
	value, err := EncodeClaim(claim)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		ClaimKey,
		value,
	)
	if err != nil {
		return fmt.Errorf("failed to save claim: %w", err)
	}
	return nil
}
