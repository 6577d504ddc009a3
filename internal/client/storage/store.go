// Package storage implements the durable key-value store backing the
// TalentTrack client. Records are stored as JSON text under string keys in
// a single-table sqlite database, guarded by a lock file so that only one
// process instance owns the store at a time.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/pressly/goose/v3"

	"github.com/talenttrack/talenttrack/internal/client/migrations"
	"github.com/talenttrack/talenttrack/internal/common"
	"github.com/talenttrack/talenttrack/internal/dbx"

	_ "modernc.org/sqlite"
)

// KV is the string-keyed view of the store used by repositories. Get of a
// missing key returns (nil, nil); callers treat that as the zero value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store owns the sqlite database and the single-instance lock file.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
}

// Open opens (creating if necessary) the store at dbPath, acquires the
// lock file at lockPath, and applies pending schema migrations. A second
// instance fails fast with common.ErrStoreLocked.
func Open(ctx context.Context, dbPath, lockPath string) (*Store, error) {
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring store lock: %w", err)
	}
	if !locked {
		return nil, common.ErrStoreLocked
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("opening store database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	return &Store{db: db, lock: lock}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// KV returns the store's key-value view bound to the database handle.
func (s *Store) KV() KV {
	return &kv{db: s.db}
}

// WithTx runs fn against a transactional KV view. All writes inside fn are
// applied atomically; this is how multi-key updates (session pointer plus
// directory entry) stay consistent.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &kv{db: tx})
	})
}

// Close closes the database and releases the lock file.
func (s *Store) Close() error {
	err := s.db.Close()
	if uerr := s.lock.Unlock(); uerr != nil && err == nil {
		err = uerr
	}
	return err
}

// kv implements KV over a DBTX, so the same code serves both the plain
// handle and transactions.
type kv struct {
	db dbx.DBTX
}

func (r *kv) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *kv) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *kv) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}
