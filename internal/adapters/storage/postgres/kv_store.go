package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vetcalc/internal/ports/kvstore"
)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// KVStore guarda cada clave en una fila de kv_entries (JSONB).
type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Migrate crea la tabla si no existe.
func (s *KVStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, kvSchema)
	return err
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	return getValue(ctx, s.db, key)
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	return upsert(ctx, s.db, key, value)
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	return err
}

// Update toma un advisory lock de transacción por clave, así dos Update
// concurrentes (aunque la fila todavía no exista) se serializan.
func (s *KVStore) Update(ctx context.Context, key string, fn kvstore.UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return err
	}

	cur, err := getValue(ctx, tx, key)
	found := true
	if errors.Is(err, kvstore.ErrNotFound) {
		cur, found = nil, false
	} else if err != nil {
		return err
	}

	next, err := fn(cur, found)
	if err != nil {
		return err
	}

	if next == nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
			return err
		}
	} else if err := upsert(ctx, tx, key, next); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *KVStore) Close() error {
	return s.db.Close()
}

// querier cubre *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getValue(ctx context.Context, q querier, key string) ([]byte, error) {
	var v []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kvstore.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func upsert(ctx context.Context, q querier, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, string(value))
	return err
}
