package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresSlot keeps slot values in the client_slots table, one row per
// (scope, key).
type PostgresSlot struct {
	DB    *sql.DB
	Scope string
}

func NewPostgresSlot(db *sql.DB, scope string) *PostgresSlot {
	return &PostgresSlot{DB: db, Scope: scope}
}

func (s *PostgresSlot) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS client_slots (
			scope TEXT NOT NULL,
			key TEXT NOT NULL,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (scope, key)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRowContext(ctx,
		"SELECT value FROM client_slots WHERE scope = $1 AND key = $2",
		s.Scope, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *PostgresSlot) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO client_slots (scope, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (scope, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`,
		s.Scope, key, value)
	return err
}

func (s *PostgresSlot) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx,
		"DELETE FROM client_slots WHERE scope = $1 AND key = $2", s.Scope, key)
	return err
}
