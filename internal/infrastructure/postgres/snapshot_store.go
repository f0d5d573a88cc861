package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SnapshotStore)(nil)

const createSnapshotsTable = `
	CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// SnapshotStore implementación del puerto SnapshotStore sobre PostgreSQL (una fila por clave).
type SnapshotStore struct {
	pool *pgxpool.Pool
}

// NewSnapshotStore construye el adaptador y asegura que exista la tabla.
func NewSnapshotStore(ctx context.Context, pool *pgxpool.Pool) (*SnapshotStore, error) {
	if _, err := pool.Exec(ctx, createSnapshotsTable); err != nil {
		return nil, fmt.Errorf("crear tabla snapshots: %w", err)
	}
	return &SnapshotStore{pool: pool}, nil
}

// Get obtiene un snapshot por clave.
func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM snapshots WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get snapshot %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el snapshot (último en escribir gana).
func (s *SnapshotStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO snapshots (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set snapshot %s: %w", key, err)
	}
	return nil
}

// Remove elimina el snapshot.
func (s *SnapshotStore) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM snapshots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", key, err)
	}
	return nil
}

// Close cierra el pool.
func (s *SnapshotStore) Close() error {
	s.pool.Close()
	return nil
}
