package storage

import (
	"context"

	"nexus-store/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
    key        TEXT PRIMARY KEY,
    blob       BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresSnapshots keeps the same per-key blobs in a key-value table. It is
// the "real backend behind the same read/replace contract" swap: none of the
// stores can tell it apart from the file driver.
type PostgresSnapshots struct {
	pool *pgxpool.Pool
}

func NewPostgresSnapshots(ctx context.Context, dsn string) (*PostgresSnapshots, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create pgx pool")
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping snapshot database")
	}

	if _, err = pool.Exec(ctx, snapshotSchema); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ensure snapshot table")
	}

	cleanup := func() { pool.Close() }
	return &PostgresSnapshots{pool: pool}, cleanup, nil
}

func (s *PostgresSnapshots) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob []byte
	err := s.pool.QueryRow(ctx,
		`SELECT blob FROM snapshots WHERE key = $1`, key,
	).Scan(&blob)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to load snapshot")
	}
	return blob, true, nil
}

func (s *PostgresSnapshots) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO snapshots (key, blob, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()`,
		key, blob,
	)
	if err != nil {
		return errs.Wrap(err, "failed to save snapshot")
	}
	return nil
}

func (s *PostgresSnapshots) Clear(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM snapshots WHERE key = $1`, key)
	if err != nil {
		return errs.Wrap(err, "failed to clear snapshot")
	}
	return nil
}
