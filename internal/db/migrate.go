package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func MigrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS articles (
    id         BIGSERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    writer     TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}
