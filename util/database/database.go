package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func New(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id      BIGSERIAL PRIMARY KEY,
	title   TEXT NOT NULL,
	author  TEXT NOT NULL,
	summary TEXT NOT NULL,
	genre   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reviews (
	id       BIGSERIAL PRIMARY KEY,
	reviewer TEXT NOT NULL,
	rating   INT NOT NULL,
	body     TEXT NOT NULL,
	book_id  BIGINT NOT NULL REFERENCES books(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS reviews_book_id_idx ON reviews(book_id);
`

// Migrate applies the schema. Deleting a book cascades to its reviews.
func Migrate(ctx context.Context, p *pgxpool.Pool) error {
	_, err := p.Exec(ctx, schema)
	return err
}
