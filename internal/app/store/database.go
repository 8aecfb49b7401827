// Package store contains the persistence backends for URL mappings.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aseptimu/shortlink/internal/app/service"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database stores mappings in the Postgres table urls. It holds no state
// besides the shared pool.
type Database struct {
	dbpool *pgxpool.Pool
}

// Connect opens a pool for dsn and checks it is reachable.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return pool, nil
}

func NewDB(pool *pgxpool.Pool) *Database {
	return &Database{dbpool: pool}
}

func (db *Database) Ping(ctx context.Context) error {
	return db.dbpool.Ping(ctx)
}

const (
	CountByIDQuery = "SELECT COUNT(id) FROM urls WHERE id = $1"

	UpsertURLQuery = `INSERT INTO urls (id, url)
         VALUES ($1, $2)
         ON CONFLICT (url) DO UPDATE SET url = EXCLUDED.url
         RETURNING id`

	GetURLQuery = "SELECT url FROM urls WHERE id = $1"
)

func (db *Database) CountByID(ctx context.Context, id string) (int64, error) {
	var count int64
	if err := db.dbpool.QueryRow(ctx, CountByIDQuery, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Upsert runs as one statement so two callers racing on the same new url end
// up with the same row and the same id.
func (db *Database) Upsert(ctx context.Context, id, url string) (string, error) {
	var stored string
	err := db.dbpool.QueryRow(ctx, UpsertURLQuery, id, url).Scan(&stored)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == primaryKeyName {
			return "", service.ErrIDTaken
		}
		return "", err
	}
	return stored, nil
}

func (db *Database) Get(ctx context.Context, id string) (string, error) {
	var url string
	err := db.dbpool.QueryRow(ctx, GetURLQuery, id).Scan(&url)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", service.ErrURLNotFound
	}
	if err != nil {
		return "", err
	}
	return url, nil
}
