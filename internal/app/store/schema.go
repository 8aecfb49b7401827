package store

import (
	"context"
	"fmt"
)

// primaryKeyName is the constraint Postgres derives for the id column.
const primaryKeyName = "urls_pkey"

const createTableQuery = `CREATE TABLE IF NOT EXISTS urls (
    id  VARCHAR(6) PRIMARY KEY,
    url TEXT NOT NULL UNIQUE
)`

// EnsureSchema creates the urls table if it does not exist yet.
func (db *Database) EnsureSchema(ctx context.Context) error {
	if _, err := db.dbpool.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create urls table: %w", err)
	}
	return nil
}
