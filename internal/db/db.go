// Package db owns the local sqlite store under the user's config
// directory. It holds exactly one row of state: the current API
// session.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	token TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func Open(ctx context.Context, path string) (*sql.DB, *Queries, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("applying schema: %w", err)
	}
	return sqlDB, &Queries{db: sqlDB}, nil
}

type Queries struct {
	db *sql.DB
}
