package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrNoSession = errors.New("no stored session")

type StoredSession struct {
	Token     string
	Email     string
	CreatedAt time.Time
}

func (q *Queries) GetSession(ctx context.Context) (*StoredSession, error) {
	const query = `SELECT token, email, created_at FROM session WHERE id = 1`

	var s StoredSession
	err := q.db.QueryRowContext(ctx, query).Scan(&s.Token, &s.Email, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	return &s, nil
}

func (q *Queries) SaveSession(ctx context.Context, token, email string) error {
	const query = `
INSERT INTO session (id, token, email, created_at) VALUES (1, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET token = excluded.token, email = excluded.email, created_at = excluded.created_at`

	if _, err := q.db.ExecContext(ctx, query, token, email, time.Now().UTC()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (q *Queries) DeleteSession(ctx context.Context) error {
	const query = `DELETE FROM session WHERE id = 1`

	if _, err := q.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
