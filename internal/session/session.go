// Package session holds the explicit session object handed to the API
// client. There is no ambient "is authenticated" flag anywhere: the
// session either carries a token or it does not, and the only source of
// truth for validity is the server-side account check.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/ivanpetrovic/brio/internal/db"
)

type Session struct {
	store *db.Queries

	mu    sync.RWMutex
	token string
	email string
}

// Load reads any stored session from the local store. A missing row is
// not an error; it yields a session with no token.
func Load(ctx context.Context, store *db.Queries) (*Session, error) {
	s := &Session{store: store}

	stored, err := store.GetSession(ctx)
	if errors.Is(err, db.ErrNoSession) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	s.token = stored.Token
	s.email = stored.Email
	return s, nil
}

// SessionToken implements wellness.SessionSource.
func (s *Session) SessionToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *Session) Set(ctx context.Context, token, email string) error {
	if err := s.store.SaveSession(ctx, token, email); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.email = email
	s.mu.Unlock()
	return nil
}

func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.mu.Unlock()
	return nil
}
