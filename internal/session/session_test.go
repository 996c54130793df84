package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ivanpetrovic/brio/internal/db"
	"github.com/ivanpetrovic/brio/internal/session"
)

func openStore(t *testing.T) *db.Queries {
	t.Helper()

	sqlDB, queries, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "brio.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return queries
}

func TestLoadEmptyStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := session.Load(ctx, openStore(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := s.SessionToken(); got != "" {
		t.Errorf("SessionToken() = %q, want empty", got)
	}
	if got := s.Email(); got != "" {
		t.Errorf("Email() = %q, want empty", got)
	}
}

func TestSetPersistsAcrossLoads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	s, err := session.Load(ctx, store)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := s.Set(ctx, "tok-abc", "ada@example.com"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := s.SessionToken(); got != "tok-abc" {
		t.Errorf("SessionToken() = %q, want tok-abc", got)
	}

	reloaded, err := session.Load(ctx, store)
	if err != nil {
		t.Fatalf("Load() after Set error = %v", err)
	}
	if got := reloaded.SessionToken(); got != "tok-abc" {
		t.Errorf("reloaded SessionToken() = %q, want tok-abc", got)
	}
	if got := reloaded.Email(); got != "ada@example.com" {
		t.Errorf("reloaded Email() = %q, want ada@example.com", got)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	s, err := session.Load(ctx, store)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := s.Set(ctx, "tok-abc", "ada@example.com"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if got := s.SessionToken(); got != "" {
		t.Errorf("SessionToken() after Clear = %q, want empty", got)
	}

	reloaded, err := session.Load(ctx, store)
	if err != nil {
		t.Fatalf("Load() after Clear error = %v", err)
	}
	if got := reloaded.SessionToken(); got != "" {
		t.Errorf("reloaded SessionToken() = %q, want empty", got)
	}
}
