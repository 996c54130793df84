package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ivanpetrovic/brio/internal/client/wellness"
	"github.com/ivanpetrovic/brio/internal/config"
	"github.com/ivanpetrovic/brio/internal/db"
	"github.com/ivanpetrovic/brio/internal/paths"
	"github.com/ivanpetrovic/brio/internal/session"
	"github.com/ivanpetrovic/brio/internal/xslog"
)

// app wires what every subcommand needs: config, the local session
// store, and an API client bound to the stored session.
type app struct {
	cfg     config.Config
	sqlDB   *sql.DB
	session *session.Session
	client  *wellness.Client
	logger  *slog.Logger
}

func newApp(ctx context.Context, logW io.Writer) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}

	dbPath, err := paths.DB()
	if err != nil {
		return nil, err
	}

	sqlDB, queries, err := db.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	sess, err := session.Load(ctx, queries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger := xslog.NewLoggerFromEnv(logW)

	client := wellness.New(sess,
		wellness.WithBaseURL(cfg.BaseURL),
		wellness.WithTimeout(cfg.HTTPTimeout),
		wellness.WithLogger(logger),
	)

	return &app{
		cfg:     cfg,
		sqlDB:   sqlDB,
		session: sess,
		client:  client,
		logger:  logger,
	}, nil
}

func (a *app) Close() error {
	return a.sqlDB.Close()
}

// logFile opens the app log under the config directory. The TUI owns
// the terminal, so its logs cannot go to stderr.
func logFile() io.Writer {
	dir, err := paths.Dir()
	if err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(filepath.Join(dir, "brio.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard
	}
	return f
}
