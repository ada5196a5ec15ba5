// Package sqlite provides a single-file SQLite client over database/sql (mattn/go-sqlite3)
// with optional query tracing
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"seekdomains/internal/platform/store/trace"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)

// Config configures the sqlite handle
type Config struct {
	// Path is a filesystem path or ":memory:"
	Path          string
	BusyTimeoutMs int
	SlowMs        int
}

// SQLite wraps a *sql.DB with tracing knobs
type SQLite struct {
	DB     *sql.DB
	Tracer trace.QueryTracer
	SlowMs int
}

var sqlOpen = sql.Open

// DSN builds the driver DSN for cfg; the file is created on first use
func DSN(cfg Config) string {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = ":memory:"
	}
	q := url.Values{}
	busy := cfg.BusyTimeoutMs
	if busy <= 0 {
		busy = 5000
	}
	q.Set("_busy_timeout", fmt.Sprint(busy))
	if path != ":memory:" {
		q.Set("_journal_mode", "WAL")
	}
	return "file:" + path + "?" + q.Encode()
}

// Open opens the database and verifies it with a ping
// sqlite serializes writers anyway; one connection keeps :memory: databases coherent
func Open(ctx context.Context, cfg Config, tracer trace.QueryTracer) (*SQLite, error) {
	db, err := sqlOpen("sqlite3", DSN(cfg))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping %s: %w", cfg.Path, err)
	}
	return &SQLite{DB: db, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close closes the handle
func (s *SQLite) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
