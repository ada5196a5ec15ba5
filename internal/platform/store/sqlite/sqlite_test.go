package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"seekdomains/internal/platform/testkit"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cfg  Config
		want []string
		not  []string
	}{
		{Config{}, []string{"file::memory:?", "_busy_timeout=5000"}, []string{"_journal_mode"}},
		{Config{Path: "available_domains.db", BusyTimeoutMs: 250}, []string{"file:available_domains.db?", "_busy_timeout=250", "_journal_mode=WAL"}, nil},
	}
	for _, c := range cases {
		got := DSN(c.cfg)
		for _, w := range c.want {
			if !strings.Contains(got, w) {
				t.Fatalf("DSN(%+v) = %q missing %q", c.cfg, got, w)
			}
		}
		for _, n := range c.not {
			if strings.Contains(got, n) {
				t.Fatalf("DSN(%+v) = %q should not contain %q", c.cfg, got, n)
			}
		}
	}
}

func TestOpen_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.db")
	s, err := Open(context.Background(), Config{Path: path, SlowMs: 50}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if s.SlowMs != 50 || s.DB.Stats().MaxOpenConnections != 1 {
		t.Fatalf("unexpected handle: slow=%d max=%d", s.SlowMs, s.DB.Stats().MaxOpenConnections)
	}
	if _, err := s.DB.Exec(`CREATE TABLE t (n INTEGER)`); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestOpen_DriverError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &sqlOpen, func(string, string) (*sql.DB, error) { return nil, errors.New("boom") })

	if _, err := Open(context.Background(), Config{}, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestClose_NilSafe(t *testing.T) {
	var s *SQLite
	if err := s.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
