// Package repo is the result store for search requests and available domains
// one query set, rendered per SQL dialect
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seekdomains/internal/modkit/repokit"
	perr "seekdomains/internal/platform/errors"
	"seekdomains/internal/platform/store"
)

// Repo is the persistence surface for the domains module
type Repo interface {
	EnsureSchema(ctx context.Context) error
	RecordRequest(ctx context.Context, id, content string, at time.Time) error
	RecordAvailable(ctx context.Context, domains []string, searchRequestID string, at time.Time) (int, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]Row, error)
	Count(ctx context.Context, f Filter) (int, error)
}

// Row is one available_domains row
type Row struct {
	Domain            string
	PriorityInRanking *int64
	CreatedAt         time.Time
}

// Filter is the conjunctive read filter; zero fields do not filter
// LengthOp must be one of "=", ">", "<" for Length to apply
type Filter struct {
	SearchRequestID string
	TLD             string
	Length          int
	LengthOp        string
}

type (
	// Binder binds the repo for one dialect to a Queryer or TxRunner
	Binder struct{ d dialect }
	// queries implements the Repo interface
	queries struct {
		q repokit.Queryer
		d dialect
	}
)

// NewPG returns a binder speaking postgres
func NewPG() repokit.Binder[Repo] { return Binder{d: pgDialect} }

// NewSQLite returns a binder speaking sqlite
func NewSQLite() repokit.Binder[Repo] { return Binder{d: sqliteDialect} }

// NewFor picks the binder for a store dialect; unknown falls back to postgres
func NewFor(d store.Dialect) repokit.Binder[Repo] {
	if d == store.DialectSQLite {
		return NewSQLite()
	}
	return NewPG()
}

// Bind wires a Queryer to the repo
func (b Binder) Bind(q repokit.Queryer) Repo { return &queries{q: q, d: b.d} }

// dialect holds the few fragments that differ between backends
type dialect struct {
	name      string
	ph        func(n int) string
	localLen  string
	schema    []string
	errorFrom func(err error, format string, a ...any) error
}

var pgDialect = dialect{
	name:     "postgres",
	ph:       func(n int) string { return fmt.Sprintf("$%d", n) },
	localLen: "char_length(split_part(domain, '.', 1))",
	schema: []string{
		`create table if not exists search_requests (
  id text primary key,
  request_content text,
  created_at timestamptz
)`,
		`create table if not exists available_domains (
  domain text unique,
  priority_in_ranking integer,
  created_at timestamptz,
  search_request_id text
)`,
		`create index if not exists available_domains_search_idx on available_domains (search_request_id)`,
	},
	errorFrom: perr.FromPostgresf,
}

var sqliteDialect = dialect{
	name:     "sqlite",
	ph:       func(n int) string { return fmt.Sprintf("?%d", n) },
	// a name without a dot counts whole, as split_part does on postgres
	localLen: "length(case when instr(domain, '.') > 0 then substr(domain, 1, instr(domain, '.') - 1) else domain end)",
	schema: []string{
		`create table if not exists search_requests (
  id text primary key,
  request_content text,
  created_at timestamp
)`,
		`create table if not exists available_domains (
  domain text unique,
  priority_in_ranking integer,
  created_at timestamp,
  search_request_id text
)`,
		`create index if not exists available_domains_search_idx on available_domains (search_request_id)`,
	},
	errorFrom: perr.FromSQLitef,
}

// EnsureSchema creates the tables when missing, all or nothing
func (r *queries) EnsureSchema(ctx context.Context) error {
	run := func(q repokit.Queryer) error {
		for _, ddl := range r.d.schema {
			if _, err := store.Exec(ctx, q, ddl); err != nil {
				return r.d.errorFrom(err, "%s schema", r.d.name)
			}
		}
		return nil
	}
	if tx, ok := r.q.(repokit.TxRunner); ok {
		return repokit.WithTx(ctx, tx, run)
	}
	return run(r.q)
}

func (r *queries) RecordRequest(ctx context.Context, id, content string, at time.Time) error {
	sql := fmt.Sprintf(`insert into search_requests (id, request_content, created_at) values (%s, %s, %s)`,
		r.d.ph(1), r.d.ph(2), r.d.ph(3))
	if _, err := store.Exec(ctx, r.q, sql, id, content, at.UTC()); err != nil {
		return r.d.errorFrom(err, "record search request")
	}
	return nil
}

// RecordAvailable inserts each domain on its own; a duplicate domain keeps its first row
// returns how many rows were inserted
func (r *queries) RecordAvailable(ctx context.Context, domains []string, searchRequestID string, at time.Time) (int, error) {
	sql := fmt.Sprintf(`insert into available_domains (domain, priority_in_ranking, created_at, search_request_id) values (%s, null, %s, %s)`,
		r.d.ph(1), r.d.ph(2), r.d.ph(3))
	inserted := 0
	for _, d := range domains {
		if _, err := store.Exec(ctx, r.q, sql, d, at.UTC(), searchRequestID); err != nil {
			if perr.IsDuplicateKey(err) {
				continue
			}
			return inserted, r.d.errorFrom(err, "record available domain %s", d)
		}
		inserted++
	}
	return inserted, nil
}

// where renders the filter; placeholders start at $1
func (r *queries) where(f Filter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, r.d.ph(len(args))))
	}
	if f.SearchRequestID != "" {
		add("search_request_id = %s", f.SearchRequestID)
	}
	if f.TLD != "" {
		add(`domain like '%%.' || %s escape '\'`, escapeLike(f.TLD))
	}
	if f.Length != 0 {
		switch f.LengthOp {
		case "=", ">", "<":
			add(r.d.localLen+" "+f.LengthOp+" %s", f.Length)
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " where " + strings.Join(conds, " and "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match itself literally inside a like pattern
func escapeLike(s string) string { return likeEscaper.Replace(s) }

func (r *queries) List(ctx context.Context, f Filter, limit, offset int) ([]Row, error) {
	where, args := r.where(f)
	n := len(args)
	sql := `select domain, priority_in_ranking, created_at from available_domains` + where +
		fmt.Sprintf(` order by created_at, domain limit %s offset %s`, r.d.ph(n+1), r.d.ph(n+2))
	args = append(args, limit, offset)

	out, err := store.Many(ctx, r.q, func(row store.Row) (Row, error) {
		var rr Row
		err := row.Scan(&rr.Domain, &rr.PriorityInRanking, &rr.CreatedAt)
		return rr, err
	}, sql, args...)
	if err != nil {
		return nil, r.d.errorFrom(err, "list available domains")
	}
	return out, nil
}

func (r *queries) Count(ctx context.Context, f Filter) (int, error) {
	where, args := r.where(f)
	n, err := store.Scalar[int64](ctx, r.q, `select count(*) from available_domains`+where, args...)
	if err != nil {
		return 0, r.d.errorFrom(err, "count available domains")
	}
	return int(n), nil
}
