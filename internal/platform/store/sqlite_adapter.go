package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"seekdomains/internal/platform/store/trace"
)

// dbtx is the database/sql surface shared by *sql.DB and *sql.Tx
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLAdapter implements RowQuerier + TxRunner over database/sql
// it emits query trace events the same way the pgx adapter does
type SQLAdapter struct {
	db *sql.DB
	q  sqlQuerier
}

// NewSQLAdapter wraps db; tracer may be nil
func NewSQLAdapter(db *sql.DB, tracer trace.QueryTracer, slowMs int) *SQLAdapter {
	return &SQLAdapter{db: db, q: sqlQuerier{x: db, tracer: tracer, slowMs: slowMs}}
}

// Ping verifies the handle answers
func (a *SQLAdapter) Ping(ctx context.Context) error {
	if a == nil || a.db == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.db.PingContext(ctx)
}

// Close closes the underlying handle
func (a *SQLAdapter) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *SQLAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return a.q.Exec(ctx, sql, args...)
}

func (a *SQLAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return a.q.Query(ctx, sql, args...)
}

func (a *SQLAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return a.q.QueryRow(ctx, sql, args...)
}

// Tx runs fn inside a transaction; any error from fn rolls back
func (a *SQLAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(sqlQuerier{x: tx, tracer: a.q.tracer, slowMs: a.q.slowMs}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type sqlQuerier struct {
	x      dbtx
	tracer trace.QueryTracer
	slowMs int
}

func (s sqlQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := s.x.ExecContext(ctx, sql, args...)
	s.emit(ctx, sql, args, start, err)
	if err != nil {
		return sqlTag{}, err
	}
	n, _ := res.RowsAffected()
	return sqlTag{n: n}, nil
}

func (s sqlQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := s.x.QueryContext(ctx, sql, args...)
	s.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return &sqlRows{r: rs}, nil
}

func (s sqlQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := s.x.QueryRowContext(ctx, sql, args...)
	return sqlRow{
		r: r,
		after: func(scanErr error) {
			s.emit(ctx, sql, args, start, scanErr)
		},
	}
}

func (s sqlQuerier) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if s.tracer == nil {
		return
	}
	elapsedUS := time.Since(start).Microseconds()
	s.tracer.OnQuery(ctx, trace.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Err:       err,
		Slow:      trace.IsSlow(elapsedUS, s.slowMs),
	})
}

type sqlRow struct {
	r     *sql.Row
	after func(error)
}

func (x sqlRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type sqlRows struct {
	r   *sql.Rows
	err error
}

func (x *sqlRows) Next() bool            { return x.r.Next() }
func (x *sqlRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x *sqlRows) Close()                { x.err = x.r.Close() }
func (x *sqlRows) Err() error {
	if err := x.r.Err(); err != nil {
		return err
	}
	return x.err
}
func (x *sqlRows) Columns() []string {
	cols, _ := x.r.Columns()
	return cols
}

// sqlTag mimics a pg command tag from RowsAffected
type sqlTag struct{ n int64 }

func (t sqlTag) String() string      { return fmt.Sprintf("OK %d", t.n) }
func (t sqlTag) RowsAffected() int64 { return t.n }
