package store

import (
	"context"
	"errors"
	"time"

	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the pgx surface shared by the pool and a transaction
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// traced forwards to q and reports each statement to tracer
type traced struct {
	q      querier
	tracer pg.QueryTracer
	slowMs int
}

func (t traced) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.q.Exec(ctx, sql, args...)
	t.emit(ctx, sql, args, start, err)
	return ct, err
}

func (t traced) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.q.Query(ctx, sql, args...)
	t.emit(ctx, sql, args, start, err)
	if err != nil {
		// a nil pgx.Rows must not become a non-nil Rows
		return nil, err
	}
	return rs, nil
}

func (t traced) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return row{
		r: t.q.QueryRow(ctx, sql, args...),
		after: func(scanErr error) {
			// no rows is an answer, not a failure
			if errors.Is(scanErr, pgx.ErrNoRows) {
				scanErr = nil
			}
			t.emit(ctx, sql, args, start, scanErr)
		},
	}
}

func (t traced) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if t.tracer == nil {
		return
	}
	elapsedUS := time.Since(start).Microseconds()
	t.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Err:       err,
		Slow:      t.slowMs >= 0 && elapsedUS >= int64(t.slowMs)*1000,
	})
}

// row emits after Scan so the trace carries the scan error
type row struct {
	r     pgx.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

// pgAdapter is the TxRunner the keystore gets when postgres is on
type pgAdapter struct {
	traced
	p *pg.PG
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{traced: traced{q: p.Pool, tracer: p.Tracer, slowMs: p.SlowMs}, p: p}
}

// Ping checks the pool without going through the tracer
func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.p == nil || a.p.Pool == nil {
		return perr.New(perr.ErrorCodeUnavailable, "pg: not opened")
	}
	return a.p.Pool.Ping(ctx)
}

// Close releases the pool
func (a *pgAdapter) Close() error { a.p.Close(); return nil }

// Tx runs fn in a transaction; pgx commits on nil and rolls back otherwise
func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return pgx.BeginFunc(ctx, a.p.Pool, func(tx pgx.Tx) error {
		return fn(traced{q: tx, tracer: a.tracer, slowMs: a.slowMs})
	})
}
