// Package pg opens the pgxpool behind the keystore and traces its statements
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is what the keystore needs from a pool
type Config struct {
	URL      string
	MaxConns int32 // 0 keeps the pgx default
	SlowMs   int
	// AppName shows up as application_name in pg_stat_activity
	AppName string
}

// PG is an opened pool and its tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool without connecting; the first Ping dials
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		if pc.ConnConfig.RuntimeParams == nil {
			pc.ConnConfig.RuntimeParams = map[string]string{}
		}
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}

	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close is safe on a nil PG or pool
func (p *PG) Close() {
	if p == nil || p.Pool == nil {
		return
	}
	p.Pool.Close()
}
