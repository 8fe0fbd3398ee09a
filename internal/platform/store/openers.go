package store

import (
	"context"
	"fmt"
	"time"

	"knownkey/internal/platform/logger"
	"knownkey/internal/platform/store/pg"
)

const (
	pingBackoffStart = 150 * time.Millisecond
	pingBackoffMax   = 2 * time.Second
)

// sleep waits d or until ctx ends
var sleep = func(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// openPG builds the pool then pings it with doubling backoff until it answers;
// postgres usually starts alongside the api, so early refusals are expected
func openPG(ctx context.Context, cfg Config, log logger.Logger) (*pgAdapter, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var pingErr error
	wait := pingBackoffStart
	for n := 1; n <= attempts; n++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		pingErr = p.Pool.Ping(pctx)
		cancel()
		if pingErr == nil {
			log.Info().Int("attempt", n).Msg("postgres ready")
			return newPGAdapter(p), nil
		}
		log.Warn().Err(pingErr).Int("attempt", n).Dur("backoff", wait).Msg("postgres not ready")
		if err := sleep(ctx, wait); err != nil {
			p.Close()
			return nil, err
		}
		wait = min(2*wait, pingBackoffMax)
	}
	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, pingErr)
}
