// Package store opens the optional backends behind the keystore
// today that is postgres only; a Store with no backend is valid and the api runs without a keystore
package store

import (
	"context"
	"errors"

	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/logger"
)

type (
	// Row is a single result row
	Row interface {
		Scan(dest ...any) error
	}

	// Rows is a result set
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close()
	}

	// CommandTag reports what a write touched
	CommandTag interface {
		RowsAffected() int64
	}

	// RowQuerier is what keystore repos run sql against, pool or tx alike
	RowQuerier interface {
		Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
		Query(ctx context.Context, sql string, args ...any) (Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) Row
	}

	// TxRunner adds transactions to RowQuerier
	TxRunner interface {
		RowQuerier
		Tx(ctx context.Context, fn func(q RowQuerier) error) error
	}

	// Pinger reports readiness
	Pinger interface{ Ping(context.Context) error }
)

// Store holds the opened backends
type Store struct {
	Log logger.Logger

	// PG is nil unless postgres was configured
	PG TxRunner
}

// Option adjusts a Store before backends open
type Option func(*Store) error

// WithLogger replaces the "store" logger
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error { s.Log = log; return nil }
}

// Open brings up every backend cfg enables and waits for each to answer
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: *logger.Named("store")}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	if !cfg.PG.Enabled {
		s.Log.Debug().Msg("no postgres configured, keystore stays off")
		return s, nil
	}

	a, err := openPG(ctx, cfg, s.Log)
	if err != nil {
		return nil, err
	}
	s.PG = a
	return s, nil
}

// Guard fails with an unavailable error when an opened backend stops answering
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return perr.New(perr.ErrorCodeUnavailable, "nil store")
	}
	p, ok := s.PG.(Pinger)
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "pg")
	}
	return nil
}

// Close releases every opened backend; safe on nil
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
