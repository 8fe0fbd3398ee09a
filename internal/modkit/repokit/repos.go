// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// TxAttempts bounds how often WithTx runs fn
const TxAttempts = 3

// WithTx runs fn inside a transaction on tx
// serialization failures and deadlocks rerun fn in a fresh transaction, up to TxAttempts in total
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	var err error
	for range TxAttempts {
		err = tx.Tx(ctx, fn)
		if !perr.IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

// Read runs fn in a transaction bound to b and returns its value
func Read[R, T any](ctx context.Context, tx TxRunner, b Binder[R], fn func(R) (T, error)) (T, error) {
	var out T
	err := WithTx(ctx, tx, func(q Queryer) error {
		var e error
		out, e = fn(MustBind(b, q))
		return e
	})
	return out, err
}
