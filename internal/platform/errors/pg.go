package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgStates maps the SQLSTATEs the keystore can hit onto project codes
// anything else from postgres is ErrorCodeDB
var pgStates = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,    // unique_violation
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
}

// retryStates fail a transaction that would succeed if run again
var retryStates = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

// retryText covers drivers and proxies that flatten the PgError into a string
var retryText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"canceling statement due to lock timeout",
	"terminating connection due to administrator command",
}

// DBErrorCode maps a Postgres error to an ErrorCode
// ok is false when err carries no PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	if code, ok := pgStates[pgErr.Code]; ok {
		return code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err under msg with its mapped code; pgx.ErrNoRows is NotFound
func FromPostgres(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case stderrs.Is(err, pgx.ErrNoRows):
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	code, _ := DBErrorCode(err)
	if code == ErrorCodeUnknown {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// IsRetryable reports whether rerunning the transaction may succeed
// local cancellations never are
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return retryStates[pgErr.Code]
	}
	s := strings.ToLower(Root(err).Error())
	for _, t := range retryText {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
