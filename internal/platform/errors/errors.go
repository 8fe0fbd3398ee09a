// Package errors is the project error type: a machine code, a client safe message,
// an optional offending field and an optional wrapped cause
//
// import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an Error; the numeric values appear on the wire, so only append
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered by middleware
	ErrorCodeUnavailable                      // transient, a retry may succeed
	ErrorCodeUpstream                         // a dependency answered unexpectedly
	ErrorCodeUnauthorized                     // missing or wrong credentials
	ErrorCodeInvalidArgument                  // well formed input that cannot be used
	ErrorCodeValidation                       // input failed validation rules
	ErrorCodeJSON                             // body is not the expected JSON
	ErrorCodeNotFound                         // no such resource
	ErrorCodeDuplicateKey                     // unique constraint violation
	ErrorCodeDB                               // any other database failure
)

// codes holds the log name and HTTP status per code
var codes = [...]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeUpstream:        {"upstream", http.StatusBadGateway},
	ErrorCodeUnauthorized:    {"unauthorized", http.StatusUnauthorized},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeDuplicateKey:    {"duplicate_key", http.StatusConflict},
	ErrorCodeDB:              {"db", http.StatusInternalServerError},
}

func (c ErrorCode) known() ErrorCode {
	if int(c) >= len(codes) {
		return ErrorCodeUnknown
	}
	return c
}

// String names the code for logs
func (c ErrorCode) String() string { return codes[c.known()].name }

// Status is the HTTP status for c; out of range codes are 500
func (c ErrorCode) Status() int { return codes[c.known()].status }

// Error carries a code and a message safe to show clients
// the wrapped cause is only ever logged
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.orig != nil:
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input field, if any
func (e *Error) Field() string { return e.field }

// Wire is the client facing part of an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom is the client facing part of err; nil gives the zero Wire
// foreign errors keep their text under ErrorCodeUnknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// HTTP is the status and wire form of err; nil is a 200 with an empty Wire
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// HTTPStatus is the status err maps to
func HTTPStatus(err error) int { return CodeOf(err).Status() }

// As returns the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf is err's code, ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// Root returns the innermost cause
func Root(err error) error {
	for {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// WithField returns a copy of err naming field; foreign errors pass through unchanged
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a format
func Newf(code ErrorCode, format string, a ...any) error { return New(code, fmt.Sprintf(format, a...)) }

// Wrap returns an *Error with code and msg around orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{orig: orig, code: code, msg: msg}
}

// Wrapf is Wrap with a format
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return Wrap(orig, code, fmt.Sprintf(format, a...))
}

func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

func Upstreamf(format string, a ...any) error { return Newf(ErrorCodeUpstream, format, a...) }
