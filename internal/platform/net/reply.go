package net

import (
	"net/http"

	perr "knownkey/internal/platform/errors"
)

// Wire is the body of every keystore, meta and error response
// translator answers are the one exception and are written bare
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Reply wraps data for status
func Reply(status int, data any, reqID string) Wire {
	return Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// Error maps err to its status and an envelope carrying code, message and field
// a nil err is a plain 200
func Error(err error, reqID string) (int, Wire) {
	status, pw := perr.HTTP(err)
	w := Reply(status, nil, reqID)
	w.Code, w.Error, w.Field = pw.Code, pw.Message, pw.Field
	return status, w
}
