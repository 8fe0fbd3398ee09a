// Package httpkit is the routing surface modules build on
// it keeps modules off internal/platform/net/http and wires auth and the common middleware stack
package httpkit

import (
	"net/http"

	phttp "knownkey/internal/platform/net/http"
)

type (
	// Router is the chi backed router modules mount on
	Router = phttp.Router

	// Response lets a handler choose its status or skip the envelope
	Response = phttp.Response
)

// Bare answers 200 with data written as is, outside the envelope
func Bare(data any) Response { return phttp.Bare(data) }

// NoContent answers 204 with no body
func NoContent() Response { return phttp.NoContent() }

// Get routes GET path to h; a plain return value is enveloped, an error mapped to its status
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.JSONHandlerNoBody(h))
}

// Delete is Get for DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, phttp.JSONHandlerNoBody(h))
}

// PutJSON routes PUT path to h with the body decoded and validated into T
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, phttp.JSONHandler(h))
}
