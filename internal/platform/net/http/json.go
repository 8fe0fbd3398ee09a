package http

import (
	"net/http"

	"knownkey/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a T body, then hands it to fn
// fn may return a Response to control status; anything else is a 200 envelope
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Response{Body: err}
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without parsing a request body and wraps the result
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return result(fn(r))
	})
}

// result lets fn pick its own Response; any other value is enveloped as a 200
func result(out any, err error) Response {
	if err != nil {
		return Response{Body: err}
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return Response{Body: out}
}
