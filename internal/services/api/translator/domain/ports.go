package domain

import (
	"context"
	"net/http"
)

// Resolver yields one parameter value from the inbound request; ok=false means undefined
type Resolver func(r *http.Request) (value string, ok bool)

// LookupPort performs the outbound call
type LookupPort interface {
	Get(ctx context.Context, url string, h Headers) ([]byte, error)
}

// ServicePort is the translator surface used by the transport
type ServicePort interface {
	Handle(r *http.Request) LookupResult
}
