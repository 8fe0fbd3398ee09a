package modkit

import (
	"net/http"

	"knownkey/internal/modkit/httpkit"
)

// Built is what a module needs from its options at mount time
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	// Ports is whatever WithPorts injected, nil when nothing was
	Ports any
}

// Option sets one field of Built
type Option func(*Built)

// WithName names the module for logs, the registry and swagger tags
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module under prefix; "" and "/" add no path segment
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module scoped middleware, run in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module a dependency it would otherwise build itself,
// such as a stub lookup client in tests
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Mount registers routes under b.Prefix behind b.Mw
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	mount := func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		routes(rr)
	}
	if b.Prefix == "" || b.Prefix == "/" {
		r.Group(mount)
		return
	}
	r.Route(b.Prefix, mount)
}
