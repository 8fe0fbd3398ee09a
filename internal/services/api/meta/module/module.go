// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"knownkey/internal/core/version"
	modkit "knownkey/internal/modkit"
	"knownkey/internal/modkit/httpkit"
	kitmod "knownkey/internal/modkit/module"
	"knownkey/internal/modkit/swaggerkit"

	metahttp "knownkey/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	build modkit.Built

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	swaggerkit.Register("meta", func(spec map[string]any) {
		for _, p := range []string{"health", "ready", "version", "service"} {
			swaggerkit.AddPath(spec, b.Prefix+"/"+p, "get", map[string]any{
				"tags":      []any{"Meta"},
				"summary":   p,
				"responses": map[string]any{"200": map[string]any{"description": "ok"}},
			})
		}
	})

	return &Module{deps: deps, build: b, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	var pg any
	if m.deps.HasPG() {
		pg = m.deps.PG
	}
	m.build.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			PG:          pg,
			Modules:     kitmod.Names,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.build.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
