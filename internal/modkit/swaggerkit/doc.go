package swaggerkit

import (
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"sync"

	"knownkey/internal/core/version"
)

// SpecMutator adds a module's operations to the document
type SpecMutator func(map[string]any)

var registry struct {
	sync.RWMutex
	byName map[string]SpecMutator
}

// Register sets the mutator for name; nil is ignored
func Register(name string, m SpecMutator) {
	if m == nil {
		return
	}
	registry.Lock()
	defer registry.Unlock()
	if registry.byName == nil {
		registry.byName = map[string]SpecMutator{}
	}
	registry.byName[name] = m
}

// Reset forgets every mutator
func Reset() {
	registry.Lock()
	registry.byName = nil
	registry.Unlock()
}

// Build renders the document; mutators run in name order
func Build() map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": "knownkey", "version": version.Info().Version},
		"paths":   map[string]any{},
	}

	registry.RLock()
	for _, name := range slices.Sorted(maps.Keys(registry.byName)) {
		registry.byName[name](spec)
	}
	registry.RUnlock()

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema
	}
	withDefaultError(spec)
	return spec
}

// child returns m[key] as a map, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// AddPath sets method on path
func AddPath(spec map[string]any, path, method string, op map[string]any) {
	child(child(spec, "paths"), path)[method] = op
}

// JSONResponse is a response whose body follows schema
func JSONResponse(desc string, schema map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content":     map[string]any{"application/json": map[string]any{"schema": schema}},
	}
}

// HeaderParam is a string header parameter
func HeaderParam(name, desc string, required bool) map[string]any {
	return map[string]any{
		"in":          "header",
		"name":        name,
		"description": desc,
		"required":    required,
		"schema":      map[string]any{"type": "string"},
	}
}

// errorSchema mirrors pnet.Wire as written by phttp.RespondError
var errorSchema = map[string]any{
	"type":        "object",
	"description": "error envelope",
	"required":    []any{"status_code", "status"},
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
}

// withDefaultError gives every operation a 500 unless it has one or sets x-no-error-envelope
// the translator sets the flag since it never answers with the envelope
func withDefaultError(spec map[string]any) {
	internal := JSONResponse("Internal Server Error", map[string]any{"$ref": "#/components/schemas/ErrorResponse"})
	for _, node := range child(spec, "paths") {
		ops, _ := node.(map[string]any)
		for _, v := range ops {
			op, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if skip, _ := op["x-no-error-envelope"].(bool); skip {
				continue
			}
			responses := child(op, "responses")
			if _, ok := responses["500"]; !ok {
				responses["500"] = internal
			}
		}
	}
}

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(Build())
}
