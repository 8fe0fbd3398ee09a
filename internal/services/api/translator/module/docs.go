package module

import "knownkey/internal/modkit/swaggerkit"

func describe(prefix string) swaggerkit.SpecMutator {
	idSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{"type": "string", "nullable": true},
		},
	}
	return func(spec map[string]any) {
		for _, m := range []string{"get", "post", "put", "delete", "head", "options", "patch"} {
			swaggerkit.AddPath(spec, prefix, m, map[string]any{
				"tags":    []any{"Translator"},
				"summary": "Look up X-Hash-Value and answer {\"id\":...}, always 200",
				"parameters": []any{
					swaggerkit.HeaderParam("X-Hash-Value", "key to look up", false),
					swaggerkit.HeaderParam("Authorization", "credential forwarded unless AUTH_HEADER is set", false),
				},
				"responses": map[string]any{
					"200": swaggerkit.JSONResponse("match or no match", idSchema),
				},
				"x-no-error-envelope": true,
			})
		}
	}
}
