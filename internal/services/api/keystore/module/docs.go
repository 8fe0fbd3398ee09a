package module

import "knownkey/internal/modkit/swaggerkit"

func registerDocs(prefix string) {
	idSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{"type": "string", "format": "uuid"},
		},
	}
	hash := swaggerkit.HeaderParam("X-Hash-Value", "hash to look up", true)
	auth := swaggerkit.HeaderParam("Authorization", "must equal KEYSTORE_AUTH", true)

	swaggerkit.Register("keystore", func(spec map[string]any) {
		swaggerkit.AddPath(spec, prefix, "get", map[string]any{
			"tags":       []any{"Keystore"},
			"summary":    "Look up the id stored for a hash",
			"parameters": []any{hash, auth},
			"responses": map[string]any{
				"200": swaggerkit.JSONResponse("known", idSchema),
				"404": swaggerkit.JSONResponse("unknown", map[string]any{"$ref": "#/components/schemas/ErrorResponse"}),
			},
		})
		swaggerkit.AddPath(spec, prefix, "put", map[string]any{
			"tags":       []any{"Keystore"},
			"summary":    "Register or replace the id for a hash",
			"parameters": []any{auth},
			"requestBody": map[string]any{
				"required": true,
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"type":     "object",
							"required": []any{"hash"},
							"properties": map[string]any{
								"hash": map[string]any{"type": "string", "maxLength": 512},
								"id":   map[string]any{"type": "string", "format": "uuid"},
							},
						},
					},
				},
			},
			"responses": map[string]any{
				"200": swaggerkit.JSONResponse("stored", idSchema),
			},
		})
		swaggerkit.AddPath(spec, prefix, "delete", map[string]any{
			"tags":       []any{"Keystore"},
			"summary":    "Remove the mapping for a hash",
			"parameters": []any{hash, auth},
			"responses": map[string]any{
				"204": map[string]any{"description": "removed"},
			},
		})
	})
}
