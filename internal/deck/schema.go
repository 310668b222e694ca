package deck

// deckSchema is the JSON schema every imported deck file must satisfy.
// Validation happens before any card reaches the store, so a half-broken
// deck never partially imports.
var deckSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Display name of the deck",
		},
		"cards": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"source": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"translations": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type": "string",
						},
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
					"tags": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "string",
						},
					},
				},
				"required":             []any{"id", "source", "translations"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"name", "cards"},
	"additionalProperties": false,
}
