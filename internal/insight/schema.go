package insight

import "github.com/sahanr/persona/internal/llm"

// InsightSchema defines the JSON schema for profile insight generation.
var InsightSchema = &llm.Schema{
	Name:        "profile-insight",
	Description: "Narrative reading of a personality assessment result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "Short evocative label for this result (3-8 words)",
			},
			"narrative": map[string]any{
				"type":        "string",
				"description": "3-5 sentence plain-language reading of the result",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete suggestions (one sentence each)",
			},
		},
		"required":             []any{"headline", "narrative", "suggestions"},
		"additionalProperties": false,
	},
}
