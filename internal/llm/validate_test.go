package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func insightTestSchema() *Schema {
	return &Schema{
		Name:        "profile-insight",
		Description: "Narrative insight for a personality profile",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline": map[string]any{"type": "string"},
				"narrative": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"suggestions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"headline", "narrative", "suggestions"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"headline": "The Architect",
		"narrative": "You plan before you act.",
		"suggestions": ["share drafts earlier"]
	}`)
	if err := validateResponse(insightTestSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"headline": "The Architect"}`)
	err := validateResponse(insightTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if string(inv.Content) != string(raw) {
		t.Error("error should carry the offending content")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(insightTestSchema(), json.RawMessage(`{not json`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	schema := insightTestSchema()
	raw := json.RawMessage(`{"headline":"h","narrative":"n","suggestions":[]}`)

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(schema.Name); !ok {
		t.Fatal("compiled schema not cached")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
