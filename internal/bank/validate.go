package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by embedded path.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateAgainstSchema validates raw JSON data against the embedded
// schema at schemaPath.
func validateAgainstSchema(schemaPath string, raw []byte) error {
	compiled, err := compiledSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", schemaPath, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(schemaPath string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schemaPath); ok {
		return cached.(*jsonschema.Schema), nil
	}

	raw, err := files.ReadFile(schemaPath)
	if err != nil {
		return nil, err
	}
	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := "schema://" + schemaPath
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	schemaCache.Store(schemaPath, compiled)
	return compiled, nil
}
