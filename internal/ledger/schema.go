package ledger

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const documentSchemaURL = "schema://question-stats.json"

// documentSchema describes the persisted ledger: an object of
// "<bank>::<index>" keys mapping to stat records.
const documentSchema = `{
	"type": "object",
	"propertyNames": {"pattern": "^.*::[0-9]+$"},
	"additionalProperties": {
		"type": "object",
		"properties": {
			"correct":  {"type": "integer", "minimum": 0},
			"wrong":    {"type": "integer", "minimum": 0},
			"favorite": {"type": "boolean"},
			"last":     {"type": ["boolean", "null"]}
		},
		"required": ["correct", "wrong"]
	}
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(documentSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(documentSchemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks raw against the ledger document schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrInvalidDocument, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile ledger schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}
