package content

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema validates a card bank document before any card is served.
// Malformed authored content fails at load, not mid-session.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"cards": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"concept_id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"difficulty": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"item_type": map[string]any{
						"type": "string",
						"enum": []any{"exact", "numeric", "multiple_choice"},
					},
				},
				"required":             []any{"concept_id", "difficulty", "prompt", "answer", "item_type"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"cards"},
	"additionalProperties": false,
}

var compiledBankSchema = mustCompileSchema("card-bank", bankSchema)

// validateBankDocument checks raw bank JSON against the schema.
func validateBankDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledBankSchema.Validate(parsed); err != nil {
		return fmt.Errorf("card bank schema validation: %w", err)
	}
	return nil
}

func mustCompileSchema(name string, definition map[string]any) *jsonschema.Schema {
	// The compiler wants a parsed JSON value; round-trip through
	// encoding/json to normalize the Go literal.
	b, err := json.Marshal(definition)
	if err != nil {
		panic(fmt.Sprintf("marshal %s schema: %v", name, err))
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		panic(fmt.Sprintf("parse %s schema: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		panic(fmt.Sprintf("add %s schema resource: %v", name, err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return compiled
}
