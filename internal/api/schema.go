package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names a JSON schema definition for a request body.
type Schema struct {
	Name       string
	Definition map[string]any
}

// GenerateQuizSchema describes the POST /generate-quiz body.
var GenerateQuizSchema = &Schema{
	Name: "generate-quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"difficulty": map[string]any{
				"type":        "integer",
				"description": "Difficulty 1-10. Values outside the range are clamped.",
			},
			"numQuestions": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 50,
			},
			"includeMultDiv": map[string]any{"type": "boolean"},
			"includeSqrtExp": map[string]any{"type": "boolean"},
		},
		"required": []any{"difficulty", "numQuestions"},
	},
}

// SubmitAnswerSchema describes the POST /submit-answer body.
var SubmitAnswerSchema = &Schema{
	Name: "submit-answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"userAnswer":    map[string]any{"type": "number"},
			"correctAnswer": map[string]any{"type": "number"},
		},
		"required": []any{"userAnswer", "correctAnswer"},
	},
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// decodeBody validates raw against schema and unmarshals it into dst.
// Any failure is a *RequestError.
func decodeBody(schema *Schema, raw []byte, dst any) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return &RequestError{Message: "no JSON data provided"}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &RequestError{Message: "invalid JSON", Err: err}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return &RequestError{Message: "invalid input parameters", Err: err}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return &RequestError{Message: "invalid input parameters", Err: err}
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value, so round-trip the Go map.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
