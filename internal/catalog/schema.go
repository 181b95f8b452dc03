package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://portfolio.json"

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string", "minLength": 1},
}

// documentSchema describes the embedded portfolio document.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"owner": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":     map[string]any{"type": "string", "minLength": 1},
				"initials": map[string]any{"type": "string"},
				"roles":    stringList,
			},
			"required": []any{"name", "roles"},
		},
		"about": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"heading":    map[string]any{"type": "string"},
				"paragraphs": stringList,
				"emphasis":   stringList,
			},
			"required": []any{"heading", "paragraphs"},
		},
		"capabilities": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string", "minLength": 1},
					"body":  map[string]any{"type": "string"},
				},
				"required": []any{"title", "body"},
			},
		},
		"projects": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":  map[string]any{"type": "string", "minLength": 1},
					"tier":   map[string]any{"type": "string", "enum": []any{"primary", "secondary"}},
					"desc":   map[string]any{"type": "string"},
					"stack":  stringList,
					"github": map[string]any{"type": "string"},
					"live":   map[string]any{"type": "string"},
				},
				"required":             []any{"title", "tier", "desc"},
				"additionalProperties": false,
			},
		},
		"tech": stringList,
		"credentials": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"issuer": map[string]any{"type": "string", "minLength": 1},
					"title":  map[string]any{"type": "string"},
					"date":   map[string]any{"type": "string"},
					"link":   map[string]any{"type": "string"},
				},
				"required": []any{"issuer", "title"},
			},
		},
		"socials": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"label": map[string]any{"type": "string", "minLength": 1},
					"url":   map[string]any{"type": "string", "minLength": 1},
				},
				"required": []any{"label", "url"},
			},
		},
		"contact": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"email": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []any{"email"},
		},
	},
	"required": []any{"owner", "projects", "contact"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles documentSchema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with typed slices.
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// validateDocument checks raw JSON against the portfolio schema.
func validateDocument(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
