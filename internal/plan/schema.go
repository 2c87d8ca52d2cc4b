package plan

import (
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// planSchema is the structural contract for planner output. Element fields are
// permissive (nullable) because the planner is a probabilistic source; only
// the skeleton the renderer depends on is required.
const planSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["sections"],
  "properties": {
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "description": {"type": ["string", "null"]},
          "conclusion": {"type": ["string", "null"]},
          "elements": {"type": ["array", "null"], "items": {"$ref": "#/definitions/element"}},
          "subsections": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "required": ["title"],
              "properties": {
                "title": {"type": "string", "minLength": 1},
                "elements": {"type": ["array", "null"], "items": {"$ref": "#/definitions/element"}}
              }
            }
          }
        }
      }
    }
  },
  "definitions": {
    "element": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"type": "string"},
        "content": {"type": ["string", "null"]},
        "list_items": {"type": ["array", "null"], "items": {"type": "string"}},
        "table_data": {
          "type": ["array", "null"],
          "items": {"type": "array", "items": {"type": "string"}}
        },
        "quote_text": {"type": ["string", "null"]}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("plan.schema.json", planSchema)
	})
	return compiledSchema, schemaErr
}

func validateShape(m map[string]any) error {
	schema, err := loadSchema()
	if err != nil {
		return &ShapeError{Field: "doc_structure", Reason: err.Error()}
	}
	if err := schema.Validate(m); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			field, reason := leafCause(ve)
			return &ShapeError{Field: field, Reason: reason}
		}
		return &ShapeError{Field: "doc_structure", Reason: err.Error()}
	}
	return nil
}

// leafCause walks to the deepest validation failure so the error names the
// actual offending field rather than the document root.
func leafCause(ve *jsonschema.ValidationError) (string, string) {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	field := strings.TrimPrefix(ve.InstanceLocation, "/")
	if field == "" {
		field = "doc_structure"
	}
	return field, ve.Message
}
