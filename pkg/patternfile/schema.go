package patternfile

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema validates the shape of operator nodes before
// compilation, so malformed arguments fail with a location instead of a
// compile error deep in the tree. Plain object patterns pass through the
// additionalProperties recursion.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://structmatch.dev/pattern-document.schema.json",
  "type": "object",
  "required": ["pattern"],
  "properties": {
    "pattern": { "$ref": "#/$defs/node" }
  },
  "$defs": {
    "node": {
      "anyOf": [
        { "type": ["null", "boolean", "number", "string"] },
        { "type": "array", "items": { "$ref": "#/$defs/node" } },
        {
          "type": "object",
          "properties": {
            "$any": { "type": "boolean" },
            "$not": { "$ref": "#/$defs/node" },
            "$optional": { "$ref": "#/$defs/node" },
            "$or": { "type": "array", "items": { "$ref": "#/$defs/node" }, "minItems": 1 },
            "$and": { "type": "array", "items": { "$ref": "#/$defs/node" }, "minItems": 1 },
            "$array": { "$ref": "#/$defs/node" },
            "$set": { "$ref": "#/$defs/node" },
            "$map": {
              "type": "object",
              "properties": {
                "key": { "$ref": "#/$defs/node" },
                "value": { "$ref": "#/$defs/node" }
              },
              "additionalProperties": false
            },
            "$select": {
              "anyOf": [
                { "type": ["string", "boolean", "null"] },
                {
                  "type": "object",
                  "properties": {
                    "name": { "type": "string" },
                    "pattern": { "$ref": "#/$defs/node" }
                  },
                  "additionalProperties": false
                }
              ]
            },
            "$type": { "enum": ["string", "number", "int", "bool", "nil", "null"] },
            "$regex": { "type": "string" },
            "$glob": { "type": "string" },
            "$expr": { "type": "string" },
            "$uuid": { "type": "boolean" },
            "$jsonpath": {
              "type": "object",
              "required": ["path"],
              "properties": {
                "path": { "type": "string" },
                "pattern": { "$ref": "#/$defs/node" }
              },
              "additionalProperties": false
            },
            "$gt": { "type": "number" },
            "$gte": { "type": "number" },
            "$lt": { "type": "number" },
            "$lte": { "type": "number" },
            "$between": {
              "type": "array",
              "items": { "type": "number" },
              "minItems": 2,
              "maxItems": 2
            },
            "$startsWith": { "type": "string" },
            "$endsWith": { "type": "string" },
            "$contains": { "type": "string" },
            "$minLength": { "type": "integer", "minimum": 0 },
            "$maxLength": { "type": "integer", "minimum": 0 }
          },
          "additionalProperties": { "$ref": "#/$defs/node" }
        }
      ]
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
		compiledSchema, schemaErr = jsonschema.CompileString("pattern-document.schema.json", documentSchema)
	})
	return compiledSchema, schemaErr
}

// ValidateDocument checks a decoded document against the embedded JSON
// Schema. The returned error wraps ErrInvalidDocument and carries the
// validator's location details.
func ValidateDocument(doc any) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("compiling document schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, summarizeSchemaError(err))
	}
	return nil
}

// summarizeSchemaError flattens the validator's multi-line output into a
// single log-friendly line.
func summarizeSchemaError(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}
