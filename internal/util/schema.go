// Package util contains reflection helpers for building JSON schemas from Go
// structs and checking decoded JSON values against them.
package util

import (
	"fmt"
	"reflect"
	"strings"
)

// ShapeError reports a field of a decoded JSON value that does not satisfy
// the schema. Field is a dotted path for nested objects.
type ShapeError struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

// Error implements the error interface for ShapeError.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
}

// Schema creates a JSON schema from a Go struct using reflection, recursing
// into nested structs and slice element types. Every exported field without
// an omitempty tag is marked required, and objects reject additional
// properties, which is what strict structured-output modes expect.
func Schema(structType any) map[string]any {
	t := reflect.TypeOf(structType)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	}
	return structSchema(t)
}

func structSchema(t reflect.Type) map[string]any {
	properties := make(map[string]any)
	required := make([]string, 0)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		if jsonTag != "" {
			if name := strings.Split(jsonTag, ",")[0]; name != "" {
				fieldName = name
			}
		}

		fieldSchema := typeSchema(field.Type)
		if description := field.Tag.Get("description"); description != "" {
			fieldSchema["description"] = description
		}
		properties[fieldName] = fieldSchema

		if !hasOmitEmpty(jsonTag) && field.Type.Kind() != reflect.Ptr {
			required = append(required, fieldName)
		}
	}

	schema := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// typeSchema returns the schema fragment for a single Go type, descending
// into pointers, slices and nested structs.
func typeSchema(t reflect.Type) map[string]any {
	switch t.Kind() {
	case reflect.Ptr:
		return typeSchema(t.Elem())
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Slice, reflect.Array:
		return map[string]any{
			"type":  "array",
			"items": typeSchema(t.Elem()),
		}
	case reflect.Struct:
		return structSchema(t)
	case reflect.Map:
		return map[string]any{"type": "object"}
	default:
		return map[string]any{"type": "string"}
	}
}

// ValidateShape checks a decoded JSON object against a schema produced by
// Schema: required fields must be present and every present field must have
// the declared type. Nested objects and array elements are checked
// recursively. Extra fields are tolerated.
func ValidateShape(value map[string]any, schema map[string]any) error {
	return validateObject(value, schema, "")
}

func validateObject(value map[string]any, schema map[string]any, path string) error {
	required, _ := schema["required"].([]string)
	if required == nil {
		// Schemas that round-tripped through JSON carry []any.
		if raw, ok := schema["required"].([]any); ok {
			for _, r := range raw {
				if s, ok := r.(string); ok {
					required = append(required, s)
				}
			}
		}
	}
	for _, name := range required {
		if _, exists := value[name]; !exists {
			return &ShapeError{Field: joinPath(path, name), Message: "required field is missing"}
		}
	}

	properties, _ := schema["properties"].(map[string]any)
	for name, fieldValue := range value {
		propSchema, ok := properties[name].(map[string]any)
		if !ok {
			continue
		}
		if err := validateValue(fieldValue, propSchema, joinPath(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(value any, schema map[string]any, path string) error {
	if value == nil {
		return &ShapeError{Field: path, Message: "must not be null"}
	}
	expectedType, _ := schema["type"].(string)
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return typeMismatch(path, value, expectedType)
		}
	case "integer", "number":
		switch value.(type) {
		case float64, int, int64: // JSON decoding yields float64
		default:
			return typeMismatch(path, value, expectedType)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return typeMismatch(path, value, expectedType)
		}
	case "array":
		items, ok := value.([]any)
		if !ok {
			return typeMismatch(path, value, expectedType)
		}
		itemSchema, _ := schema["items"].(map[string]any)
		if itemSchema == nil {
			return nil
		}
		for i, item := range items {
			if err := validateValue(item, itemSchema, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return typeMismatch(path, value, expectedType)
		}
		return validateObject(obj, schema, path)
	}
	return nil
}

func typeMismatch(path string, value any, expected string) error {
	return &ShapeError{
		Field:   path,
		Value:   value,
		Message: fmt.Sprintf("expected type %s, got %T", expected, value),
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func hasOmitEmpty(tag string) bool {
	parts := strings.Split(tag, ",")
	for _, part := range parts[1:] {
		if strings.TrimSpace(part) == "omitempty" {
			return true
		}
	}
	return false
}
