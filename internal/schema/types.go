// Package schema provides construction helpers for OpenAPI schema
// fragments built on github.com/go-openapi/spec.
package schema

import (
	"github.com/go-openapi/spec"
)

const (
	// ARRAY represent a array value.
	ARRAY = "array"
	// OBJECT represent a object value.
	OBJECT = "object"
	// BOOLEAN represent a boolean value.
	BOOLEAN = "boolean"
	// INTEGER represent a integer value.
	INTEGER = "integer"
	// NUMBER represent a number value.
	NUMBER = "number"
	// STRING represent a string value.
	STRING = "string"
)

// IsSimplePrimitiveType determines whether the type name is a simple primitive type.
func IsSimplePrimitiveType(typeName string) bool {
	switch typeName {
	case STRING, NUMBER, INTEGER, BOOLEAN:
		return true
	}
	return false
}

// PrimitiveSchema builds a primitive schema.
func PrimitiveSchema(refType string) *spec.Schema {
	return &spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{refType}}}
}

// ObjectSchema builds a bare object schema with no declared shape.
func ObjectSchema() *spec.Schema {
	return PrimitiveSchema(OBJECT)
}

// DateTimeSchema builds the conventional date/time schema: dates are
// serialized as strings at the boundary.
func DateTimeSchema() *spec.Schema {
	return spec.DateTimeProperty()
}

// ArraySchema builds an array schema around the given items schema.
func ArraySchema(items *spec.Schema) *spec.Schema {
	return spec.ArrayProperty(items)
}

// MergeSchema merges src into dst, skipping zero values.
func MergeSchema(dst *spec.Schema, src *spec.Schema) *spec.Schema {
	if len(src.Type) > 0 {
		dst.Type = src.Type
	}
	if len(src.Properties) > 0 {
		dst.Properties = src.Properties
	}
	if len(src.Required) > 0 {
		dst.Required = src.Required
	}
	if src.Items != nil {
		dst.Items = src.Items
	}
	if len(src.Description) > 0 {
		dst.Description = src.Description
	}
	if src.Nullable {
		dst.Nullable = src.Nullable
	}
	if len(src.Format) > 0 {
		dst.Format = src.Format
	}
	if len(src.OneOf) > 0 {
		dst.OneOf = src.OneOf
	}
	if len(src.AnyOf) > 0 {
		dst.AnyOf = src.AnyOf
	}
	if len(src.AllOf) > 0 {
		dst.AllOf = src.AllOf
	}
	return dst
}
