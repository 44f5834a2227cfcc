package schema

import (
	"github.com/go-openapi/spec"
)

// CombinatorKey names the schema key expressing how a list of sub-schemas
// combines: matches one of, any of, or all of them.
type CombinatorKey string

const (
	// OneOfKey combines alternatives of a union.
	OneOfKey CombinatorKey = "oneOf"
	// AnyOfKey combines alternatives of a mixed union/intersection.
	AnyOfKey CombinatorKey = "anyOf"
	// AllOfKey combines the members of an intersection.
	AllOfKey CombinatorKey = "allOf"
)

// CombinatorFor picks the combinator key for a compound expression.
// Both union and intersection present wins anyOf; union alone oneOf;
// intersection alone allOf.
func CombinatorFor(hasUnion, hasIntersection bool) CombinatorKey {
	switch {
	case hasUnion && hasIntersection:
		return AnyOfKey
	case hasUnion:
		return OneOfKey
	default:
		return AllOfKey
	}
}

// ComposedSchema attaches the sub-schemas to a fresh schema under the
// given combinator key.
func ComposedSchema(key CombinatorKey, schemas []spec.Schema) *spec.Schema {
	composed := &spec.Schema{}
	switch key {
	case OneOfKey:
		composed.OneOf = schemas
	case AnyOfKey:
		composed.AnyOf = schemas
	case AllOfKey:
		composed.AllOf = schemas
	}
	return composed
}
