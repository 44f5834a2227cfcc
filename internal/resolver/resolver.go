// Package resolver converts annotation type expressions into OpenAPI
// schema fragments, recursively expanding registered object types through
// an injected field introspector.
package resolver

import (
	"strings"

	"github.com/go-openapi/spec"

	"github.com/docblock/schemagen/internal/domain"
	"github.com/docblock/schemagen/internal/schema"
)

const (
	nullToken   = "null"
	mixedToken  = "mixed"
	objectToken = "object"

	// arraySuffix marks an array-of type expression, e.g. "string[]".
	arraySuffix = "[]"

	// defaultFieldType is assumed for fields declared without a type.
	defaultFieldType = "string"
)

// Service resolves type expressions into schema fragments. Each Resolve
// call is a pure function of its arguments and the introspection results
// it queries, so a Service is safe for concurrent use as long as its
// introspector honors the same contract.
type Service struct {
	introspector domain.FieldIntrospector
}

// NewService creates a resolver service backed by the given introspector.
func NewService(introspector domain.FieldIntrospector) *Service {
	return &Service{introspector: introspector}
}

// Resolve produces the schema fragment for a type expression. The
// optional description is attached to the resulting fragment. Compound
// expressions (`|`, `&`), nullable shorthand (`?`), array suffixes
// (`[]`) and registered object types are decomposed recursively; a token
// that is neither a registered type nor a recognized scalar alias yields
// an UnsupportedTypeError.
func (s *Service) Resolve(typeExpression, description string) (*spec.Schema, error) {
	return s.resolve(typeExpression, description, map[string]bool{})
}

// resolve classifies the expression in priority order: compound, array,
// known type, mixed, bare object, scalar fallback. The visited set holds
// the type names on the current expansion path for cycle avoidance.
func (s *Service) resolve(expr, description string, visited map[string]bool) (*spec.Schema, error) {
	// The schema model has no grouping concept, so parentheses carry no
	// meaning here.
	expr = strings.NewReplacer("(", "", ")", "").Replace(expr)

	// ?Foo is shorthand for null|Foo. Desugar before union detection so a
	// single nullable type is routed through the union path.
	expr = strings.ReplaceAll(expr, "?", nullToken+"|")

	hasUnion := strings.ContainsRune(expr, '|')
	hasIntersection := strings.ContainsRune(expr, '&')
	if hasUnion || hasIntersection {
		return s.resolveCompound(expr, description, hasUnion, hasIntersection, visited)
	}

	if stripped, ok := strings.CutSuffix(expr, arraySuffix); ok {
		items, err := s.resolve(stripped, "", visited)
		if err != nil {
			return nil, err
		}
		array := schema.ArraySchema(items)
		array.Description = description
		return array, nil
	}

	if s.introspector.IsKnownType(expr) {
		return s.resolveKnownType(expr, description, visited)
	}

	// mixed accepts anything, including absence of a value: no type
	// constraint at all.
	if strings.EqualFold(expr, mixedToken) {
		mixed := &spec.Schema{}
		mixed.Nullable = true
		mixed.Description = description
		return mixed, nil
	}

	if strings.EqualFold(expr, objectToken) || s.introspector.IsInterfaceLike(expr) {
		object := schema.ObjectSchema()
		object.Description = description
		return object, nil
	}

	schemaType, err := ScalarSchemaType(expr)
	if err != nil {
		return nil, err
	}
	scalar := schema.PrimitiveSchema(schemaType)
	scalar.Description = description
	return scalar, nil
}

// resolveCompound splits a union/intersection expression into its
// sub-expressions and merges their resolutions under the matching
// combinator key.
func (s *Service) resolveCompound(
	expr, description string,
	hasUnion, hasIntersection bool,
	visited map[string]bool,
) (*spec.Schema, error) {
	rawTokens := strings.FieldsFunc(expr, func(r rune) bool {
		return r == '|' || r == '&'
	})

	// Normalize aliases and deduplicate, preserving first-seen order so
	// resolution stays deterministic.
	seen := make(map[string]bool, len(rawTokens))
	nullable := false
	tokens := make([]string, 0, len(rawTokens))
	for _, raw := range rawTokens {
		token := Normalize(strings.TrimSpace(raw))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true

		if strings.EqualFold(token, nullToken) {
			nullable = true
			continue
		}
		tokens = append(tokens, token)
	}

	// "?" or "null" on its own constrains nothing beyond nullability.
	if len(tokens) == 0 {
		out := &spec.Schema{}
		out.Nullable = nullable
		out.Description = description
		return out, nil
	}

	// A composite that degenerates to a single type is that type plus
	// nullability; the outer description is merged in, nothing else.
	if len(tokens) == 1 {
		resolved, err := s.resolve(tokens[0], "", visited)
		if err != nil {
			return nil, err
		}
		overlay := &spec.Schema{}
		overlay.Nullable = nullable
		overlay.Description = description
		return schema.MergeSchema(resolved, overlay), nil
	}

	subSchemas := make([]spec.Schema, 0, len(tokens))
	for _, token := range tokens {
		resolved, err := s.resolve(token, "", visited)
		if err != nil {
			return nil, err
		}
		subSchemas = append(subSchemas, *resolved)
	}

	composed := schema.ComposedSchema(schema.CombinatorFor(hasUnion, hasIntersection), subSchemas)
	composed.Nullable = nullable
	composed.Description = description
	return composed, nil
}

// resolveKnownType expands a registered type into an object schema with
// properties and a required list, or the conventional string/date-time
// schema for date/time representations.
func (s *Service) resolveKnownType(typeName, description string, visited map[string]bool) (*spec.Schema, error) {
	if s.introspector.IsDateTimeLike(typeName) {
		dateTime := schema.DateTimeSchema()
		dateTime.Description = description
		return dateTime, nil
	}

	// Interface-like types have no concrete shape to expand.
	if s.introspector.IsInterfaceLike(typeName) {
		object := schema.ObjectSchema()
		object.Description = description
		return object, nil
	}

	// A type already on the current expansion path collapses to a bare
	// object placeholder instead of expanding again. This covers direct
	// self-references as well as mutual cycles.
	if visited[typeName] {
		object := schema.ObjectSchema()
		object.Description = description
		return object, nil
	}
	visited[typeName] = true
	defer delete(visited, typeName)

	fields, err := s.introspector.ListPublicFields(typeName)
	if err != nil {
		return nil, err
	}

	properties := make(map[string]spec.Schema, len(fields))
	required := make([]string, 0, len(fields))
	for _, field := range fields {
		fieldType := field.Type
		if fieldType == "" {
			fieldType = defaultFieldType
		}

		propSchema, err := s.resolve(fieldType, field.Description, visited)
		if err != nil {
			return nil, err
		}
		properties[field.Name] = *propSchema

		if field.Required {
			required = append(required, field.Name)
		}
	}

	object := schema.ObjectSchema()
	object.Properties = properties
	object.Required = required
	object.Description = description
	return object, nil
}
