// Package domain contains core domain types shared across the schemagen
// application: type definitions, field descriptors, and the introspection
// contract the resolver depends on.
package domain

// TypeKind classifies a registered type definition.
type TypeKind int

const (
	// KindObject is a record-like type with enumerable public fields.
	KindObject TypeKind = iota
	// KindInterface is an interface-like type with no concrete shape.
	KindInterface
	// KindDateTime is a date/time representation, serialized as a string.
	KindDateTime
)

// FieldDescriptor describes one public field of a registered type.
// Type holds the declared type expression; an empty Type defaults to
// "string" during resolution.
type FieldDescriptor struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// TypeDefinition is the statically registered description of a type:
// its kind plus the ordered list of its public fields.
type TypeDefinition struct {
	Name        string
	Description string
	Kind        TypeKind
	Fields      []FieldDescriptor
}

// Describable is implemented by values that can describe their own
// fields, as an alternative to registering a TypeDefinition directly.
type Describable interface {
	DescribeFields() []FieldDescriptor
}
