package domain

// FieldIntrospector supplies per-type field lists and type classification
// to the schema resolver. Implementations must be cheap, side-effect-free,
// and return consistent results within a single resolution call tree.
type FieldIntrospector interface {
	// ListPublicFields returns the public fields of the named type in
	// declaration order. It returns an IntrospectionUnavailableError when
	// the metadata for the type cannot be supplied.
	ListPublicFields(typeName string) ([]FieldDescriptor, error)

	// IsKnownType reports whether the name refers to a registered type.
	IsKnownType(name string) bool

	// IsDateTimeLike reports whether the name refers to a date/time
	// representation.
	IsDateTimeLike(name string) bool

	// IsInterfaceLike reports whether the name refers to an
	// interface-like type with no concrete shape.
	IsInterfaceLike(name string) bool
}
