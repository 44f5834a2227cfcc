package domain

import "fmt"

// UnsupportedTypeError reports a type token that reached the scalar
// fallback but does not map to one of the four canonical scalar families.
type UnsupportedTypeError struct {
	Token string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q: not a recognized scalar, class or interface", e.Token)
}

// IntrospectionUnavailableError reports that the metadata source cannot
// supply the field descriptors for a type, for example when annotations
// were stripped or the definition file is missing the type.
type IntrospectionUnavailableError struct {
	TypeName string
	Reason   string
}

func (e *IntrospectionUnavailableError) Error() string {
	return fmt.Sprintf("introspection unavailable for type %q: %s", e.TypeName, e.Reason)
}
