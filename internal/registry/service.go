// Package registry provides centralized management of type definitions.
// It implements the field introspection contract the resolver depends on
// over a statically registered descriptor table, so no run-time
// reflection is needed.
package registry

import (
	"fmt"

	"github.com/docblock/schemagen/internal/domain"
)

// dateTimeNames are conventional date/time type names recognized without
// explicit registration.
var dateTimeNames = []string{"DateTime", "DateTimeImmutable", "Time"}

// Service manages registered type definitions and answers introspection
// queries. Register all definitions before resolving; lookups take no
// locks because resolution only reads.
type Service struct {
	definitions map[string]domain.TypeDefinition

	// seeded marks built-in date/time entries, which an explicit
	// registration may override.
	seeded map[string]bool

	// order keeps user registrations in insertion order for
	// deterministic document output.
	order []string
}

// NewService creates a registry seeded with the conventional date/time
// type names.
func NewService() *Service {
	s := &Service{
		definitions: make(map[string]domain.TypeDefinition),
		seeded:      make(map[string]bool),
	}
	for _, name := range dateTimeNames {
		s.definitions[name] = domain.TypeDefinition{Name: name, Kind: domain.KindDateTime}
		s.seeded[name] = true
	}
	return s
}

// Register adds a type definition. Registering the same name twice is an
// error; a misconfigured definition set should stop generation early.
func (s *Service) Register(def domain.TypeDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("cannot register type definition without a name")
	}
	if existing, ok := s.definitions[def.Name]; ok && !(existing.Kind == domain.KindDateTime && s.seeded[def.Name]) {
		return fmt.Errorf("type %q is already registered", def.Name)
	}

	s.order = append(s.order, def.Name)
	s.definitions[def.Name] = def
	delete(s.seeded, def.Name)
	return nil
}

// RegisterDescribable registers a type whose fields come from its own
// DescribeFields implementation.
func (s *Service) RegisterDescribable(name string, d domain.Describable) error {
	return s.Register(domain.TypeDefinition{
		Name:   name,
		Kind:   domain.KindObject,
		Fields: d.DescribeFields(),
	})
}

// Names returns the user-registered type names in registration order.
func (s *Service) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Definition returns the registered definition for a name.
func (s *Service) Definition(name string) (domain.TypeDefinition, bool) {
	def, ok := s.definitions[name]
	return def, ok
}

// ListPublicFields returns the public fields of the named type in
// declaration order.
func (s *Service) ListPublicFields(typeName string) ([]domain.FieldDescriptor, error) {
	def, ok := s.definitions[typeName]
	if !ok {
		return nil, &domain.IntrospectionUnavailableError{
			TypeName: typeName,
			Reason:   "type is not registered",
		}
	}
	return def.Fields, nil
}

// IsKnownType reports whether the name refers to a registered type.
func (s *Service) IsKnownType(name string) bool {
	_, ok := s.definitions[name]
	return ok
}

// IsDateTimeLike reports whether the name refers to a date/time
// representation.
func (s *Service) IsDateTimeLike(name string) bool {
	def, ok := s.definitions[name]
	return ok && def.Kind == domain.KindDateTime
}

// IsInterfaceLike reports whether the name refers to an interface-like
// type with no concrete shape.
func (s *Service) IsInterfaceLike(name string) bool {
	def, ok := s.definitions[name]
	return ok && def.Kind == domain.KindInterface
}
