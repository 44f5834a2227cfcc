// Package loader populates the type registry from definition files or
// from Go source packages.
package loader

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/docblock/schemagen/internal/domain"
	"github.com/docblock/schemagen/internal/registry"
)

// rawField mirrors one field entry of a definition file. Required is a
// free-form annotation string and goes through boolean coercion.
type rawField struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Required    string `json:"required,omitempty"`
}

// rawType mirrors one type entry of a definition file.
type rawType struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Kind        string     `json:"kind,omitempty"`
	Fields      []rawField `json:"fields,omitempty"`
}

// defsFile is the root of a definition file. YAML input is accepted via
// YAML-to-JSON conversion, so the same tags serve both formats.
type defsFile struct {
	Types []rawType `json:"types"`
}

// LoadFile reads a YAML or JSON definition file and registers its types.
func LoadFile(path string, reg *registry.Service) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read definitions file %s: %w", path, err)
	}
	if err := Load(data, reg); err != nil {
		return fmt.Errorf("definitions file %s: %w", path, err)
	}
	return nil
}

// Load parses definition file content and registers its types in
// document order.
func Load(data []byte, reg *registry.Service) error {
	var file defsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("could not parse definitions: %w", err)
	}
	if len(file.Types) == 0 {
		return fmt.Errorf("definitions contain no types")
	}

	for _, raw := range file.Types {
		kind, err := parseKind(raw.Kind)
		if err != nil {
			return fmt.Errorf("type %q: %w", raw.Name, err)
		}

		def := domain.TypeDefinition{
			Name:        raw.Name,
			Description: raw.Description,
			Kind:        kind,
			Fields:      make([]domain.FieldDescriptor, 0, len(raw.Fields)),
		}
		for _, field := range raw.Fields {
			def.Fields = append(def.Fields, domain.FieldDescriptor{
				Name:        field.Name,
				Type:        field.Type,
				Description: field.Description,
				Required:    domain.CoerceBool(field.Required),
			})
		}

		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// parseKind maps the kind string of a definition file onto a TypeKind.
// An absent kind means a plain object type.
func parseKind(kind string) (domain.TypeKind, error) {
	switch kind {
	case "", "object", "struct", "class":
		return domain.KindObject, nil
	case "interface":
		return domain.KindInterface, nil
	case "datetime", "date-time":
		return domain.KindDateTime, nil
	default:
		return domain.KindObject, fmt.Errorf("unknown kind %q", kind)
	}
}
