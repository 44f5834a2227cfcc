package loader

import (
	"fmt"
	"go/ast"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/docblock/schemagen/internal/domain"
	"github.com/docblock/schemagen/internal/registry"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax

// LoadGoPackages derives type definitions from the struct and interface
// declarations of the matched Go packages and registers them. Field doc
// comments become descriptions; binding/validate tags carrying
// "required" set the required flag.
func LoadGoPackages(patterns []string, dir string, reg *registry.Service) error {
	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("could not load packages %v: %w", patterns, err)
	}

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return fmt.Errorf("package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		for _, file := range pkg.Syntax {
			if err := collectFileTypes(file, reg); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectFileTypes walks the top-level type declarations of one file.
func collectFileTypes(file *ast.File, reg *registry.Service) error {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || !ast.IsExported(typeSpec.Name.Name) {
				continue
			}

			description := ""
			if genDecl.Doc != nil {
				description = strings.TrimSpace(genDecl.Doc.Text())
			}

			switch t := typeSpec.Type.(type) {
			case *ast.StructType:
				def := domain.TypeDefinition{
					Name:        typeSpec.Name.Name,
					Description: description,
					Kind:        domain.KindObject,
					Fields:      collectStructFields(t),
				}
				if err := reg.Register(def); err != nil {
					return err
				}
			case *ast.InterfaceType:
				def := domain.TypeDefinition{
					Name:        typeSpec.Name.Name,
					Description: description,
					Kind:        domain.KindInterface,
				}
				if err := reg.Register(def); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// collectStructFields converts the exported fields of a struct type into
// field descriptors, in declaration order.
func collectStructFields(structType *ast.StructType) []domain.FieldDescriptor {
	if structType.Fields == nil {
		return nil
	}

	fields := make([]domain.FieldDescriptor, 0, len(structType.Fields.List))
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 || !ast.IsExported(field.Names[0].Name) {
			continue
		}

		name := field.Names[0].Name
		tag := fieldTag(field)
		if jsonName := firstTagValue(tag, "json"); jsonName == "-" {
			continue
		} else if jsonName != "" {
			name = jsonName
		}

		description := ""
		if field.Doc != nil {
			description = strings.TrimSpace(field.Doc.Text())
		}
		if description == "" && field.Comment != nil {
			description = strings.TrimSpace(field.Comment.Text())
		}

		fields = append(fields, domain.FieldDescriptor{
			Name:        name,
			Type:        typeExpression(field.Type),
			Description: description,
			Required:    isRequiredTag(tag),
		})
	}
	return fields
}

// typeExpression renders a Go field type as an annotation type
// expression: pointers become nullable shorthand, slices become array
// suffixes, time.Time becomes the DateTime representation.
func typeExpression(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		switch t.Name {
		case "string":
			return "string"
		case "bool":
			return "bool"
		case "int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64", "byte", "rune":
			return "int"
		case "float32", "float64":
			return "float"
		case "any", "error":
			return "mixed"
		default:
			return t.Name
		}
	case *ast.StarExpr:
		return "?" + typeExpression(t.X)
	case *ast.ArrayType:
		return typeExpression(t.Elt) + "[]"
	case *ast.SelectorExpr:
		if ident, ok := t.X.(*ast.Ident); ok && ident.Name == "time" && t.Sel.Name == "Time" {
			return "DateTime"
		}
		return t.Sel.Name
	case *ast.InterfaceType:
		return "mixed"
	default:
		return "object"
	}
}

// fieldTag returns the struct tag of a field without its backticks.
func fieldTag(field *ast.Field) reflect.StructTag {
	if field.Tag == nil {
		return ""
	}
	return reflect.StructTag(strings.ReplaceAll(field.Tag.Value, "`", ""))
}

// firstTagValue returns the first comma-separated value of a tag.
func firstTagValue(tag reflect.StructTag, name string) string {
	return strings.TrimSpace(strings.Split(tag.Get(name), ",")[0])
}

// isRequiredTag reports whether a binding or validate tag marks the
// field required.
func isRequiredTag(tag reflect.StructTag) bool {
	for _, tagName := range []string{"binding", "validate"} {
		for _, val := range strings.Split(tag.Get(tagName), ",") {
			if val == "required" {
				return true
			}
		}
	}
	return false
}
