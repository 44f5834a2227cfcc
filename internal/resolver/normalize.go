package resolver

import (
	"strings"

	"github.com/docblock/schemagen/internal/domain"
	"github.com/docblock/schemagen/internal/schema"
)

// aliasTable maps lower-cased scalar aliases onto their canonical family.
// Canonical names themselves are not in the table and pass through.
var aliasTable = map[string]string{
	"integer": "int",
	"double":  "float",
	"numeric": "float",
	"boolean": "bool",
	"true":    "bool",
	"false":   "bool",
}

// scalarTable maps canonical scalar families onto schema primitive types.
var scalarTable = map[string]string{
	"int":    schema.INTEGER,
	"float":  schema.NUMBER,
	"bool":   schema.BOOLEAN,
	"string": schema.STRING,
}

// Normalize canonicalizes a scalar type alias to its family name.
// Unknown tokens pass through unchanged with their case preserved.
// Example: "integer" -> "int"
// Example: "Double" -> "float"
// Example: "Account" -> "Account"
func Normalize(token string) string {
	if canonical, ok := aliasTable[strings.ToLower(token)]; ok {
		return canonical
	}
	return token
}

// ScalarSchemaType maps a scalar token onto its schema primitive type
// ("integer", "number", "boolean" or "string"). Tokens outside the four
// canonical families should have been filtered earlier as class,
// interface, mixed or object; reaching this point with one is an
// UnsupportedTypeError.
func ScalarSchemaType(token string) (string, error) {
	schemaType, ok := scalarTable[strings.ToLower(Normalize(token))]
	if !ok {
		return "", &domain.UnsupportedTypeError{Token: token}
	}
	return schemaType, nil
}
