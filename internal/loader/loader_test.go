package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docblock/schemagen/internal/domain"
	"github.com/docblock/schemagen/internal/registry"
)

const accountDefs = `
types:
  - name: Account
    description: A billable account.
    fields:
      - name: id
        type: int
        description: primary key
        required: "true"
      - name: name
        type: "?string"
        required: "1"
      - name: balance
        type: float
        required: "no"
      - name: notes
  - name: Serializable
    kind: interface
  - name: Timestamp
    kind: datetime
`

func TestLoad_RegistersTypes(t *testing.T) {
	reg := registry.NewService()

	require.NoError(t, Load([]byte(accountDefs), reg))

	assert.Equal(t, []string{"Account", "Serializable", "Timestamp"}, reg.Names())

	def, ok := reg.Definition("Account")
	require.True(t, ok)
	assert.Equal(t, "A billable account.", def.Description)
	assert.Equal(t, domain.KindObject, def.Kind)

	require.Len(t, def.Fields, 4)
	assert.Equal(t, "id", def.Fields[0].Name)
	assert.Equal(t, "int", def.Fields[0].Type)
	assert.Equal(t, "primary key", def.Fields[0].Description)
	assert.True(t, def.Fields[0].Required)

	// "1" coerces true, "no" and absence coerce false.
	assert.True(t, def.Fields[1].Required)
	assert.False(t, def.Fields[2].Required)
	assert.False(t, def.Fields[3].Required)

	// A field without a declared type stays empty; the resolver defaults
	// it to string.
	assert.Empty(t, def.Fields[3].Type)

	assert.True(t, reg.IsInterfaceLike("Serializable"))
	assert.True(t, reg.IsDateTimeLike("Timestamp"))
}

func TestLoad_AcceptsJSON(t *testing.T) {
	reg := registry.NewService()

	data := []byte(`{"types":[{"name":"Note","fields":[{"name":"body","type":"string"}]}]}`)
	require.NoError(t, Load(data, reg))
	assert.True(t, reg.IsKnownType("Note"))
}

func TestLoad_EmptyDefinitions(t *testing.T) {
	reg := registry.NewService()

	err := Load([]byte("types: []"), reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no types")
}

func TestLoad_UnknownKind(t *testing.T) {
	reg := registry.NewService()

	err := Load([]byte("types:\n  - name: Account\n    kind: enum\n"), reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestLoad_MalformedContent(t *testing.T) {
	reg := registry.NewService()

	err := Load([]byte("types: {not a list"), reg)
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(accountDefs), 0o600))

	reg := registry.NewService()
	require.NoError(t, LoadFile(path, reg))
	assert.True(t, reg.IsKnownType("Account"))
}

func TestLoadFile_Missing(t *testing.T) {
	reg := registry.NewService()

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), reg)
	require.Error(t, err)
}
