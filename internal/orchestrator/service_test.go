package orchestrator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docblock/schemagen/internal/domain"
	"github.com/docblock/schemagen/internal/registry"
)

func TestResolveAll(t *testing.T) {
	reg := registry.NewService()
	require.NoError(t, reg.Register(domain.TypeDefinition{
		Name:        "Account",
		Description: "A billable account.",
		Kind:        domain.KindObject,
		Fields: []domain.FieldDescriptor{
			{Name: "id", Type: "int", Required: true},
			{Name: "owner", Type: "?Person"},
			{Name: "created", Type: "DateTime"},
		},
	}))
	require.NoError(t, reg.Register(domain.TypeDefinition{
		Name: "Person",
		Kind: domain.KindObject,
		Fields: []domain.FieldDescriptor{
			{Name: "name", Type: "string", Required: true},
		},
	}))

	definitions, err := New(reg).ResolveAll()
	require.NoError(t, err)
	require.Len(t, definitions, 2)

	account := definitions["Account"]
	assert.Equal(t, []string{"object"}, []string(account.Type))
	assert.Equal(t, "A billable account.", account.Description)
	assert.Equal(t, []string{"id"}, account.Required)

	owner := account.Properties["owner"]
	assert.True(t, owner.Nullable)
	assert.Contains(t, owner.Properties, "name")

	created := account.Properties["created"]
	assert.Equal(t, []string{"string"}, []string(created.Type))
	assert.Equal(t, "date-time", created.Format)

	person := definitions["Person"]
	assert.Equal(t, []string{"name"}, person.Required)
}

func TestResolveAll_Deterministic(t *testing.T) {
	reg := registry.NewService()
	for _, name := range []string{"Alpha", "Bravo", "Charlie", "Delta"} {
		require.NoError(t, reg.Register(domain.TypeDefinition{
			Name:   name,
			Kind:   domain.KindObject,
			Fields: []domain.FieldDescriptor{{Name: "value", Type: "int"}},
		}))
	}

	svc := New(reg)
	first, err := svc.ResolveAll()
	require.NoError(t, err)

	second, err := svc.ResolveAll()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveAll_ErrorSurfacesTypeName(t *testing.T) {
	reg := registry.NewService()
	require.NoError(t, reg.Register(domain.TypeDefinition{
		Name:   "Broken",
		Kind:   domain.KindObject,
		Fields: []domain.FieldDescriptor{{Name: "gadget", Type: "widget"}},
	}))

	_, err := New(reg).ResolveAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")

	var unsupported *domain.UnsupportedTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "widget", unsupported.Token)
}
