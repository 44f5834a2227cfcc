package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDefs = `
types:
  - name: Account
    description: A billable account.
    fields:
      - name: id
        type: int
        required: "true"
      - name: name
        type: "?string"
      - name: created
        type: DateTime
`

func writeTestDefs(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefs), 0o600))
	return path
}

func TestBuild_WritesJSONAndYAML(t *testing.T) {
	outputDir := t.TempDir()

	err := New().Build(&Config{
		DefinitionsFile: writeTestDefs(t),
		OutputDir:       outputDir,
		OutputTypes:     []string{"json", "yaml"},
		Title:           "billing api",
	})
	require.NoError(t, err)

	jsonBytes, err := os.ReadFile(filepath.Join(outputDir, "definitions.json"))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &doc))

	assert.Equal(t, "2.0", doc["swagger"])

	info := doc["info"].(map[string]interface{})
	assert.Equal(t, "Billing Api", info["title"])

	definitions := doc["definitions"].(map[string]interface{})
	require.Contains(t, definitions, "Account")

	account := definitions["Account"].(map[string]interface{})
	assert.Equal(t, "object", account["type"])
	assert.Equal(t, "A billable account.", account["description"])
	assert.Equal(t, []interface{}{"id"}, account["required"])

	properties := account["properties"].(map[string]interface{})
	name := properties["name"].(map[string]interface{})
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, true, name["nullable"])

	created := properties["created"].(map[string]interface{})
	assert.Equal(t, "date-time", created["format"])

	yamlBytes, err := os.ReadFile(filepath.Join(outputDir, "definitions.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(yamlBytes), "Account:")
}

func TestBuild_UnsupportedOutputType(t *testing.T) {
	err := New().Build(&Config{
		DefinitionsFile: writeTestDefs(t),
		OutputDir:       t.TempDir(),
		OutputTypes:     []string{"toml"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestBuild_RequiresSource(t *testing.T) {
	err := New().Build(&Config{
		OutputDir:   t.TempDir(),
		OutputTypes: []string{"json"},
	})
	require.Error(t, err)
}

func TestBuild_UnresolvableTypeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.yaml")
	defs := "types:\n  - name: Broken\n    fields:\n      - name: gadget\n        type: widget\n"
	require.NoError(t, os.WriteFile(path, []byte(defs), 0o600))

	err := New().Build(&Config{
		DefinitionsFile: path,
		OutputDir:       t.TempDir(),
		OutputTypes:     []string{"json"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}
