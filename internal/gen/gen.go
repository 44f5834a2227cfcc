// Package gen assembles resolved definitions into a swagger document and
// writes the output files.
package gen

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"

	"github.com/docblock/schemagen/internal/console"
	"github.com/docblock/schemagen/internal/loader"
	"github.com/docblock/schemagen/internal/orchestrator"
	"github.com/docblock/schemagen/internal/registry"
)

type genTypeWriter func(*Config, *spec.Swagger) error

// Gen generates definition documents from registered types.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"json": gen.writeJSONDefinitions,
		"yaml": gen.writeYAMLDefinitions,
		"yml":  gen.writeYAMLDefinitions,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	// DefinitionsFile is a YAML/JSON file declaring the types to resolve.
	DefinitionsFile string

	// SearchDir and Packages select Go sources to derive types from
	// instead of a definitions file.
	SearchDir string
	Packages  []string

	// OutputDir represents the output directory for the generated files.
	OutputDir string

	// OutputTypes define which files should be generated, e.g. json,yaml.
	OutputTypes []string

	// Title and Version fill the info block of the generated document.
	Title   string
	Version string
}

// Build loads the configured type definitions, resolves them, and writes
// the requested output files.
func (g *Gen) Build(config *Config) error {
	reg := registry.NewService()

	switch {
	case config.DefinitionsFile != "":
		if err := loader.LoadFile(config.DefinitionsFile, reg); err != nil {
			return err
		}
	case len(config.Packages) > 0:
		if err := loader.LoadGoPackages(config.Packages, config.SearchDir, reg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("no definitions file or package patterns given")
	}

	console.Logger.Debug("resolving %d registered types", len(reg.Names()))

	definitions, err := orchestrator.New(reg).ResolveAll()
	if err != nil {
		return err
	}

	swagger := g.buildDocument(config, definitions)

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return err
	}

	for _, outputType := range config.OutputTypes {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		typeWriter, ok := g.outputTypeMap[outputType]
		if !ok {
			return fmt.Errorf("output type '%s' not supported", outputType)
		}
		if err := typeWriter(config, swagger); err != nil {
			return err
		}
	}

	return nil
}

// buildDocument wraps the definitions in a swagger document shell.
func (g *Gen) buildDocument(config *Config, definitions spec.Definitions) *spec.Swagger {
	title := config.Title
	if title == "" {
		title = "Definitions"
	} else {
		title = cases.Title(language.English).String(strings.ToLower(title))
	}

	version := config.Version
	if version == "" {
		version = "1.0.0"
	}

	return &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:   title,
					Version: version,
				},
			},
			Definitions: definitions,
		},
	}
}

func (g *Gen) writeJSONDefinitions(config *Config, swagger *spec.Swagger) error {
	jsonFileName := path.Join(config.OutputDir, "definitions.json")

	b, err := g.jsonIndent(swagger)
	if err != nil {
		return err
	}

	if err := g.writeFile(b, jsonFileName); err != nil {
		return err
	}

	console.Logger.Debug("create definitions.json at %+v", jsonFileName)
	return nil
}

func (g *Gen) writeYAMLDefinitions(config *Config, swagger *spec.Swagger) error {
	yamlFileName := path.Join(config.OutputDir, "definitions.yaml")

	b, err := g.json(swagger)
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return fmt.Errorf("cannot convert json to yaml error: %w", err)
	}

	if err := g.writeFile(y, yamlFileName); err != nil {
		return err
	}

	console.Logger.Debug("create definitions.yaml at %+v", yamlFileName)
	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(b)
	return err
}
