package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/docblock/schemagen/internal/console"
	"github.com/docblock/schemagen/internal/gen"
)

const (
	defsFlag        = "defs"
	packagesFlag    = "packages"
	searchDirFlag   = "dir"
	outputFlag      = "output"
	outputTypesFlag = "outputTypes"
	titleFlag       = "title"
	versionFlag     = "docVersion"
	quietFlag       = "quiet"
	debugFlag       = "debug"
)

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.StringFlag{
		Name:    defsFlag,
		Aliases: []string{"f"},
		Usage:   "YAML or JSON file declaring the types to resolve",
	},
	&cli.StringFlag{
		Name:    packagesFlag,
		Aliases: []string{"p"},
		Usage:   "Go package patterns to derive types from, comma separated (e.g. ./...)",
	},
	&cli.StringFlag{
		Name:    searchDirFlag,
		Aliases: []string{"d"},
		Value:   "./",
		Usage:   "Directory the package patterns are resolved in",
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./docs",
		Usage:   "Output directory for all the generated files (definitions.json, definitions.yaml)",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json,yaml",
		Usage:   "Output types of generated files (definitions.json, definitions.yaml) like json,yaml",
	},
	&cli.StringFlag{
		Name:  titleFlag,
		Value: "",
		Usage: "Title for the generated document info block",
	},
	&cli.StringFlag{
		Name:  versionFlag,
		Value: "1.0.0",
		Usage: "Version for the generated document info block",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
}

func generateAction(ctx *cli.Context) error {
	if ctx.IsSet(debugFlag) {
		console.Logger.DebugLevel = 1
	}
	if ctx.Bool(quietFlag) {
		console.Logger.SetOutput(io.Discard)
	}

	outputTypes := strings.Split(ctx.String(outputTypesFlag), ",")
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}

	var packagePatterns []string
	if packages := ctx.String(packagesFlag); packages != "" {
		packagePatterns = strings.Split(packages, ",")
	}

	if ctx.String(defsFlag) == "" && len(packagePatterns) == 0 {
		return fmt.Errorf("either --%s or --%s must be given", defsFlag, packagesFlag)
	}

	return gen.New().Build(&gen.Config{
		DefinitionsFile: ctx.String(defsFlag),
		Packages:        packagePatterns,
		SearchDir:       ctx.String(searchDirFlag),
		OutputDir:       ctx.String(outputFlag),
		OutputTypes:     outputTypes,
		Title:           ctx.String(titleFlag),
		Version:         ctx.String(versionFlag),
	})
}

func main() {
	app := cli.NewApp()
	app.Usage = "Generate OpenAPI schema definitions from annotated type descriptions."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate schema definition documents",
			Action:  generateAction,
			Flags:   generateFlags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
