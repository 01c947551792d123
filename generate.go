package main

import (
	"os"
	"path/filepath"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/NickyBoy89/java2scala/render"
	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/NickyBoy89/java2scala/templates"
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// PackageObjectFile is the name of the file generated for every module
const PackageObjectFile = "package.scala"

// Generator writes the package object of every module of a model
type Generator struct {
	Model     *symbol.Model
	Assembler *render.Assembler
	Output    string
}

// NewGenerator wires a generator from the settings in config
func NewGenerator(config Config) (*Generator, error) {
	model, err := symbol.ParseModelFile(config.Model)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", config.Model)
	}

	fsys := templates.Builtin()
	if config.Templates != "" {
		fsys = os.DirFS(config.Templates)
	}
	store, err := templates.NewStore(fsys)
	if err != nil {
		return nil, err
	}

	assembler := render.NewAssembler(store, symbol.NewModelResolver(model))
	if config.Lang != "" {
		assembler.Lang = config.Lang
	}

	return &Generator{Model: model, Assembler: assembler, Output: config.Output}, nil
}

// FilePath is where the package object of module is written
func (g *Generator) FilePath(module *symbol.ModuleInfo) string {
	modulePackage, moduleName := render.ScalaPackage(module, g.Assembler.Language())
	segments := append(astutil.PackageSegments(modulePackage), moduleName, PackageObjectFile)
	return filepath.Join(append([]string{g.Output}, segments...)...)
}

// Module renders the package object of module. It returns an empty string
// for modules without types.
func (g *Generator) Module(module *symbol.ModuleInfo) (string, error) {
	types := g.Model.TypesInModule(module)
	if len(types) == 0 {
		return "", nil
	}
	return g.Assembler.Package(types)
}

// Run generates every module, or only the named ones when modules is not
// empty, and returns the paths of the written files
func (g *Generator) Run(modules []string) ([]string, error) {
	var written []string
	for _, module := range g.Model.Modules {
		if len(modules) > 0 && !slices.Contains(modules, module.Name) {
			continue
		}
		logger := log.WithField("module", module.Name)

		source, err := g.Module(module)
		if err != nil {
			logger.WithError(err).Error("Failed to render module")
			return written, errors.Wrapf(err, "module %s", module.Name)
		}
		if source == "" {
			logger.Warn("Module has no types, skipping")
			continue
		}

		path := g.FilePath(module)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, errors.Wrapf(err, "creating directory for %s", path)
		}
		if err := os.WriteFile(path, []byte(source), 0644); err != nil {
			return written, errors.Wrapf(err, "writing %s", path)
		}
		logger.WithField("path", path).Info("Wrote package object")
		written = append(written, path)
	}
	return written, nil
}
