package render

import (
	"strings"

	"github.com/NickyBoy89/java2scala/classify"
	"github.com/NickyBoy89/java2scala/docs"
	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/NickyBoy89/java2scala/templates"
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultLang is the language name inserted into translated package names
const DefaultLang = "scala"

// Part addresses one type's contribution to a package object that is
// written incrementally, one type at a time
type Part struct {
	Index int
	Size  int
	// Imports is the import set written by the first part. When nil the
	// first part imports what its own type needs; set it to the MergeImports
	// of every type of the package object when the parts are rendered apart.
	Imports []string
}

// Validate checks that the part lies within its package object
func (p Part) Validate() error {
	if p.Size < 1 {
		return errors.Newf("invalid part size %d", p.Size)
	}
	if p.Index < 0 || p.Index >= p.Size {
		return errors.Newf("part index %d out of range [0, %d)", p.Index, p.Size)
	}
	return nil
}

// First reports whether the part opens the package object
func (p Part) First() bool {
	return p.Index == 0
}

// Last reports whether the part closes the package object
func (p Part) Last() bool {
	return p.Index == p.Size-1
}

// Assembler renders the package object parts of API types
type Assembler struct {
	Templates templates.Lookup
	// Resolver is used for documentation links, may be nil
	Resolver symbol.Resolver
	// Lang is the language name of translated packages, DefaultLang if empty
	Lang string
}

// NewAssembler creates an assembler for the default language
func NewAssembler(lookup templates.Lookup, resolver symbol.Resolver) *Assembler {
	return &Assembler{Templates: lookup, Resolver: resolver, Lang: DefaultLang}
}

// Language returns the language name of translated packages
func (a *Assembler) Language() string {
	if a.Lang == "" {
		return DefaultLang
	}
	return a.Lang
}

func (a *Assembler) docs() *docs.Rewriter {
	return docs.NewRewriter(a.Resolver)
}

// fragment appends a template followed by a newline
func (a *Assembler) fragment(out *strings.Builder, name string) error {
	text, err := a.Templates.Fragment(name)
	if err != nil {
		return err
	}
	out.WriteString(text)
	out.WriteString("\n")
	return nil
}

// ScalaPackage splits the translated package of a module into the package
// the package object lives in and the name of the package object:
// io.vertx.core -> io.vertx.scala, core
func ScalaPackage(module *symbol.ModuleInfo, lang string) (string, string) {
	translated := module.TranslatePackageName(lang)
	idx := strings.LastIndexByte(translated, '.')
	if idx < 0 {
		return "", translated
	}
	return translated[:idx], translated[idx+1:]
}

// Imports every package object part starts with
var fixedImports = []string{
	"scala.jdk.CollectionConverters._",
	"io.vertx.core.json.JsonObject",
	"io.vertx.core.json.JsonArray",
	"io.vertx.core.AsyncResult",
	"io.vertx.core.Handler",
	"scala.concurrent.Promise",
}

func (a *Assembler) header(ct *symbol.ClassType, imports []string) (string, error) {
	modulePackage, moduleName := ScalaPackage(ct.Module, a.Language())

	var out strings.Builder
	if err := a.fragment(&out, templates.LicenseHeader); err != nil {
		return "", err
	}
	out.WriteString("\n")
	out.WriteString("package " + modulePackage + "\n")
	out.WriteString("\n")
	for _, imp := range fixedImports {
		out.WriteString("import " + imp + "\n")
	}
	if ct.Name() == "io.vertx.core.Vertx" {
		out.WriteString("import io.vertx.lang.scala.ScalaVerticle\n")
	}
	out.WriteString("\n")

	for i, imp := range imports {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString("import " + imp)
	}
	out.WriteString("\n")
	out.WriteString("package object " + moduleName + "{\n")
	out.WriteString("\n")
	if moduleName == "core" {
		if err := a.fragment(&out, templates.Json); err != nil {
			return "", err
		}
	}
	out.WriteString("\n")
	return out.String(), nil
}

// body picks the rendering of ct: the data object companion, the implicit
// class for types with future variants, or a companion object with the
// static forwarders
func (a *Assembler) body(ct *symbol.ClassType) (string, error) {
	if ct.Type.DataObject {
		return DataObject(ct) + "\n", nil
	}

	instance := ct.InstanceMethods()
	future := classify.Future(instance)
	static := classify.Static(ct.Methods)
	handler := strings.Contains(ct.Name(), "Handler")

	switch {
	case !handler && len(future) > 0:
		class, err := a.Class(ct, classify.Nullable(instance), future)
		if err != nil {
			return "", err
		}
		return class + "\n", nil
	case !handler && len(static) > 0 && ct.SimpleName() != "Message":
		return StaticObject(ct, static)
	}
	return "", nil
}

// PackageObject renders the part of the package object of ct's module that
// belongs to ct. The first part opens the package object and the last one
// closes it, so concatenating the parts of a module in order yields a
// complete file.
func (a *Assembler) PackageObject(ct *symbol.ClassType, part Part) (string, error) {
	if err := part.Validate(); err != nil {
		return "", errors.Wrapf(err, "rendering %s", ct.Name())
	}
	if ct.Module == nil {
		return "", errors.Newf("type %s belongs to no module", ct.Name())
	}

	logger := log.WithFields(log.Fields{
		"type":  ct.Name(),
		"index": part.Index,
		"size":  part.Size,
	})
	logger.Debug("Rendering package object part")

	var out strings.Builder
	if part.First() {
		imports := part.Imports
		if imports == nil {
			imports = Imports(ct)
		}
		header, err := a.header(ct, imports)
		if err != nil {
			return "", errors.Wrapf(err, "rendering header for %s", ct.Name())
		}
		out.WriteString(header)
	}

	body, err := a.body(ct)
	if err != nil {
		return "", err
	}
	out.WriteString(body)
	out.WriteString("\n")

	if ct.SimpleName() == "Message" {
		text, err := a.Templates.Fragment(templates.Message)
		if err != nil {
			return "", errors.Wrapf(err, "rendering %s", ct.Name())
		}
		out.WriteString(text)
	}
	out.WriteString("\n")

	if part.Last() {
		out.WriteString("}\n")
	}
	return out.String(), nil
}

// Package renders the complete package object made of the parts of cts, in
// order. The header imports what any of the types needs.
func (a *Assembler) Package(cts []*symbol.ClassType) (string, error) {
	if len(cts) == 0 {
		return "", errors.New("package object without types")
	}
	for _, ct := range cts {
		if ct.Module != cts[0].Module {
			return "", errors.Newf("type %s is not part of the module of %s", ct.Name(), cts[0].Name())
		}
	}

	var out strings.Builder
	for i, ct := range cts {
		part := Part{Index: i, Size: len(cts)}
		if part.First() {
			part.Imports = MergeImports(cts)
		}
		rendered, err := a.PackageObject(ct, part)
		if err != nil {
			return "", err
		}
		out.WriteString(rendered)
	}
	return out.String(), nil
}
