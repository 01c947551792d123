package symbol

import (
	"io"
	"os"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// The on-disk form of a model. Types are written as Java signatures and
// documentation as raw Javadoc text.
type modelFile struct {
	Modules []moduleDecl `yaml:"modules"`
	Types   []typeDecl   `yaml:"types"`
}

type moduleDecl struct {
	Name         string `yaml:"name"`
	Package      string `yaml:"package"`
	GroupPackage string `yaml:"groupPackage"`
}

type typeDecl struct {
	Name                string       `yaml:"name"`
	Kind                string       `yaml:"kind"`
	Module              string       `yaml:"module"`
	TypeParams          []string     `yaml:"typeParams"`
	Concrete            *bool        `yaml:"concrete"`
	HasEmptyConstructor bool         `yaml:"hasEmptyConstructor"`
	Doc                 string       `yaml:"doc"`
	Imports             []string     `yaml:"imports"`
	Methods             []methodDecl `yaml:"methods"`
}

type methodDecl struct {
	Name           string      `yaml:"name"`
	Returns        string      `yaml:"returns"`
	ReturnNullable bool        `yaml:"returnNullable"`
	ReturnDoc      string      `yaml:"returnDoc"`
	TypeParams     []string    `yaml:"typeParams"`
	Static         bool        `yaml:"static"`
	Fluent         bool        `yaml:"fluent"`
	CacheReturn    bool        `yaml:"cacheReturn"`
	Default        bool        `yaml:"default"`
	Doc            string      `yaml:"doc"`
	Params         []paramDecl `yaml:"params"`
}

type paramDecl struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
	Doc      string `yaml:"doc"`
}

var declKinds = map[string]Kind{
	"api":        KindApiInterface,
	"dataObject": KindDataObject,
	"enum":       KindEnum,
}

// ParseModelFile reads a model from a YAML file
func ParseModelFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening model")
	}
	defer f.Close()
	return ParseModel(f)
}

// ParseModel decodes a YAML model and resolves every signature in it
func ParseModel(r io.Reader) (*Model, error) {
	var file modelFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding model")
	}

	modules := make(map[string]*ModuleInfo, len(file.Modules))
	moduleList := make([]*ModuleInfo, 0, len(file.Modules))
	for _, decl := range file.Modules {
		module := &ModuleInfo{Name: decl.Name, PackageName: decl.Package, GroupPackage: decl.GroupPackage}
		modules[decl.Name] = module
		moduleList = append(moduleList, module)
	}

	// Declare every type first so that signatures can refer to any of them
	types := make([]*ClassType, 0, len(file.Types))
	for _, decl := range file.Types {
		kind, ok := declKinds[decl.Kind]
		if !ok {
			return nil, errors.Newf("type %s: unknown declaration kind %q", decl.Name, decl.Kind)
		}
		module, ok := modules[decl.Module]
		if !ok {
			return nil, errors.Newf("type %s: unknown module %q", decl.Name, decl.Module)
		}
		params, err := parseTypeParams(decl.TypeParams)
		if err != nil {
			return nil, errors.Wrapf(err, "type %s", decl.Name)
		}
		t := New(kind, decl.Name)
		t.RawParams = TypeParamNames(params)
		types = append(types, &ClassType{
			Type:                t,
			Module:              module,
			TypeParams:          params,
			Concrete:            decl.Concrete == nil || *decl.Concrete,
			HasEmptyConstructor: decl.HasEmptyConstructor,
		})
	}
	model := NewModel(moduleList, types)

	for i, decl := range file.Types {
		if err := resolveType(model, types[i], decl); err != nil {
			return nil, errors.Wrapf(err, "type %s", decl.Name)
		}
	}

	log.WithFields(log.Fields{
		"modules": len(moduleList),
		"types":   len(types),
	}).Debug("Loaded model")

	return model, nil
}

func resolveType(model *Model, ct *ClassType, decl typeDecl) error {
	var err error
	if ct.Doc, err = parseOptionalDoc(decl.Doc); err != nil {
		return err
	}

	for _, imported := range decl.Imports {
		t, err := resolveSignature(model, imported, nil)
		if err != nil {
			return errors.Wrapf(err, "import %s", imported)
		}
		ct.ReferencedTypes = append(ct.ReferencedTypes, t)
	}

	for _, md := range decl.Methods {
		method, err := resolveMethod(model, ct, md)
		if err != nil {
			return errors.Wrapf(err, "method %s", md.Name)
		}
		ct.Methods = append(ct.Methods, method)
	}
	return nil
}

func resolveMethod(model *Model, ct *ClassType, decl methodDecl) (*MethodInfo, error) {
	method := &MethodInfo{
		Name:              decl.Name,
		ReturnDescription: decl.ReturnDoc,
		IsStatic:          decl.Static,
		IsFluent:          decl.Fluent,
		IsCacheReturn:     decl.CacheReturn,
		IsDefault:         decl.Default,
	}
	var err error
	if method.TypeParams, err = parseTypeParams(decl.TypeParams); err != nil {
		return nil, err
	}
	if method.Doc, err = parseOptionalDoc(decl.Doc); err != nil {
		return nil, err
	}

	// Static methods do not see the class type parameters
	scope := method.TypeParams
	if !decl.Static {
		scope = MergeTypeParams(ct.TypeParams, method.TypeParams)
	}
	vars := TypeParamNames(scope)

	returns := decl.Returns
	if returns == "" {
		returns = "void"
	}
	if method.ReturnType, err = resolveSignature(model, returns, vars); err != nil {
		return nil, errors.Wrap(err, "return type")
	}
	if decl.ReturnNullable {
		method.ReturnType = method.ReturnType.WithNullable(true)
	}

	for _, pd := range decl.Params {
		t, err := resolveSignature(model, pd.Type, vars)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", pd.Name)
		}
		if pd.Nullable {
			t = t.WithNullable(true)
		}
		method.Params = append(method.Params, &ParamInfo{Name: pd.Name, Type: t, Description: pd.Doc})
	}
	return method, nil
}

func parseOptionalDoc(text string) (*Doc, error) {
	if text == "" {
		return nil, nil
	}
	doc, err := ParseDoc(text)
	if err != nil {
		return nil, errors.Wrap(err, "documentation")
	}
	return doc, nil
}

// resolveSignature parses a Java signature and classifies every node of it.
// vars are the type variables in scope.
func resolveSignature(model *Model, sig string, vars []string) (*TypeInfo, error) {
	node, err := astutil.ParseTypeSignature(sig)
	if err != nil {
		return nil, err
	}
	t, err := classify(model, node, vars)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func classify(model *Model, node *astutil.TypeNode, vars []string) (*TypeInfo, error) {
	var t *TypeInfo
	switch {
	case node.Wildcard && node.Name == "?":
		t = New(KindObject, "java.lang.Object")
	case isVariable(node.Name, vars):
		t = New(KindObject, node.Name)
		t.Variable = true
	default:
		if ct := model.FindType(node.Name); ct != nil {
			t = ct.Type.Raw()
			t.RawParams = ct.Type.RawParams
		} else if t = LookupKnown(node.Name); t == nil {
			return nil, errors.Newf("unresolved type %s", node.Name)
		}
	}

	for _, arg := range node.Args {
		child, err := classify(model, arg, vars)
		if err != nil {
			return nil, err
		}
		t.Args = append(t.Args, child)
	}
	// Raw usages of generic types stay parameterized with no arguments
	t.Parameterized = len(t.Args) > 0 || len(t.RawParams) > 0
	t.Nullable = node.Nullable
	return t, nil
}

func isVariable(name string, vars []string) bool {
	for _, v := range vars {
		if v == name {
			return true
		}
	}
	return false
}
