package symbol

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/cockroachdb/errors"
)

// Kind classifies a single occurrence of a type. The set of kinds is closed:
// every switch over Kind in this module names each kind explicitly and treats
// anything else as an unmapped kind.
type Kind int

const (
	// KindInvalid is the zero value and never produced by the loader
	KindInvalid Kind = iota
	KindBasic
	KindObject
	KindThrowable
	KindVoid
	KindEnum
	KindJsonObject
	KindJsonArray
	KindList
	KindSet
	KindMap
	KindFunction
	KindHandler
	KindAsyncResult
	KindClassReference
	KindDataObject
	KindApiInterface
	KindOther
)

var kindNames = [...]string{
	KindInvalid:        "INVALID",
	KindBasic:          "BASIC",
	KindObject:         "OBJECT",
	KindThrowable:      "THROWABLE",
	KindVoid:           "VOID",
	KindEnum:           "ENUM",
	KindJsonObject:     "JSON_OBJECT",
	KindJsonArray:      "JSON_ARRAY",
	KindList:           "LIST",
	KindSet:            "SET",
	KindMap:            "MAP",
	KindFunction:       "FUNCTION",
	KindHandler:        "HANDLER",
	KindAsyncResult:    "ASYNC_RESULT",
	KindClassReference: "CLASS_TYPE",
	KindDataObject:     "DATA_OBJECT",
	KindApiInterface:   "API",
	KindOther:          "OTHER",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsCollection reports whether the kind is one of the java.util collections
func (k Kind) IsCollection() bool {
	return k == KindList || k == KindSet || k == KindMap
}

// Kinds lists every valid kind, in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindBasic; k <= KindOther; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Well-known names that select special renderings regardless of kind
const (
	VoidClassName   = "java.lang.Void"
	BufferClassName = "io.vertx.core.buffer.Buffer"
	InstantName     = "java.time.Instant"
	HandlerName     = "io.vertx.core.Handler"
	FutureName      = "io.vertx.core.Future"
)

// TypeInfo describes one occurrence of a type at one position in the model.
// Values are built once by the loader and only read afterwards.
type TypeInfo struct {
	Kind Kind
	// Name is the qualified name, e.g. "io.vertx.core.Future<T>" or "int"
	Name string
	// SimpleName is the display name without the package
	SimpleName string
	// Nullable is independent of Kind
	Nullable bool
	// Variable marks a free type variable such as T
	Variable bool
	// Parameterized is set when the occurrence is written with type arguments.
	// It stays true for raw usages of generic API types, where Args is empty.
	Parameterized bool
	Args          []*TypeInfo
	// DataObject marks a plain record type round-tripping through JsonObject
	DataObject bool
	// Package is the package of the raw type; derived from Name when empty
	Package string
	// RawParams are the type parameters declared on the raw type
	RawParams []string
}

// New creates a non-nullable descriptor. SimpleName is derived from name and
// the occurrence is marked parameterized when args are given.
func New(kind Kind, name string, args ...*TypeInfo) *TypeInfo {
	return &TypeInfo{
		Kind:          kind,
		Name:          name,
		SimpleName:    astutil.SimpleName(name),
		Parameterized: len(args) > 0,
		Args:          args,
		DataObject:    kind == KindDataObject,
	}
}

// WithNullable returns a copy of t with the nullable flag set to nullable
func (t *TypeInfo) WithNullable(nullable bool) *TypeInfo {
	cp := *t
	cp.Nullable = nullable
	return &cp
}

// Arg returns the i'th type argument, or nil when absent
func (t *TypeInfo) Arg(i int) *TypeInfo {
	if t == nil || i < 0 || i >= len(t.Args) {
		return nil
	}
	return t.Args[i]
}

// IsParameterized reports whether the occurrence carries an argument list
func (t *TypeInfo) IsParameterized() bool {
	return t.Parameterized || len(t.Args) > 0
}

// IsVoid matches the void kind as well as the boxed and primitive spellings
func (t *TypeInfo) IsVoid() bool {
	return t.Kind == KindVoid || t.Name == VoidClassName || t.Name == "void"
}

// IsBuffer matches the distinguished Vert.x buffer type
func (t *TypeInfo) IsBuffer() bool {
	return astutil.NonGenericType(t.Name) == BufferClassName
}

// IsInstant matches the distinguished timestamp type
func (t *TypeInfo) IsInstant() bool {
	return t.Kind == KindOther && t.Name == InstantName
}

// RawName is the qualified name stripped of generic arguments
func (t *TypeInfo) RawName() string {
	return astutil.NonGenericType(t.Name)
}

// PackageName returns the package of the raw type
func (t *TypeInfo) PackageName() string {
	if t.Package != "" {
		return t.Package
	}
	return astutil.PackageName(t.RawName())
}

// Raw returns the unparameterized form of t
func (t *TypeInfo) Raw() *TypeInfo {
	cp := *t
	cp.Name = t.RawName()
	cp.SimpleName = astutil.NonGenericType(t.SimpleName)
	cp.Args = nil
	cp.Parameterized = false
	cp.Nullable = false
	return &cp
}

// String renders the Java spelling of the occurrence,
// e.g. io.vertx.core.Handler<io.vertx.core.AsyncResult<java.lang.String>>
func (t *TypeInfo) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return t.RawName() + "<" + strings.Join(args, ",") + ">"
}

// Validate checks the argument-count invariants of parameterized kinds
func (t *TypeInfo) Validate() error {
	n := len(t.Args)
	switch t.Kind {
	case KindMap, KindFunction:
		if n != 0 && n != 2 {
			return errors.Newf("%v %s must have 0 or 2 type arguments, got %d", t.Kind, t.Name, n)
		}
	case KindList, KindSet, KindHandler, KindAsyncResult:
		if n > 1 {
			return errors.Newf("%v %s must have 0 or 1 type arguments, got %d", t.Kind, t.Name, n)
		}
	case KindVoid:
		if t.Nullable {
			return errors.Newf("void type %s cannot be nullable", t.Name)
		}
	}
	for _, arg := range t.Args {
		if err := arg.Validate(); err != nil {
			return err
		}
	}
	return nil
}
