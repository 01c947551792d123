// Package typemap renders Java type descriptors as Scala type expressions.
//
// A type is rendered differently depending on where it is used. Declarations
// get the idiomatic Scala rendering (native scalars, mutable Scala
// collections, Option for nullable values). Return and parameter positions
// target the interop layer and must match the wrapped Java call exactly, so
// they use boxed scalars and never wrap in Option.
package typemap

import (
	"strings"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/NickyBoy89/java2scala/symbol"
)

// Usage is the syntactic position a type is rendered for
type Usage int

const (
	Declaration Usage = iota
	Return
	Parameter
)

func (u Usage) String() string {
	switch u {
	case Declaration:
		return "Declaration"
	case Return:
		return "Return"
	case Parameter:
		return "Parameter"
	}
	return "Usage(?)"
}

// Usages lists every usage
var Usages = []Usage{Declaration, Return, Parameter}

const (
	unitType   = "Unit"
	anyRefType = "AnyRef"
	unknownArg = "[_]"
)

// Translate renders t for the given usage. Nullable types are wrapped in
// scala.Option only for declarations, and only for kinds that can be absent
// at the Scala level.
func Translate(t *symbol.TypeInfo, usage Usage) (string, error) {
	rendered, optional, err := translate(t, usage)
	if err != nil {
		return "", err
	}
	if usage == Declaration && optional && t.Nullable {
		return WrapInOption(rendered), nil
	}
	return rendered, nil
}

// WrapInOption wraps a rendered type in scala.Option
func WrapInOption(rendered string) string {
	return "scala.Option[" + rendered + "]"
}

// MustTranslate is like Translate but panics on unmapped types. It is meant
// for descriptors built in code, never for loaded models.
func MustTranslate(t *symbol.TypeInfo, usage Usage) string {
	rendered, err := Translate(t, usage)
	if err != nil {
		panic(err)
	}
	return rendered
}

// translate returns the rendering before nullability wrapping, and whether
// the rendering may be wrapped at all
func translate(t *symbol.TypeInfo, usage Usage) (string, bool, error) {
	op := "Translate(" + usage.String() + ")"

	// Name based rules take precedence over the kind
	switch {
	case t.IsVoid():
		return unitType, false, nil
	case t.DataObject:
		return t.RawName(), false, nil
	case t.IsBuffer():
		return t.RawName(), false, nil
	}

	switch t.Kind {
	case symbol.KindVoid:
		return unitType, false, nil
	case symbol.KindObject:
		switch {
		case usage == Declaration && strings.Contains(t.Name, "Object"):
			return anyRefType, true, nil
		case t.Variable, usage == Declaration:
			return t.Name, true, nil
		}
		return anyRefType, true, nil
	case symbol.KindThrowable:
		return "Throwable", true, nil
	case symbol.KindBasic:
		var rendered string
		var ok bool
		if usage == Declaration {
			rendered, ok = ScalarType(t.Name)
		} else {
			rendered, ok = BoxedType(t.Name)
		}
		if !ok {
			return "", false, Unmapped(op, t)
		}
		return rendered, true, nil
	case symbol.KindDataObject:
		return t.RawName(), false, nil
	case symbol.KindList, symbol.KindSet, symbol.KindMap:
		rendered, err := translateCollection(t, usage)
		return rendered, true, err
	case symbol.KindHandler:
		event, err := Translate(argOrObject(t, 0), usage)
		if err != nil {
			return "", false, err
		}
		if usage == Declaration {
			return "Handler[" + event + "]", true, nil
		}
		return event + " => Unit", true, nil
	case symbol.KindFunction:
		rendered, err := translateFunction(t, usage)
		return rendered, true, err
	case symbol.KindJsonObject, symbol.KindJsonArray, symbol.KindEnum:
		return t.Name, false, nil
	case symbol.KindAsyncResult:
		args, err := translateArgs(t, usage)
		if err != nil {
			return "", false, err
		}
		return "AsyncResult" + args, false, nil
	case symbol.KindApiInterface:
		name := t.RawName()
		if usage == Declaration {
			name = astutil.NonGenericType(t.SimpleName)
		}
		switch {
		case t.IsParameterized():
			args, err := translateArgs(t, usage)
			if err != nil {
				return "", false, err
			}
			name += args
		case usage == Declaration && strings.Contains(t.Name, symbol.FutureName):
			name += unknownArg
		}
		return name, true, nil
	case symbol.KindClassReference:
		args, err := translateArgs(t, usage)
		if err != nil {
			return "", false, err
		}
		return "Class" + args, false, nil
	case symbol.KindOther:
		if t.IsInstant() {
			return symbol.InstantName, false, nil
		}
		return "", false, Unmapped(op, t)
	}
	return "", false, Unmapped(op, t)
}

func translateCollection(t *symbol.TypeInfo, usage Usage) (string, error) {
	var base string
	switch {
	case t.Kind == symbol.KindList && usage == Parameter:
		base = "java.util.List"
	case t.Kind == symbol.KindList:
		base = "scala.collection.mutable.Buffer"
	case t.Kind == symbol.KindSet && usage == Parameter:
		base = "java.util.Set"
	case t.Kind == symbol.KindSet:
		base = "scala.collection.mutable.Set"
	case t.Kind == symbol.KindMap && usage == Parameter:
		base = "java.util.Map"
	default:
		base = "scala.collection.mutable.Map"
	}
	if len(t.Args) == 0 {
		return base, nil
	}

	if t.Kind != symbol.KindMap {
		elem, err := Translate(t.Args[0], usage)
		if err != nil {
			return "", err
		}
		return base + "[" + elem + "]", nil
	}

	// Only string keyed maps cross the interop boundary
	key := "String"
	if usage == Declaration {
		var err error
		if key, err = Translate(t.Args[0], usage); err != nil {
			return "", err
		}
	}
	value, err := Translate(t.Arg(1), usage)
	if err != nil {
		return "", err
	}
	return base + "[" + key + ", " + value + "]", nil
}

func translateFunction(t *symbol.TypeInfo, usage Usage) (string, error) {
	domain, codomain := argOrObject(t, 0), argOrObject(t, 1)
	result, err := Translate(codomain, usage)
	if err != nil {
		return "", err
	}
	if domain.IsVoid() {
		return "() => " + result, nil
	}
	arg, err := Translate(domain, usage)
	if err != nil {
		return "", err
	}
	return arg + " => " + result, nil
}

// translateArgs renders "[A, B]", or "[_]" when the occurrence has no arguments
func translateArgs(t *symbol.TypeInfo, usage Usage) (string, error) {
	if len(t.Args) == 0 {
		return unknownArg, nil
	}
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		rendered, err := Translate(arg, usage)
		if err != nil {
			return "", err
		}
		args[i] = rendered
	}
	return "[" + strings.Join(args, ", ") + "]", nil
}

var objectType = symbol.New(symbol.KindObject, "java.lang.Object")

// argOrObject returns the i'th argument, falling back to Object for raw usages
func argOrObject(t *symbol.TypeInfo, i int) *symbol.TypeInfo {
	if arg := t.Arg(i); arg != nil {
		return arg
	}
	return objectType
}
