// Package conversion generates the Scala expressions that adapt values
// between the idiomatic Scala representation and the one the wrapped Java API
// expects.
package conversion

import (
	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/NickyBoy89/java2scala/typemap"
)

const orNull = ".getOrElse(null)"

// ToJava returns the expression converting the Scala value named name, typed
// as typemap.Translate(t, Declaration), into the value the Java call expects
func ToJava(name string, t *symbol.TypeInfo) (string, error) {
	nullable := t.Nullable

	switch {
	case t.IsVoid():
		return name, nil
	case t.DataObject, t.IsBuffer():
		return unwrap(name, nullable), nil
	}

	switch t.Kind {
	case symbol.KindBasic, symbol.KindThrowable, symbol.KindObject,
		symbol.KindJsonObject, symbol.KindJsonArray, symbol.KindEnum,
		symbol.KindDataObject, symbol.KindApiInterface:
		return unwrap(name, nullable), nil
	case symbol.KindVoid:
		return name, nil
	case symbol.KindClassReference:
		if nullable {
			return name + ".map(x => x).orNull", nil
		}
		return name, nil
	case symbol.KindHandler:
		return name + ".asInstanceOf[" + astutil.ScalaNotation(t.String()) + "]", nil
	case symbol.KindAsyncResult:
		// A nullable result is only unwrapped and never wrapped for Java
		if nullable {
			return unwrap(name, true), nil
		}
		return asyncResultWrapper(argOrObject(t, 0))
	case symbol.KindList, symbol.KindSet, symbol.KindMap:
		return collection(name, t), nil
	case symbol.KindFunction:
		return function(name, t)
	case symbol.KindOther:
		if t.IsInstant() {
			return name + ".asInstanceOf[" + symbol.InstantName + "]", nil
		}
	}
	return "", typemap.Unmapped("ToJava", t)
}

// ToScala returns the expression reading a Java value out of the interop
// layer. Only collections need an adapter; everything else is used as is.
func ToScala(name string, t *symbol.TypeInfo) string {
	if t.Kind.IsCollection() {
		return name + ".asScala"
	}
	return name
}

func unwrap(name string, nullable bool) string {
	if nullable {
		return name + orNull
	}
	return name
}

func asyncResultWrapper(result *symbol.TypeInfo) (string, error) {
	scalaType, err := typemap.Translate(result, typemap.Declaration)
	if err != nil {
		return "", err
	}
	javaType, err := typemap.JavaType(result)
	if err != nil {
		return "", err
	}
	converted, err := ToJava("a", result)
	if err != nil {
		return "", err
	}
	return "AsyncResultWrapper[" + scalaType + ", " + javaType + "](x, a => " + converted + ")", nil
}

func collection(name string, t *symbol.TypeInfo) string {
	converted := name
	if t.Nullable {
		converted = "res"
	}

	elem := t.Arg(0)
	if t.Kind == symbol.KindMap {
		elem = t.Arg(1)
	}
	if elem != nil && elem.Nullable {
		converted += orNull
	}

	if t.Nullable {
		return name + ".flatMap(res => Some(" + converted + ")).orNull"
	}
	return converted
}

func function(name string, t *symbol.TypeInfo) (string, error) {
	domain, codomain := argOrObject(t, 0), argOrObject(t, 1)

	executed := name + "(x)"
	if domain.IsVoid() {
		executed = name + "()"
	}
	executed, err := ToJava(executed, codomain)
	if err != nil {
		return "", err
	}
	javaDomain, err := typemap.JavaType(domain)
	if err != nil {
		return "", err
	}

	closure := "{x: " + javaDomain + " => " + executed + "}"
	if t.Nullable {
		return name + ".map(" + name + " => " + closure + ").orNull", nil
	}
	return closure, nil
}

var objectType = symbol.New(symbol.KindObject, "java.lang.Object")

func argOrObject(t *symbol.TypeInfo, i int) *symbol.TypeInfo {
	if arg := t.Arg(i); arg != nil {
		return arg
	}
	return objectType
}
