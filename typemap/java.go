package typemap

import (
	"strings"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/NickyBoy89/java2scala/symbol"
)

// JavaType renders the Java side of the interop boundary in Scala notation:
// int becomes java.lang.Integer, List<String> becomes
// java.util.List[java.lang.String].
func JavaType(t *symbol.TypeInfo) (string, error) {
	const op = "JavaType"

	if t.Kind == symbol.KindBasic {
		if boxed, ok := BoxedType(t.Name); ok {
			return boxed, nil
		}
		return "", Unmapped(op, t)
	}
	if t.IsVoid() || t.IsBuffer() {
		return t.SimpleName, nil
	}

	switch t.Kind {
	case symbol.KindThrowable, symbol.KindJsonObject, symbol.KindJsonArray, symbol.KindEnum, symbol.KindObject:
		return t.SimpleName, nil
	case symbol.KindDataObject:
		return t.Name, nil
	case symbol.KindApiInterface:
		name := t.RawName()
		switch {
		case len(t.Args) > 0:
			args, err := javaArgs(t.Args)
			if err != nil {
				return "", err
			}
			name += args
		case len(t.RawParams) > 0:
			// Raw usages are closed over Object
			objects := make([]string, len(t.RawParams))
			for i := range objects {
				objects[i] = "Object"
			}
			name += "[" + strings.Join(objects, ", ") + "]"
		}
		return name, nil
	case symbol.KindClassReference:
		if len(t.Args) == 0 {
			return "Class" + unknownArg, nil
		}
		args, err := javaArgs(t.Args)
		return "Class" + args, err
	case symbol.KindHandler:
		event, err := JavaType(argOrObject(t, 0))
		return "Handler[" + event + "]", err
	case symbol.KindAsyncResult:
		result, err := JavaType(argOrObject(t, 0))
		return astutil.NonGenericType(t.SimpleName) + "[" + result + "]", err
	case symbol.KindList, symbol.KindSet:
		base := "java.util.List"
		if t.Kind == symbol.KindSet {
			base = "java.util.Set"
		}
		elem, err := JavaType(argOrObject(t, 0))
		return base + "[" + elem + "]", err
	case symbol.KindMap:
		value, err := JavaType(argOrObject(t, 1))
		return "java.util.Map[String, " + value + "]", err
	case symbol.KindFunction:
		args, err := javaArgs([]*symbol.TypeInfo{argOrObject(t, 0), argOrObject(t, 1)})
		return "java.util.function.Function" + args, err
	case symbol.KindOther:
		if t.IsInstant() {
			return symbol.InstantName, nil
		}
	case symbol.KindVoid, symbol.KindBasic:
		// handled above
	}
	return "", Unmapped(op, t)
}

// javaArgs renders a Java type argument list, e.g. [java.lang.String, T]
func javaArgs(args []*symbol.TypeInfo) (string, error) {
	rendered := make([]string, len(args))
	for i, arg := range args {
		var err error
		if rendered[i], err = JavaType(arg); err != nil {
			return "", err
		}
	}
	return "[" + strings.Join(rendered, ", ") + "]", nil
}
