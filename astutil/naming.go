package astutil

import "strings"

// NonGenericType strips the type arguments from a type name:
// io.vertx.core.Future<T> -> io.vertx.core.Future
func NonGenericType(name string) string {
	if idx := strings.IndexByte(name, '<'); idx >= 0 {
		return name[:idx]
	}
	return name
}

// PackageName returns everything before the last dot of the raw name, or the
// empty string for unqualified names
func PackageName(name string) string {
	raw := NonGenericType(name)
	if idx := strings.LastIndexByte(raw, '.'); idx >= 0 {
		return raw[:idx]
	}
	return ""
}

// SimpleName drops the package of a qualified name, keeping any type arguments
// as written: io.vertx.core.Future<T> -> Future<T>
func SimpleName(name string) string {
	raw := NonGenericType(name)
	return raw[strings.LastIndexByte(raw, '.')+1:] + name[len(raw):]
}

// PackageSegments splits a package name into its dot-separated parts
func PackageSegments(pkg string) []string {
	if pkg == "" {
		return nil
	}
	return strings.Split(pkg, ".")
}

// ScalaNotation converts Java generic brackets to Scala ones
func ScalaNotation(name string) string {
	return strings.NewReplacer("<", "[", ">", "]").Replace(name)
}

// EscapeIfKeyword quotes identifiers that are reserved in Scala
func EscapeIfKeyword(name string) string {
	if name == "type" || name == "object" {
		return "`" + name + "`"
	}
	return name
}

// FutureMethodName derives the name of the Future returning variant of a
// callback method: listenHandler -> listenFuture, close -> closeFuture
func FutureMethodName(name string) string {
	return EscapeIfKeyword(strings.TrimSuffix(name, "Handler") + "Future")
}
