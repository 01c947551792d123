package render

import (
	"strings"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/NickyBoy89/java2scala/symbol"
	"golang.org/x/exp/slices"
)

// AliasedImport imports a Java type under a J prefixed name so it can not
// collide with the generated Scala names: io.vertx.core.{Vertx => JVertx}
func AliasedImport(t *symbol.TypeInfo) string {
	simple := astutil.NonGenericType(t.SimpleName)
	return astutil.PackageName(t.RawName()) + ".{" + simple + " => J" + simple + "}"
}

// importsFor adds the imports needed to mention t from a file generated for
// package pkg
func importsFor(pkg string, t *symbol.TypeInfo, imports map[string]struct{}) {
	switch {
	case t.Kind == symbol.KindJsonObject, t.Kind == symbol.KindJsonArray, t.Kind == symbol.KindEnum, t.IsBuffer():
		imports[t.RawName()] = struct{}{}
	case t.Kind == symbol.KindApiInterface, t.DataObject:
		if t.PackageName() != pkg {
			imports[t.PackageName()] = struct{}{}
		}
		imports[AliasedImport(t)] = struct{}{}
	case t.Kind == symbol.KindHandler, t.Kind == symbol.KindAsyncResult:
		imports[t.RawName()] = struct{}{}
		for _, arg := range t.Args {
			importsFor(pkg, arg, imports)
		}
	}
}

// Imports returns the sorted import set of the package object part for ct.
// It covers the types referenced by the Java declaration, except
// implementation packages, and every method parameter.
func Imports(ct *symbol.ClassType) []string {
	imports := map[string]struct{}{}
	collectImports(ct, imports)
	return sortedImports(imports)
}

// MergeImports returns the sorted union of the import sets of cts, the
// header of a package object made of their parts
func MergeImports(cts []*symbol.ClassType) []string {
	imports := map[string]struct{}{}
	for _, ct := range cts {
		collectImports(ct, imports)
	}
	return sortedImports(imports)
}

func collectImports(ct *symbol.ClassType, imports map[string]struct{}) {
	pkg := ct.Type.PackageName()
	imports[AliasedImport(ct.Type)] = struct{}{}

	for _, referenced := range ct.ReferencedTypes {
		if strings.Contains(referenced.Name, ".impl.") {
			continue
		}
		importsFor(pkg, referenced, imports)
	}
	for _, method := range ct.Methods {
		for _, param := range method.Params {
			importsFor(pkg, param.Type, imports)
		}
	}
}

func sortedImports(imports map[string]struct{}) []string {
	sorted := make([]string, 0, len(imports))
	for imp := range imports {
		sorted = append(sorted, imp)
	}
	slices.Sort(sorted)
	return sorted
}
