package docs

import (
	"strings"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/cockroachdb/errors"
)

const linkOpen = "{@link"

// ConvertLinks rewrites every {@link X} in free text, such as a @param
// description, into the Scaladoc name of X
func ConvertLinks(text string) (string, error) {
	var converted strings.Builder

	start := 0
	for {
		index := strings.Index(text[start:], linkOpen)
		if index < 0 {
			break
		}
		index += start
		end := strings.IndexByte(text[index:], '}')
		if end < 0 {
			return "", errors.Wrapf(symbol.ErrUnterminatedTag, "at offset %d: %q", index, text[index:])
		}
		end += index
		converted.WriteString(text[start:index])
		converted.WriteString(ScalaDocType(strings.TrimSpace(text[index+len(linkOpen) : end])))
		start = end + 1
	}
	converted.WriteString(text[start:])

	return converted.String(), nil
}

// scalaDocNames maps Java names, simple or qualified, to their Scaladoc names
var scalaDocNames = map[string]string{
	"void":                "Unit",
	"java.lang.Void":      "Unit",
	"Object":              "AnyRef",
	"java.lang.Object":    "AnyRef",
	"Throwable":           "Throwable",
	"java.lang.Throwable": "Throwable",
	"String":              "String",
	"java.lang.String":    "String",
	"byte":                "Byte",
	"java.lang.Byte":      "Byte",
	"short":               "Short",
	"java.lang.Short":     "Short",
	"int":                 "Int",
	"java.lang.Integer":   "Int",
	"long":                "Long",
	"java.lang.Long":      "Long",
	"float":               "Float",
	"java.lang.Float":     "Float",
	"double":              "Double",
	"java.lang.Double":    "Double",
	"boolean":             "Boolean",
	"java.lang.Boolean":   "Boolean",
	"char":                "Char",
	"java.lang.Character": "Char",
	"List":                "scala.collection.immutable.List",
	"java.util.List":      "scala.collection.immutable.List",
	"Set":                 "scala.collection.immutable.Set",
	"java.util.Set":       "scala.collection.immutable.Set",
	"Map":                 "scala.collection.immutable.Map",
	"java.util.Map":       "scala.collection.immutable.Map",
	"Handler":             "scala-function",
	symbol.HandlerName:    "scala-function",
}

// ScalaDocType returns the Scaladoc name of a Java type reference. Vert.x
// types move to their io.vertx.scala counterpart, except exceptions.
func ScalaDocType(name string) string {
	if strings.Contains(name, "AsyncResult") {
		return "io.vertx.lang.scala.AsyncResult"
	}
	if scala, ok := scalaDocNames[name]; ok {
		return scala
	}
	if strings.Contains(name, "io.vertx") && !strings.HasSuffix(name, "Exception") {
		return strings.ReplaceAll(astutil.ScalaNotation(name), "io.vertx.", "io.vertx.scala.")
	}
	return name
}

// DataObjectLink links to the cheatsheet page of a data object, relative to
// the generated page of from
func DataObjectLink(from *symbol.TypeInfo, dataObject *symbol.TypeInfo) string {
	var href strings.Builder
	for range astutil.PackageSegments(from.PackageName()) {
		href.WriteString("../")
	}
	href.WriteString("../../../cheatsheet/" + dataObject.SimpleName + ".html")
	return `<a href="` + href.String() + `">` + dataObject.SimpleName + "</a>"
}

// Link renders a resolved {@link} tag found in the documentation of ct.
// It reports false when the target is unknown or outside every module, in
// which case the caller falls back to the label.
func (r *Rewriter) Link(ct *symbol.ClassType, tag *symbol.Tag) (string, bool) {
	if r.Resolver == nil {
		return "", false
	}
	elt, ok := r.Resolver.Resolve(ct.Type, tag.Target)
	if !ok || !elt.InModule {
		return "", false
	}
	raw := elt.Type

	switch {
	case raw.Kind == symbol.KindEnum:
		return "[[" + astutil.ScalaNotation(raw.Name) + "]]", true
	case raw.DataObject:
		return DataObjectLink(ct.Type, raw), true
	case ct.Type.Kind == symbol.KindApiInterface && ct.Name() != symbol.HandlerName:
		switch {
		case elt.SimpleName == "Verticle":
			return "[[io.vertx.lang.scala.ScalaVerticle]]", true
		case elt.SimpleName == "Handler":
			if elt.AsyncResultHandler() {
				return "[[scala.concurrent.Future]]", true
			}
			return "scala-function", true
		}
		ref := "[[" + raw.String()
		if elt.Kind == symbol.ElementMethod {
			ref += "#" + elt.SimpleName
			if elt.SimpleName != "executeBlocking" && elt.ParamCount > 0 && elt.LastParamAsyncResultHandler {
				ref += "Future"
			}
		}
		return ref + "]]", true
	}
	return "[[" + ScalaDocType(raw.Name) + "]]", true
}

// fallbackLabel is used when a link cannot be rendered: the label, or else
// the simple name of the target
func fallbackLabel(tag *symbol.Tag) string {
	if label := strings.TrimSpace(tag.Label); label != "" {
		return label
	}
	ref := symbol.ParseLinkTarget(tag.Target)
	if ref.Member != "" {
		return ref.Member
	}
	return astutil.SimpleName(ref.Type)
}
