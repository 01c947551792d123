package render

import (
	"strings"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/NickyBoy89/java2scala/templates"
	log "github.com/sirupsen/logrus"
)

// DataObject renders the type alias and companion object of a data object.
// Abstract data objects render nothing.
func DataObject(ct *symbol.ClassType) string {
	if !ct.Concrete {
		return ""
	}
	simple := astutil.NonGenericType(ct.SimpleName())

	var out strings.Builder
	out.WriteString("  type " + simple + " = " + ct.Type.RawName() + "\n")
	out.WriteString("  object " + simple + " {\n")
	if ct.HasEmptyConstructor {
		out.WriteString("    def apply() = new " + simple + "()\n")
	}
	out.WriteString("    def apply(json: JsonObject) = new " + simple + "(json)\n")
	out.WriteString("  }\n")
	return out.String()
}

// Types that get their executeBlocking from a template instead
var blockingExecutors = []string{"Vertx", "Context", "WorkerExecutor"}

// Class renders the implicit class adding the Option and Future variants of
// nullable and future to ct
func (a *Assembler) Class(ct *symbol.ClassType, nullable, future []*symbol.MethodInfo) (string, error) {
	className := astutil.NonGenericType(ct.SimpleName())

	var nullableRendered []string
	if className != "CompositeFuture" && className != "Future" {
		for _, method := range nullable {
			if method.Name == "executeBlocking" {
				continue
			}
			rendered, err := NullableMethod(ct, method)
			if err != nil {
				return "", err
			}
			nullableRendered = append(nullableRendered, rendered)
		}
	}

	var futureRendered []string
	for _, method := range future {
		if method.Name == "executeBlocking" {
			log.WithFields(log.Fields{
				"type":   ct.Name(),
				"method": method.Name,
			}).Debug("Skipping future variant provided by template")
			continue
		}
		rendered, err := FutureMethod(ct, method)
		if err != nil {
			return "", err
		}
		futureRendered = append(futureRendered, rendered)
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(a.docs().ClassDoc(ct))
	out.WriteString("\n")

	if className == "Vertx" {
		if err := a.fragment(&out, templates.VertxObject); err != nil {
			return "", err
		}
	}

	params := typeParams(ct.TypeParams)
	out.WriteString("  implicit class " + className + "Scala" + params + "(val asJava: " + ct.Type.RawName() + params + ") extends AnyVal {\n")

	if className == "Vertx" {
		if err := a.fragment(&out, templates.Vertx); err != nil {
			return "", err
		}
	}
	for _, executor := range blockingExecutors {
		if className == executor {
			if err := a.fragment(&out, templates.ExecuteBlocking); err != nil {
				return "", err
			}
		}
	}

	out.WriteString("\n")
	out.WriteString(strings.Join(nullableRendered, "\n"))
	out.WriteString("\n")
	out.WriteString(strings.Join(futureRendered, "\n"))
	out.WriteString("\n  }\n")
	return out.String(), nil
}

// StaticObject renders the companion object forwarding the static methods
func StaticObject(ct *symbol.ClassType, static []*symbol.MethodInfo) (string, error) {
	rendered := make([]string, len(static))
	for i, method := range static {
		var err error
		if rendered[i], err = StaticMethod(ct, method); err != nil {
			return "", err
		}
	}
	return "  object " + astutil.NonGenericType(ct.SimpleName()) + " {\n" +
		strings.Join(rendered, "\n") + "\n" +
		"  }\n", nil
}
