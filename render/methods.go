// Package render emits the Scala source of the generated package objects
package render

import (
	"strings"

	"github.com/NickyBoy89/java2scala/astutil"
	"github.com/NickyBoy89/java2scala/classify"
	"github.com/NickyBoy89/java2scala/conversion"
	"github.com/NickyBoy89/java2scala/docs"
	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/NickyBoy89/java2scala/typemap"
	"github.com/cockroachdb/errors"
)

// Future variant comments never contain links, so no resolver is needed
var futureDocs = &docs.Rewriter{}

// typeParams renders "[A, B]", or nothing when there are no parameters
func typeParams(params []symbol.TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	return "[" + strings.Join(symbol.TypeParamNames(params), ", ") + "]"
}

// paramList renders the parameter declarations of a generated method
func paramList(params []*symbol.ParamInfo) (string, error) {
	declared := make([]string, len(params))
	for i, param := range params {
		rendered, err := typemap.Translate(param.Type, typemap.Parameter)
		if err != nil {
			return "", errors.Wrapf(err, "parameter %s", param.Name)
		}
		if param.Type.Nullable {
			rendered = typemap.WrapInOption(rendered)
		}
		declared[i] = astutil.EscapeIfKeyword(param.Name) + ": " + rendered
	}
	return strings.Join(declared, ","), nil
}

// invoke renders the call of m on target, converting every argument for
// Java. Async result handler arguments are replaced by handler when it is set.
func invoke(target string, m *symbol.MethodInfo, handler string) (string, error) {
	args := make([]string, len(m.Params))
	for i, param := range m.Params {
		if handler != "" && classify.IsAsyncResultHandler(param.Type) {
			args[i] = handler
			continue
		}
		converted, err := conversion.ToJava(astutil.EscapeIfKeyword(param.Name), param.Type)
		if err != nil {
			return "", errors.Wrapf(err, "argument %s", param.Name)
		}
		args[i] = converted
	}
	return target + "." + astutil.EscapeIfKeyword(m.Name) + typeParams(m.TypeParams) + "(" + strings.Join(args, ", ") + ")", nil
}

// methodDoc renders the future style comment of m followed by a newline, or
// nothing for undocumented methods
func methodDoc(ct *symbol.ClassType, m *symbol.MethodInfo) (string, error) {
	if m.Doc == nil {
		return "", nil
	}
	doc, err := futureDocs.MethodDoc(ct, m, "    ", true)
	if err != nil {
		return "", err
	}
	return doc + "\n", nil
}

func methodContext(err error, ct *symbol.ClassType, m *symbol.MethodInfo) error {
	return errors.Wrapf(err, "rendering %s.%s", ct.Name(), m.Name)
}

// FutureMethod renders the variant of m that drops the trailing async result
// handler and returns a scala.concurrent.Future instead. m must satisfy
// classify.ShouldReturnFuture.
func FutureMethod(ct *symbol.ClassType, m *symbol.MethodInfo) (string, error) {
	if !classify.ShouldReturnFuture(m) {
		return "", errors.Newf("%s.%s does not take an async result handler", ct.Name(), m.Name)
	}

	params, err := paramList(m.Params[:len(m.Params)-1])
	if err != nil {
		return "", methodContext(err, ct, m)
	}

	payload := classify.FutureType(m)
	resultType, err := typemap.Translate(payload, typemap.Return)
	if err != nil {
		return "", methodContext(err, ct, m)
	}
	asyncType := astutil.ScalaNotation(payload.String())

	handler := "new Handler[AsyncResult[" + asyncType + "]] { override def handle(event: AsyncResult[" + asyncType + "]): Unit = { " +
		"if(event.failed) promise.failure(event.cause) else promise.success(" + conversion.ToScala("event.result()", payload) + ")}}"
	call, err := invoke("asJava", m, handler)
	if err != nil {
		return "", methodContext(err, ct, m)
	}

	doc, err := methodDoc(ct, m)
	if err != nil {
		return "", methodContext(err, ct, m)
	}

	return doc +
		"def " + astutil.FutureMethodName(m.Name) + typeParams(m.TypeParams) + "(" + params + ") : scala.concurrent.Future[" + resultType + "] = {\n" +
		"      val promise = concurrent.Promise[" + resultType + "]()\n" +
		"      " + call + "\n" +
		"      promise.future\n" +
		"}", nil
}

// StaticMethod renders a forwarder for a static method of ct. A nullable
// result is wrapped in scala.Option and the method gets an Option suffix.
func StaticMethod(ct *symbol.ClassType, m *symbol.MethodInfo) (string, error) {
	params, err := paramList(m.Params)
	if err != nil {
		return "", methodContext(err, ct, m)
	}
	exec, err := invoke(ct.Type.RawName(), m, "")
	if err != nil {
		return "", methodContext(err, ct, m)
	}

	name := astutil.EscapeIfKeyword(m.Name)
	if m.ReturnType.Nullable {
		name += "Option"
		exec = "scala.Option(" + exec + ")"
	}

	doc, err := methodDoc(ct, m)
	if err != nil {
		return "", methodContext(err, ct, m)
	}

	return doc +
		"def " + name + typeParams(m.TypeParams) + "(" + params + ") = {\n" +
		"      " + exec + "\n" +
		"}", nil
}

// NullableMethod renders the variant of an instance method that wraps its
// result in scala.Option
func NullableMethod(ct *symbol.ClassType, m *symbol.MethodInfo) (string, error) {
	params, err := paramList(m.Params)
	if err != nil {
		return "", methodContext(err, ct, m)
	}
	exec, err := invoke("asJava", m, "")
	if err != nil {
		return "", methodContext(err, ct, m)
	}

	name := astutil.EscapeIfKeyword(m.Name)
	if m.ReturnType.Nullable {
		name += "Option"
	}

	doc, err := methodDoc(ct, m)
	if err != nil {
		return "", methodContext(err, ct, m)
	}

	return doc +
		"def " + name + typeParams(m.TypeParams) + "(" + params + ") = {\n" +
		"      scala.Option(" + exec + ")\n" +
		"}", nil
}
