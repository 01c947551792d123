package symbol

import "github.com/NickyBoy89/java2scala/astutil"

// knownKinds maps the JDK and Vert.x core names the generator understands
// without a declaration in the model
var knownKinds = map[string]Kind{
	"byte":                KindBasic,
	"short":               KindBasic,
	"int":                 KindBasic,
	"long":                KindBasic,
	"float":               KindBasic,
	"double":              KindBasic,
	"boolean":             KindBasic,
	"char":                KindBasic,
	"java.lang.Byte":      KindBasic,
	"java.lang.Short":     KindBasic,
	"java.lang.Integer":   KindBasic,
	"java.lang.Long":      KindBasic,
	"java.lang.Float":     KindBasic,
	"java.lang.Double":    KindBasic,
	"java.lang.Boolean":   KindBasic,
	"java.lang.Character": KindBasic,
	"java.lang.String":    KindBasic,

	"void":        KindVoid,
	VoidClassName: KindVoid,

	"java.lang.Object":    KindObject,
	"java.lang.Throwable": KindThrowable,
	"java.lang.Exception": KindThrowable,

	"io.vertx.core.json.JsonObject": KindJsonObject,
	"io.vertx.core.json.JsonArray":  KindJsonArray,

	"java.util.List":              KindList,
	"java.util.Set":               KindSet,
	"java.util.Map":               KindMap,
	"java.util.function.Function": KindFunction,
	HandlerName:                   KindHandler,
	"io.vertx.core.AsyncResult":   KindAsyncResult,
	"java.lang.Class":             KindClassReference,

	BufferClassName: KindApiInterface,
	FutureName:      KindApiInterface,
	InstantName:     KindOther,
}

// knownRawParams holds the declared type parameters of the generic API types
// in knownKinds
var knownRawParams = map[string][]string{
	FutureName: {"T"},
}

// knownSimpleNames resolves the unqualified spellings accepted in model files
var knownSimpleNames = func() map[string]string {
	names := make(map[string]string, len(knownKinds))
	for name := range knownKinds {
		simple := astutil.SimpleName(name)
		if simple == name {
			continue
		}
		names[simple] = name
	}
	// String is usually written unqualified in Vert.x signatures
	names["String"] = "java.lang.String"
	return names
}()

// LookupKnown returns a raw descriptor for a well-known qualified or simple
// name, or nil if the name is not well-known
func LookupKnown(name string) *TypeInfo {
	if qualified, ok := knownSimpleNames[name]; ok {
		name = qualified
	}
	kind, ok := knownKinds[name]
	if !ok {
		return nil
	}
	t := New(kind, name)
	t.RawParams = knownRawParams[name]
	return t
}
