package typemap

import (
	"testing"

	"github.com/NickyBoy89/java2scala/symbol"
)

func TestJavaType(t *testing.T) {
	future := symbol.New(symbol.KindApiInterface, symbol.FutureName)
	future.RawParams = []string{"T"}

	tests := []struct {
		name string
		t    *symbol.TypeInfo
		want string
	}{
		{"primitive", intType, "java.lang.Integer"},
		{"string", stringType, "java.lang.String"},
		{"void", voidType, "Void"},
		{"json", symbol.New(symbol.KindJsonObject, "io.vertx.core.json.JsonObject"), "JsonObject"},
		{"data object", symbol.New(symbol.KindDataObject, "io.vertx.core.http.HttpServerOptions"), "io.vertx.core.http.HttpServerOptions"},
		{"api", symbol.New(symbol.KindApiInterface, "io.vertx.core.Vertx"), "io.vertx.core.Vertx"},
		{"parameterized api", symbol.New(symbol.KindApiInterface, symbol.FutureName, stringType), "io.vertx.core.Future[java.lang.String]"},
		{"raw generic api", future, "io.vertx.core.Future[Object]"},
		{"list", symbol.New(symbol.KindList, "java.util.List", stringType), "java.util.List[java.lang.String]"},
		{"map", symbol.New(symbol.KindMap, "java.util.Map", stringType, intType), "java.util.Map[String, java.lang.Integer]"},
		{"handler", symbol.New(symbol.KindHandler, symbol.HandlerName, stringType), "Handler[java.lang.String]"},
		{"async result", symbol.New(symbol.KindAsyncResult, "io.vertx.core.AsyncResult", stringType), "AsyncResult[java.lang.String]"},
		{"class", symbol.New(symbol.KindClassReference, "java.lang.Class", stringType), "Class[java.lang.String]"},
		{"raw class", symbol.New(symbol.KindClassReference, "java.lang.Class"), "Class[_]"},
		{"function", symbol.New(symbol.KindFunction, "java.util.function.Function", stringType, intType), "java.util.function.Function[java.lang.String, java.lang.Integer]"},
		{"instant", symbol.New(symbol.KindOther, symbol.InstantName), symbol.InstantName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JavaType(tt.t)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
