package render

import (
	"strings"
	"testing"

	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/NickyBoy89/java2scala/templates"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplates() templates.MapLookup {
	return templates.MapLookup{
		templates.LicenseHeader:   "// license\n",
		templates.Json:            "  // json\n",
		templates.Message:         "  // message\n",
		templates.Vertx:           "    // vertx\n",
		templates.VertxObject:     "  // vertx object\n",
		templates.ExecuteBlocking: "    // execute blocking\n",
	}
}

var coreModule = &symbol.ModuleInfo{Name: "vertx", PackageName: "io.vertx.core", GroupPackage: "io.vertx"}

func dataObjectClass(hasEmptyConstructor bool) *symbol.ClassType {
	return &symbol.ClassType{
		Type:                optionsType,
		Module:              coreModule,
		Concrete:            true,
		HasEmptyConstructor: hasEmptyConstructor,
	}
}

func TestDataObject(t *testing.T) {
	withEmpty := "  type HttpServerOptions = io.vertx.core.http.HttpServerOptions\n" +
		"  object HttpServerOptions {\n" +
		"    def apply() = new HttpServerOptions()\n" +
		"    def apply(json: JsonObject) = new HttpServerOptions(json)\n" +
		"  }\n"
	if diff := cmp.Diff(withEmpty, DataObject(dataObjectClass(true))); diff != "" {
		t.Errorf("DataObject mismatch (-want +got):\n%s", diff)
	}

	jsonOnly := DataObject(dataObjectClass(false))
	assert.NotContains(t, jsonOnly, "def apply()")
	assert.Contains(t, jsonOnly, "def apply(json: JsonObject) = new HttpServerOptions(json)")

	abstract := dataObjectClass(true)
	abstract.Concrete = false
	assert.Empty(t, DataObject(abstract))
}

func TestImports(t *testing.T) {
	ct := serverClass(&symbol.MethodInfo{
		Name:       "listen",
		ReturnType: voidType,
		Params: []*symbol.ParamInfo{
			param("vertx", symbol.New(symbol.KindApiInterface, "io.vertx.core.Vertx")),
			param("data", symbol.New(symbol.KindApiInterface, symbol.BufferClassName)),
			param("handler", asyncHandler(serverType)),
		},
	})
	ct.ReferencedTypes = []*symbol.TypeInfo{
		optionsType,
		symbol.New(symbol.KindJsonObject, "io.vertx.core.json.JsonObject"),
		symbol.New(symbol.KindApiInterface, "io.vertx.core.http.impl.HttpServerImpl"),
	}

	want := []string{
		"io.vertx.core",
		"io.vertx.core.AsyncResult",
		"io.vertx.core.Handler",
		"io.vertx.core.buffer.Buffer",
		"io.vertx.core.http.{HttpServer => JHttpServer}",
		"io.vertx.core.http.{HttpServerOptions => JHttpServerOptions}",
		"io.vertx.core.json.JsonObject",
		"io.vertx.core.{Vertx => JVertx}",
	}
	if diff := cmp.Diff(want, Imports(ct)); diff != "" {
		t.Errorf("Imports mismatch (-want +got):\n%s", diff)
	}
}

func TestPart_Validate(t *testing.T) {
	tests := []struct {
		part    Part
		wantErr bool
	}{
		{Part{Index: 0, Size: 1}, false},
		{Part{Index: 2, Size: 3}, false},
		{Part{Index: 0, Size: 0}, true},
		{Part{Index: 3, Size: 3}, true},
		{Part{Index: -1, Size: 3}, true},
	}
	for _, tt := range tests {
		err := tt.part.Validate()
		assert.Equal(t, tt.wantErr, err != nil, "%+v", tt.part)
	}
}

func TestPackageObject_SinglePart(t *testing.T) {
	assembler := NewAssembler(testTemplates(), nil)

	got, err := assembler.PackageObject(dataObjectClass(true), Part{Index: 0, Size: 1})
	require.NoError(t, err)

	want := "// license\n" +
		"\n" +
		"\n" +
		"package io.vertx.scala\n" +
		"\n" +
		"import scala.jdk.CollectionConverters._\n" +
		"import io.vertx.core.json.JsonObject\n" +
		"import io.vertx.core.json.JsonArray\n" +
		"import io.vertx.core.AsyncResult\n" +
		"import io.vertx.core.Handler\n" +
		"import scala.concurrent.Promise\n" +
		"\n" +
		"import io.vertx.core.http.{HttpServerOptions => JHttpServerOptions}\n" +
		"package object core{\n" +
		"\n" +
		"  // json\n" +
		"\n" +
		"\n" +
		DataObject(dataObjectClass(true)) +
		"\n" +
		"\n" +
		"\n" +
		"}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PackageObject mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageObject_Parts(t *testing.T) {
	assembler := NewAssembler(testTemplates(), nil)
	ct := dataObjectClass(false)

	first, err := assembler.PackageObject(ct, Part{Index: 0, Size: 3})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "// license\n"))
	assert.False(t, strings.HasSuffix(first, "}\n"))

	middle, err := assembler.PackageObject(ct, Part{Index: 1, Size: 3})
	require.NoError(t, err)
	assert.NotContains(t, middle, "package object")
	assert.NotContains(t, middle, "// license")
	assert.False(t, strings.HasSuffix(middle, "}\n"))

	last, err := assembler.PackageObject(ct, Part{Index: 2, Size: 3})
	require.NoError(t, err)
	assert.NotContains(t, last, "package object")
	assert.True(t, strings.HasSuffix(last, "\n}\n"))

	_, err = assembler.PackageObject(ct, Part{Index: 3, Size: 3})
	assert.Error(t, err)
}

func TestPackageObject_ImplicitClass(t *testing.T) {
	options := &symbol.MethodInfo{Name: "options", ReturnType: optionsType.WithNullable(true)}
	listen := &symbol.MethodInfo{
		Name:       "listen",
		ReturnType: serverType,
		Params:     []*symbol.ParamInfo{param("port", intType), param("handler", asyncHandler(serverType))},
	}
	create := &symbol.MethodInfo{Name: "create", ReturnType: serverType, IsStatic: true}
	ct := serverClass(options, listen, create)

	got, err := NewAssembler(testTemplates(), nil).PackageObject(ct, Part{Index: 1, Size: 2})
	require.NoError(t, err)

	assert.Contains(t, got, "  implicit class HttpServerScala(val asJava: io.vertx.core.http.HttpServer) extends AnyVal {\n")
	assert.Contains(t, got, "def optionsOption() = {\n      scala.Option(asJava.options())\n}")
	assert.Contains(t, got, "def listenFuture(port: java.lang.Integer) : scala.concurrent.Future[io.vertx.core.http.HttpServer] = {")
	assert.Contains(t, got, "promise.future\n}\n  }\n")
	assert.NotContains(t, got, "object HttpServer {", "types with future methods get no static companion")
	assert.True(t, strings.HasSuffix(got, "}\n"))
}

func TestPackageObject_StaticCompanion(t *testing.T) {
	create := &symbol.MethodInfo{Name: "create", ReturnType: serverType, IsStatic: true}
	ct := serverClass(create)

	got, err := NewAssembler(testTemplates(), nil).PackageObject(ct, Part{Index: 1, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, "  object HttpServer {\n"+
		"def create() = {\n"+
		"      io.vertx.core.http.HttpServer.create()\n"+
		"}\n"+
		"  }\n"+
		"\n"+
		"\n", got)
}

func TestPackageObject_SpecialTypes(t *testing.T) {
	handler := &symbol.MethodInfo{
		Name:       "close",
		ReturnType: voidType,
		Params:     []*symbol.ParamInfo{param("handler", asyncHandler(voidType))},
	}
	blocking := &symbol.MethodInfo{
		Name:       "executeBlocking",
		ReturnType: voidType,
		Params:     []*symbol.ParamInfo{param("handler", asyncHandler(stringType))},
	}
	vertx := &symbol.ClassType{
		Type:    symbol.New(symbol.KindApiInterface, "io.vertx.core.Vertx"),
		Module:  coreModule,
		Methods: []*symbol.MethodInfo{handler, blocking},
	}

	got, err := NewAssembler(testTemplates(), nil).PackageObject(vertx, Part{Index: 0, Size: 1})
	require.NoError(t, err)
	assert.Contains(t, got, "import io.vertx.lang.scala.ScalaVerticle\n")
	assert.Contains(t, got, "  // vertx object\n\n  implicit class VertxScala")
	assert.Contains(t, got, "    // vertx\n\n    // execute blocking\n")
	assert.Contains(t, got, "def closeFuture()")
	assert.NotContains(t, got, "def executeBlockingFuture")

	message := &symbol.ClassType{
		Type:    symbol.New(symbol.KindApiInterface, "io.vertx.core.eventbus.Message"),
		Module:  coreModule,
		Methods: []*symbol.MethodInfo{{Name: "create", ReturnType: stringType, IsStatic: true}},
	}
	got, err = NewAssembler(testTemplates(), nil).PackageObject(message, Part{Index: 1, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, "\n  // message\n\n", got)
}

func TestPackageObject_MissingTemplate(t *testing.T) {
	_, err := NewAssembler(templates.MapLookup{}, nil).PackageObject(dataObjectClass(true), Part{Index: 0, Size: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, templates.ErrMissingTemplate))
}

func TestPackage(t *testing.T) {
	assembler := NewAssembler(testTemplates(), nil)
	cts := []*symbol.ClassType{dataObjectClass(true), serverClass(&symbol.MethodInfo{Name: "create", ReturnType: serverType, IsStatic: true})}
	cts[1].Module = coreModule

	got, err := assembler.Package(cts)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(got, "package object core{"))
	assert.True(t, strings.HasSuffix(got, "\n}\n"))
	assert.Less(t, strings.Index(got, "type HttpServerOptions"), strings.Index(got, "object HttpServer {"))

	_, err = assembler.Package(nil)
	assert.Error(t, err)

	other := serverClass()
	_, err = assembler.Package([]*symbol.ClassType{dataObjectClass(true), other})
	assert.Error(t, err, "types of another module")
}

func fileSystemClass() *symbol.ClassType {
	return &symbol.ClassType{
		Type:   symbol.New(symbol.KindApiInterface, "io.vertx.core.file.FileSystem"),
		Module: coreModule,
		Methods: []*symbol.MethodInfo{{
			Name:       "defaultMode",
			ReturnType: voidType,
			IsStatic:   true,
			Params: []*symbol.ParamInfo{
				param("mode", symbol.New(symbol.KindEnum, "io.vertx.core.file.CopyMode")),
			},
		}},
	}
}

func TestMergeImports(t *testing.T) {
	fs := fileSystemClass()
	want := []string{
		"io.vertx.core.file.CopyMode",
		"io.vertx.core.file.{FileSystem => JFileSystem}",
		"io.vertx.core.http.{HttpServerOptions => JHttpServerOptions}",
	}
	got := MergeImports([]*symbol.ClassType{dataObjectClass(true), fs, fs})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeImports mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Imports(fs), MergeImports([]*symbol.ClassType{fs}))
}

func TestPackage_HeaderImportsEveryType(t *testing.T) {
	assembler := NewAssembler(testTemplates(), nil)

	got, err := assembler.Package([]*symbol.ClassType{dataObjectClass(true), fileSystemClass()})
	require.NoError(t, err)

	header := got[:strings.Index(got, "package object core{")]
	for _, imp := range []string{
		"import io.vertx.core.file.CopyMode\n",
		"import io.vertx.core.file.{FileSystem => JFileSystem}\n",
		"import io.vertx.core.http.{HttpServerOptions => JHttpServerOptions}\n",
	} {
		assert.Contains(t, header, imp)
		assert.Equal(t, 1, strings.Count(got, imp), imp)
	}
}

func TestPackageObject_ExplicitImports(t *testing.T) {
	assembler := NewAssembler(testTemplates(), nil)
	imports := []string{"io.vertx.core.file.CopyMode", "io.vertx.core.http.{HttpServerOptions => JHttpServerOptions}"}

	got, err := assembler.PackageObject(dataObjectClass(true), Part{Index: 0, Size: 2, Imports: imports})
	require.NoError(t, err)
	assert.Contains(t, got, "import io.vertx.core.file.CopyMode\nimport io.vertx.core.http.{HttpServerOptions => JHttpServerOptions}\n")

	rest, err := assembler.PackageObject(fileSystemClass(), Part{Index: 1, Size: 2, Imports: imports})
	require.NoError(t, err)
	assert.NotContains(t, rest, "import ")
}
