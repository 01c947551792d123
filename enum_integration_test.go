package main

import (
	"strings"
	"testing"
)

const fileSystemModel = `
modules:
  - name: vertx
    package: io.vertx.core
    groupPackage: io.vertx
types:
  - name: io.vertx.core.file.FileSystem
    kind: api
    module: vertx
    doc: |
      Contains a broad set of operations for manipulating files, see {@link CopyMode}.
    methods:
      - name: copy
        doc: "Copy a file, see {@link #copy(String, CopyMode, Handler)}."
        params:
          - name: from
            type: String
          - name: mode
            type: io.vertx.core.file.CopyMode
          - name: handler
            type: Handler<AsyncResult<Void>>
      - name: defaultMode
        returns: io.vertx.core.file.CopyMode
        returnNullable: true
  - name: io.vertx.core.file.CopyMode
    kind: enum
    module: vertx
`

func TestEnumIntegration_ImportsAndParameters(t *testing.T) {
	out := renderModule(t, fileSystemModel, "vertx")

	if !strings.Contains(out, "import io.vertx.core.file.CopyMode\n") {
		t.Errorf("Expected a plain import of the enum, got:\n%s", out)
	}
	if strings.Contains(out, "mode: JCopyMode") {
		t.Errorf("Expected enum parameters to not be aliased, got:\n%s", out)
	}
	if got := strings.Count(out, "import io.vertx.core.file.{FileSystem => JFileSystem}\n"); got != 1 {
		t.Errorf("Expected the FileSystem alias once, got %d", got)
	}
	if !strings.Contains(out, "def copyFuture(from: java.lang.String,mode: io.vertx.core.file.CopyMode) : scala.concurrent.Future[Unit] = {") {
		t.Errorf("Expected the future variant of copy, got:\n%s", out)
	}
	if !strings.Contains(out, "asJava.copy(from, mode, new Handler[AsyncResult[java.lang.Void]]") {
		t.Errorf("Expected enums to be passed through unchanged, got:\n%s", out)
	}
}

func TestEnumIntegration_NullableEnumReturn(t *testing.T) {
	out := renderModule(t, fileSystemModel, "vertx")

	want := "def defaultModeOption() = {\n      scala.Option(asJava.defaultMode())\n}"
	if !strings.Contains(out, want) {
		t.Errorf("Expected the Option variant of defaultMode, got:\n%s", out)
	}
}

func TestEnumIntegration_Documentation(t *testing.T) {
	out := renderModule(t, fileSystemModel, "vertx")

	if !strings.Contains(out, "    * Contains a broad set of operations for manipulating files, see [[io.vertx.core.file.CopyMode]].") {
		t.Errorf("Expected the enum link in the class documentation, got:\n%s", out)
	}
	flat := normalizeSpaces(out)
	if !strings.Contains(flat, "* Like copy from [[io.vertx.core.file.FileSystem]] but returns a Scala Future instead of taking an AsyncResultHandler. */ def copyFuture(") {
		t.Errorf("Expected the future documentation before copyFuture, got:\n%s", out)
	}
}
