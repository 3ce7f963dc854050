package tools

import (
	"strings"
	"testing"

	"github.com/phyBrackets/knut/document"
)

func newTestDoc(t *testing.T, content string) *document.Document {
	t.Helper()
	d, err := document.New("test.cpp", []byte(content))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(d.Close)
	return d
}

func TestReplaceSymbol(t *testing.T) {
	d := newTestDoc(t, `void greet() {
    old();
}
`)

	err := ReplaceSymbol(d, "greet", "", "void greet() {\n    updated();\n}")
	if err != nil {
		t.Fatalf("ReplaceSymbol failed: %v", err)
	}

	want := "void greet() {\n    updated();\n}\n"
	if d.Text() != want {
		t.Errorf("Text() = %q, want %q", d.Text(), want)
	}
}

func TestReplaceSymbolBySignature(t *testing.T) {
	d := newTestDoc(t, `void log(int x) {
}

void log(double x) {
}
`)

	err := ReplaceSymbol(d, "log", "void (double)", "void log(double x) { use(x); }")
	if err != nil {
		t.Fatalf("ReplaceSymbol failed: %v", err)
	}
	if !strings.Contains(d.Text(), "use(x);") {
		t.Errorf("replacement not applied:\n%s", d.Text())
	}
	if !strings.Contains(d.Text(), "void log(int x) {\n}") {
		t.Errorf("other overload was touched:\n%s", d.Text())
	}
}

func TestReplaceSymbolAmbiguous(t *testing.T) {
	d := newTestDoc(t, `void log(int x) {
}

void log(double x) {
}
`)

	err := ReplaceSymbol(d, "log", "", "void log() {}")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("expected ambiguity error, got %v", err)
	}
}

func TestReplaceSymbolNotFound(t *testing.T) {
	d := newTestDoc(t, "void keep() {}\n")

	if err := ReplaceSymbol(d, "missing", "", "void missing() {}"); err == nil {
		t.Error("expected error for a missing symbol")
	}
	if err := ReplaceSymbol(d, "keep", "int ()", "void keep() {}"); err == nil {
		t.Error("expected error for a signature with no match")
	}
}
