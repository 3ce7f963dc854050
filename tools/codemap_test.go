package tools

import (
	"strings"
	"testing"
)

const codemapSource = `#include <string>

class Widget {
    int width;
    void resize(int w);
};

void Widget::resize(int w) {
    width = w;
}
`

func TestFormatCodemap(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "widget.cpp", codemapSource)

	proj, err := OpenProject(dir)
	if err != nil {
		t.Fatalf("OpenProject failed: %v", err)
	}
	defer proj.Close()

	output, err := FormatCodemap(proj, FormatOptions{LineLimit: DefaultLineLimit})
	if err != nil {
		t.Fatalf("FormatCodemap failed: %v", err)
	}

	if !strings.Contains(output, "## widget.cpp") {
		t.Errorf("output missing file section:\n%s", output)
	}
	if !strings.Contains(output, "class Widget") {
		t.Errorf("output missing class symbol:\n%s", output)
	}
	if !strings.Contains(output, "function Widget::resize void (int)") {
		t.Errorf("output missing function with signature:\n%s", output)
	}
	// Includes are catalogue entries but noise in the map.
	if strings.Contains(output, "string") {
		t.Errorf("output should not list includes:\n%s", output)
	}
}

func TestFormatCodemapFilter(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "widget.cpp", "void a() {}\n")
	writeTestFile(t, dir, "other.cpp", "void b() {}\n")

	proj, err := OpenProject(dir)
	if err != nil {
		t.Fatalf("OpenProject failed: %v", err)
	}
	defer proj.Close()

	output, err := FormatCodemap(proj, FormatOptions{Filter: "widget", LineLimit: DefaultLineLimit})
	if err != nil {
		t.Fatalf("FormatCodemap failed: %v", err)
	}
	if !strings.Contains(output, "widget.cpp") || strings.Contains(output, "other.cpp") {
		t.Errorf("filter not applied:\n%s", output)
	}
}

func TestFormatCodemapSkipPatterns(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "keep.cpp", "void a() {}\n")
	writeTestFile(t, dir, "gen/skip.cpp", "void b() {}\n")

	proj, err := OpenProject(dir)
	if err != nil {
		t.Fatalf("OpenProject failed: %v", err)
	}
	defer proj.Close()

	output, err := FormatCodemap(proj, FormatOptions{
		SkipPatterns: []string{"gen/"},
		LineLimit:    DefaultLineLimit,
	})
	if err != nil {
		t.Fatalf("FormatCodemap failed: %v", err)
	}
	if !strings.Contains(output, "keep.cpp") || strings.Contains(output, "skip.cpp") {
		t.Errorf("skip patterns not applied:\n%s", output)
	}
}

func TestFormatCodemapLineLimit(t *testing.T) {
	dir := t.TempDir()
	var src strings.Builder
	for i := 0; i < 30; i++ {
		src.WriteString("void f")
		src.WriteByte(byte('a' + i%26))
		src.WriteString(strings.Repeat("x", i/26))
		src.WriteString("() {}\n")
	}
	writeTestFile(t, dir, "big.cpp", src.String())
	writeTestFile(t, dir, "more.cpp", src.String())

	proj, err := OpenProject(dir)
	if err != nil {
		t.Fatalf("OpenProject failed: %v", err)
	}
	defer proj.Close()

	output, err := FormatCodemap(proj, FormatOptions{LineLimit: 40})
	if err != nil {
		t.Fatalf("FormatCodemap failed: %v", err)
	}
	if !strings.Contains(output, "truncated") {
		t.Errorf("expected truncation note:\n%s", output)
	}
}
