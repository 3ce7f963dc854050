package project

import (
	"path/filepath"
	"testing"
)

func TestCorrespondingHeaderSourceSibling(t *testing.T) {
	dir := t.TempDir()
	cpp := writeTestFile(t, dir, "widget.cpp", "int w;\n")
	h := writeTestFile(t, dir, "widget.h", "int w;\n")

	p, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	if got := p.CorrespondingHeaderSource("widget.cpp"); got != h {
		t.Errorf("CorrespondingHeaderSource(widget.cpp) = %q, want %q", got, h)
	}
	if got := p.CorrespondingHeaderSource("widget.h"); got != cpp {
		t.Errorf("CorrespondingHeaderSource(widget.h) = %q, want %q", got, cpp)
	}
}

func TestCorrespondingHeaderSourceAcrossDirectories(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, filepath.Join("src", "view.cpp"), "int v;\n")
	header := writeTestFile(t, dir, filepath.Join("include", "view.h"), "int v;\n")
	writeTestFile(t, dir, filepath.Join("other", "model.h"), "int m;\n")

	p, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	got := p.CorrespondingHeaderSource(filepath.Join("src", "view.cpp"))
	if got != header {
		t.Errorf("CorrespondingHeaderSource = %q, want %q", got, header)
	}
}

func TestCorrespondingHeaderSourcePicksLongestCommonPath(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, filepath.Join("a", "deep", "door.cpp"), "int d;\n")
	near := writeTestFile(t, dir, filepath.Join("a", "door.h"), "int d;\n")
	writeTestFile(t, dir, filepath.Join("b", "door.h"), "int d;\n")

	p, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	got := p.CorrespondingHeaderSource(filepath.Join("a", "deep", "door.cpp"))
	if got != near {
		t.Errorf("CorrespondingHeaderSource = %q, want %q", got, near)
	}
}

func TestCorrespondingHeaderSourceNotFound(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "lonely.cpp", "int l;\n")

	p, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	if got := p.CorrespondingHeaderSource("lonely.cpp"); got != "" {
		t.Errorf("CorrespondingHeaderSource = %q, want empty", got)
	}
}
