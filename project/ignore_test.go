package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseIgnoreLine(t *testing.T) {
	tests := []struct {
		line     string
		ok       bool
		glob     string
		negated  bool
		dirOnly  bool
		anchored bool
	}{
		{"", false, "", false, false, false},
		{"# comment", false, "", false, false, false},
		{"*.obj", true, "*.obj", false, false, false},
		{"build/", true, "build", false, true, false},
		{"!keep.cpp", true, "keep.cpp", true, false, false},
		{"/generated", true, "generated", false, false, true},
		{"docs/tmp", true, "docs/tmp", false, false, true},
		{"out/   ", true, "out", false, true, false}, // trailing spaces stripped
	}
	for _, tt := range tests {
		rule, ok := parseIgnoreLine(tt.line, "")
		if ok != tt.ok {
			t.Errorf("parseIgnoreLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if rule.glob != tt.glob || rule.negated != tt.negated ||
			rule.dirOnly != tt.dirOnly || rule.anchored != tt.anchored {
			t.Errorf("parseIgnoreLine(%q) = %+v, want glob=%q negated=%v dirOnly=%v anchored=%v",
				tt.line, rule, tt.glob, tt.negated, tt.dirOnly, tt.anchored)
		}
	}
}

func TestIgnoredLaterRulesWin(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".gitignore", "*.obj\nbuild/\n!important.obj\n")

	il := loadIgnoreRules(dir)

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"main.obj", false, true},
		{"sub/deep/main.obj", false, true},
		{"important.obj", false, false}, // negated by the later rule
		{"build", true, true},
		{"build", false, false}, // dir-only rule
		{"src/main.cpp", false, false},
	}
	for _, tt := range tests {
		if got := il.Ignored(tt.path, tt.isDir); got != tt.want {
			t.Errorf("Ignored(%q, %v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestIgnoredAnchored(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".gitignore", "/generated\n")

	il := loadIgnoreRules(dir)

	if !il.Ignored("generated", true) {
		t.Error("anchored rule should ignore the root-level directory")
	}
	if !il.Ignored("generated/code.cpp", false) {
		t.Error("anchored directory rule should ignore files below it")
	}
	if il.Ignored("src/generated", true) {
		t.Error("anchored rule must not match nested paths")
	}
}

func TestIgnoredNestedIgnoreFileScopesToSubtree(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, dir, filepath.Join("sub", ".gitignore"), "*.tmp\n")

	il := loadIgnoreRules(dir)

	if !il.Ignored("sub/cache.tmp", false) {
		t.Error("nested rule should apply inside its directory")
	}
	if il.Ignored("cache.tmp", false) {
		t.Error("nested rule must not apply outside its directory")
	}
}

func TestIgnoredEmptyList(t *testing.T) {
	il := loadIgnoreRules(t.TempDir())
	if il.Ignored("anything.cpp", false) {
		t.Error("empty ignore list should ignore nothing")
	}
}
