package project

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ignoreRule is one pattern from an ignore file, kept with the directory
// it was declared in so nested ignore files apply to their subtree only.
type ignoreRule struct {
	glob     string
	negated  bool
	dirOnly  bool
	anchored bool
	base     string
}

// ignoreList holds the compiled ignore rules of a project tree.
type ignoreList struct {
	rules []ignoreRule
}

// loadIgnoreRules collects .gitignore files under root. Unreadable files
// are skipped; an empty list ignores nothing.
func loadIgnoreRules(root string) *ignoreList {
	il := &ignoreList{}
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if !info.IsDir() && info.Name() == ".gitignore" {
			base, _ := filepath.Rel(root, filepath.Dir(path))
			if base == "." {
				base = ""
			}
			il.addFile(path, base)
		}
		return nil
	})
	return il
}

func (il *ignoreList) addFile(path, base string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if rule, ok := parseIgnoreLine(scanner.Text(), base); ok {
			il.rules = append(il.rules, rule)
		}
	}
}

func parseIgnoreLine(line, base string) (ignoreRule, bool) {
	line = strings.TrimRight(line, " \t")
	if line == "" || strings.HasPrefix(line, "#") {
		return ignoreRule{}, false
	}
	rule := ignoreRule{base: base}
	if strings.HasPrefix(line, "!") {
		rule.negated = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		rule.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		line = line[1:]
		rule.anchored = true
	} else if strings.Contains(line, "/") {
		rule.anchored = true
	}
	rule.glob = line
	return rule, true
}

// Ignored reports whether the path (relative to the project root, with /
// separators) should be skipped. Later rules win, as in git.
func (il *ignoreList) Ignored(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)
	ignored := false
	for _, rule := range il.rules {
		if rule.dirOnly && !isDir {
			continue
		}
		scoped := relPath
		if rule.base != "" {
			prefix := filepath.ToSlash(rule.base) + "/"
			if !strings.HasPrefix(relPath, prefix) {
				continue
			}
			scoped = strings.TrimPrefix(relPath, prefix)
		}
		if rule.matches(scoped) {
			ignored = !rule.negated
		}
	}
	return ignored
}

func (r ignoreRule) matches(path string) bool {
	if r.anchored {
		if ok, _ := filepath.Match(r.glob, path); ok {
			return true
		}
		// An anchored directory pattern also ignores everything below it.
		return strings.HasPrefix(path, r.glob+"/")
	}
	// Unanchored patterns match any path component.
	for _, part := range strings.Split(path, "/") {
		if ok, _ := filepath.Match(r.glob, part); ok {
			return true
		}
	}
	return false
}
