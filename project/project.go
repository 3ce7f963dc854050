// Package project discovers source files under a root directory and hands
// out documents for them. It is the file-system collaborator of the core:
// documents themselves never touch the project, and independent documents
// share no state.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/phyBrackets/knut/document"
	"github.com/phyBrackets/knut/languages"
)

var log = commonlog.GetLogger("knut.project")

// Project is a root directory plus the documents opened from it.
type Project struct {
	root   string
	ignore *ignoreList
	docs   map[string]*document.Document
}

// Open creates a project rooted at dir.
func Open(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open project: %s is not a directory", dir)
	}
	return &Project{
		root:   abs,
		ignore: loadIgnoreRules(abs),
		docs:   make(map[string]*document.Document),
	}, nil
}

// Root returns the project's absolute root directory.
func (p *Project) Root() string { return p.root }

// Files walks the project and returns the relative paths of all supported
// source files, honoring ignore files and skipping hidden and vendored
// directories.
func (p *Project) Files() ([]string, error) {
	var files []string
	err := filepath.Walk(p.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(p.root, path)
		if relErr != nil {
			rel = path
		}
		if info.IsDir() {
			name := info.Name()
			if path != p.root && (strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules") {
				return filepath.SkipDir
			}
			if path != p.root && p.ignore.Ignored(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if p.ignore.Ignored(rel, false) {
			return nil
		}
		if languages.ForPath(path) == nil {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	return files, err
}

// Get returns the document for the given path (relative to the root or
// absolute), opening and caching it on first use.
func (p *Project) Get(path string) (*document.Document, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.root, path)
	}
	if doc, ok := p.docs[path]; ok {
		return doc, nil
	}
	doc, err := document.Open(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("opened %s", path)
	p.docs[path] = doc
	return doc, nil
}

// Save writes a document's current buffer back to its file.
func (p *Project) Save(doc *document.Document) error {
	if err := os.WriteFile(doc.Path(), []byte(doc.Text()), 0644); err != nil {
		return fmt.Errorf("save %s: %w", doc.Path(), err)
	}
	return nil
}

// Close releases every cached document.
func (p *Project) Close() {
	for _, doc := range p.docs {
		doc.Close()
	}
	p.docs = make(map[string]*document.Document)
}
