// Package tools implements the MCP tool surface over the transformation
// core: symbol catalogues, definition read/write/delete, structural
// queries and reference search.
package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/phyBrackets/knut/document"
	"github.com/phyBrackets/knut/project"
)

var log = commonlog.GetLogger("knut.tools")

// DefaultLineLimit is the default maximum number of lines in tool output.
const DefaultLineLimit = 1000

// Config holds server-wide configuration for tools.
type Config struct {
	SkipPatterns []string // Path prefixes to skip by default
	LineLimit    int      // Maximum lines in output (0 = no limit)
}

func (cfg *Config) lineLimit() int {
	if cfg == nil || cfg.LineLimit == 0 {
		return DefaultLineLimit
	}
	return cfg.LineLimit
}

func isSkipped(path string, skipPatterns []string) bool {
	for _, pattern := range skipPatterns {
		if strings.HasPrefix(path, pattern) {
			return true
		}
	}
	return false
}

// OpenProject resolves dir ("" means the working directory) into a Project.
func OpenProject(dir string) (*project.Project, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = cwd
	}
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}
	return project.Open(dir)
}

// OpenDocument resolves a file path against the working directory and
// opens it as a standalone document.
func OpenDocument(file string) (*document.Document, error) {
	if file == "" {
		return nil, fmt.Errorf("file path is required")
	}
	if !filepath.IsAbs(file) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		file = filepath.Join(cwd, file)
	}
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", file)
	}
	return document.Open(file)
}

// lineOf returns the 1-based line number of a byte offset.
func lineOf(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return 1 + strings.Count(text[:offset], "\n")
}

// symbolLabel renders one symbol for catalogue output.
func symbolLabel(s *document.Symbol) string {
	if s.IsFunction() {
		return fmt.Sprintf("%s %s %s", s.Kind(), s.Name(), s.Signature())
	}
	return fmt.Sprintf("%s %s", s.Kind(), s.Name())
}
