// Package languages maps file extensions to tree-sitter grammars and to the
// fixed battery of symbol queries run over every parsed document.
package languages

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Symbol kinds produced by the query batteries.
const (
	KindFunction = "function"
	KindClass    = "class"
	KindMember   = "member"
	KindVariable = "variable"
	KindInclude  = "include"
)

// SymbolQuery is one entry of a language's symbol battery. The pattern must
// capture the whole entity as @definition (or @declaration for entities
// without a body) and its name as @name; function patterns may additionally
// capture @returnType and repeated @parameters for the signature.
type SymbolQuery struct {
	Kind    string
	Pattern string
}

// Language describes one supported grammar.
type Language struct {
	Name       string
	Extensions []string
	Sitter     *sitter.Language
	Battery    []SymbolQuery
}

var registry = make(map[string]*Language)

// Register adds a language to the registry under all of its extensions.
func Register(lang *Language) {
	for _, ext := range lang.Extensions {
		registry[ext] = lang
	}
}

// ForPath returns the Language for a file based on its extension, or nil if
// the file type is not supported.
func ForPath(path string) *Language {
	return registry[strings.ToLower(filepath.Ext(path))]
}

// ByName returns the Language with the given name, or nil.
func ByName(name string) *Language {
	for _, lang := range registry {
		if lang.Name == name {
			return lang
		}
	}
	return nil
}

// SupportedExtensions returns all registered file extensions.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	return exts
}

// Names returns the names of all registered languages.
func Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, lang := range registry {
		if !seen[lang.Name] {
			seen[lang.Name] = true
			names = append(names, lang.Name)
		}
	}
	return names
}
