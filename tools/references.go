package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/phyBrackets/knut/cpp"
	"github.com/phyBrackets/knut/project"
)

// FindReferencesInput is the input schema for the find_references tool.
type FindReferencesInput struct {
	Path   string `json:"path,omitempty" jsonschema_description:"Directory to search in. Defaults to current working directory."`
	Symbol string `json:"symbol" jsonschema_description:"Name of the function to find call sites for."`
}

// FindReferencesTool creates the find_references MCP tool.
func FindReferencesTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "find_references",
		Description: `Find all call sites of a function across the codebase.

Syntax-aware: only finds actual calls, not strings or comments. Better than grep for code navigation.`,
	}
}

// Reference is a single call site of a symbol.
type Reference struct {
	File    string // Relative file path
	Line    int    // 1-based line number
	Context string // The call expression text, first line only
}

// FindReferencesHandler handles the find_references tool invocation.
func FindReferencesHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, FindReferencesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FindReferencesInput) (*mcp.CallToolResult, any, error) {
		if input.Symbol == "" {
			return nil, nil, fmt.Errorf("symbol name is required")
		}
		proj, err := OpenProject(input.Path)
		if err != nil {
			return nil, nil, err
		}
		defer proj.Close()

		refs, err := FindReferences(proj, input.Symbol)
		if err != nil {
			return nil, nil, err
		}
		if len(refs) == 0 {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{Text: fmt.Sprintf("No references found for %q", input.Symbol)},
				},
			}, nil, nil
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("# References to %q (%d found)\n\n", input.Symbol, len(refs)))
		currentFile := ""
		for _, ref := range refs {
			if ref.File != currentFile {
				if currentFile != "" {
					sb.WriteString("\n")
				}
				sb.WriteString(fmt.Sprintf("## %s\n", ref.File))
				currentFile = ref.File
			}
			sb.WriteString(fmt.Sprintf("  [%d] %s\n", ref.Line, ref.Context))
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: sb.String()}},
		}, nil, nil
	}
}

// FindReferences finds every call of the named function across the
// project, in file then source order.
func FindReferences(proj *project.Project, symbol string) ([]Reference, error) {
	files, err := proj.Files()
	if err != nil {
		return nil, err
	}

	var refs []Reference
	for _, rel := range files {
		doc, err := proj.Get(rel)
		if err != nil {
			continue
		}
		matches, err := cpp.QueryFunctionCall(doc, symbol)
		if err != nil {
			return nil, err
		}
		text := doc.Text()
		for _, m := range matches {
			call := m.Get("call")
			context := call.Text()
			if nl := strings.IndexByte(context, '\n'); nl >= 0 {
				context = context[:nl] + " ..."
			}
			refs = append(refs, Reference{
				File:    rel,
				Line:    lineOf(text, call.StartByte()),
				Context: context,
			})
		}
	}
	return refs, nil
}
