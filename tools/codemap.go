package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/phyBrackets/knut/document"
	"github.com/phyBrackets/knut/languages"
	"github.com/phyBrackets/knut/project"
)

// CodemapInput is the input schema for the codemap tool.
type CodemapInput struct {
	Path   string `json:"path,omitempty" jsonschema_description:"Directory path to index. Defaults to current working directory if not specified."`
	Filter string `json:"filter,omitempty" jsonschema_description:"Optional path prefix; only matching files have their symbols shown. Overrides any default skip patterns for matching files."`
}

// CodemapTool creates the codemap MCP tool.
func CodemapTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "codemap",
		Description: "Index a C/C++ codebase and return a compact listing of all symbols (functions, classes, members, includes) with their line ranges.",
	}
}

// CodemapHandler handles the codemap tool invocation.
func CodemapHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, CodemapInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CodemapInput) (*mcp.CallToolResult, any, error) {
		proj, err := OpenProject(input.Path)
		if err != nil {
			return nil, nil, err
		}
		defer proj.Close()

		output, err := FormatCodemap(proj, FormatOptions{
			SkipPatterns: cfg.SkipPatterns,
			Filter:       input.Filter,
			LineLimit:    cfg.lineLimit(),
		})
		if err != nil {
			return nil, nil, err
		}
		if output == "" {
			output = "No symbols found in the specified directory."
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: output}},
		}, nil, nil
	}
}

// FormatOptions controls how the codemap is formatted.
type FormatOptions struct {
	SkipPatterns []string
	Filter       string
	LineLimit    int
}

// FormatCodemap walks the project and renders every file's catalogue, one
// "## path" section per file with one line per symbol.
func FormatCodemap(proj *project.Project, opts FormatOptions) (string, error) {
	files, err := proj.Files()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	lines := 0
	truncated := false
	for _, rel := range files {
		if opts.Filter != "" && !strings.HasPrefix(rel, opts.Filter) {
			continue
		}
		if opts.Filter == "" && isSkipped(rel, opts.SkipPatterns) {
			continue
		}
		doc, err := proj.Get(rel)
		if err != nil {
			log.Warningf("codemap: skipping %s: %s", rel, err.Error())
			continue
		}
		symbols := doc.Symbols()
		if len(symbols) == 0 {
			continue
		}
		section := formatFile(rel, doc, symbols)
		sectionLines := strings.Count(section, "\n")
		if opts.LineLimit > 0 && lines+sectionLines > opts.LineLimit {
			truncated = true
			break
		}
		sb.WriteString(section)
		lines += sectionLines
	}
	if truncated {
		sb.WriteString("# Note: output truncated to fit line limit; use filter to narrow the map\n")
	}
	return sb.String(), nil
}

func formatFile(rel string, doc *document.Document, symbols []*document.Symbol) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n", rel))
	text := doc.Text()
	for _, s := range symbols {
		if s.Kind() == languages.KindInclude {
			continue
		}
		r, err := s.Range()
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("  [%d-%d] %s\n", lineOf(text, r.Start), lineOf(text, r.End-1), symbolLabel(s)))
	}
	sb.WriteString("\n")
	return sb.String()
}
