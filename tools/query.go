package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/phyBrackets/knut/treesitter"
)

// QueryInput is the input schema for the query tool.
type QueryInput struct {
	File    string `json:"file" jsonschema_description:"Relative file path from the project root."`
	Pattern string `json:"pattern" jsonschema_description:"Tree-sitter structural pattern with @capture tags, e.g. '((identifier) @name (#eq? @name \"Foo\"))'. Supports #eq? and #match? predicates."`
}

// QueryTool creates the query MCP tool.
func QueryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "query",
		Description: "Run a structural tree-sitter pattern against a source file and return the ordered matches with their captures. An empty result means the pattern matched nothing, which is not an error.",
	}
}

// QueryHandler handles the query tool invocation.
func QueryHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, QueryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, any, error) {
		if input.Pattern == "" {
			return nil, nil, fmt.Errorf("pattern is required")
		}
		doc, err := OpenDocument(input.File)
		if err != nil {
			return nil, nil, err
		}
		defer doc.Close()

		matches, err := doc.Query(input.Pattern)
		if err != nil {
			var pe *treesitter.PatternError
			if errors.As(err, &pe) {
				return nil, nil, fmt.Errorf("invalid pattern at offset %d: %s", pe.Offset, pe.Message)
			}
			return nil, nil, err
		}

		output := FormatMatches(doc.Text(), input.File, matches)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: output}},
		}, nil, nil
	}
}

// FormatMatches renders an ordered match list with captures.
func FormatMatches(text, file string, matches []*treesitter.Match) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No matches in %s", file)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %d match(es) in %s\n", len(matches), file))
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("\n## match %d [%d-%d]\n", i+1, lineOf(text, m.Start()), lineOf(text, m.End()-1)))
		for _, c := range m.Captures() {
			snippet := c.Node.Text()
			if nl := strings.IndexByte(snippet, '\n'); nl >= 0 {
				snippet = snippet[:nl] + " ..."
			}
			sb.WriteString(fmt.Sprintf("  @%s (%s) %s\n", c.Name, c.Node.Kind(), snippet))
		}
	}
	return sb.String()
}
