package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReadDefinitionInput is the input schema for the read_definition tool.
type ReadDefinitionInput struct {
	File   string `json:"file" jsonschema_description:"Relative file path from the project root (e.g., 'src/mainwindow.cpp')."`
	Symbol string `json:"symbol" jsonschema_description:"Qualified name of the symbol to retrieve (e.g., 'MainWindow::paintEvent' or 'Foo')."`
}

// ReadDefinitionTool creates the read_definition MCP tool.
func ReadDefinitionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "read_definition",
		Description: "Get the source code of a symbol (function, class, member) by qualified name and file path. Returns the complete declaration or definition text. Overloads are all returned.",
	}
}

// ReadDefinitionHandler handles the read_definition tool invocation.
func ReadDefinitionHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, ReadDefinitionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReadDefinitionInput) (*mcp.CallToolResult, any, error) {
		if input.Symbol == "" {
			return nil, nil, fmt.Errorf("symbol name is required")
		}
		doc, err := OpenDocument(input.File)
		if err != nil {
			return nil, nil, err
		}
		defer doc.Close()

		symbols := doc.FindSymbols(input.Symbol)
		if len(symbols) == 0 {
			return nil, nil, fmt.Errorf("symbol %q not found in %s", input.Symbol, input.File)
		}

		text := doc.Text()
		var sb strings.Builder
		for _, s := range symbols {
			r, err := s.Range()
			if err != nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("# %s in %s [%d-%d]\n\n", symbolLabel(s), input.File, lineOf(text, r.Start), lineOf(text, r.End-1)))
			sb.WriteString("```\n")
			sb.WriteString(text[r.Start:r.End])
			sb.WriteString("\n```\n")
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: sb.String()}},
		}, nil, nil
	}
}
