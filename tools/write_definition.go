package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/phyBrackets/knut/document"
)

// WriteDefinitionInput is the input schema for the write_definition tool.
type WriteDefinitionInput struct {
	File      string `json:"file" jsonschema_description:"Relative file path from the project root."`
	Symbol    string `json:"symbol" jsonschema_description:"Qualified name of the symbol to replace."`
	Signature string `json:"signature,omitempty" jsonschema_description:"Optional signature filter in the form '<return type> (<parameter types>)' to pick one overload. Without it the symbol name must be unambiguous."`
	Code      string `json:"code" jsonschema_description:"The new source code for the symbol. Replaces the entire symbol definition."`
}

// WriteDefinitionTool creates the write_definition MCP tool.
func WriteDefinitionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "write_definition",
		Description: "Replace the source code of a symbol by qualified name and file path. The inverse of read_definition. The replacement is applied as one atomic edit block.",
	}
}

// WriteDefinitionHandler handles the write_definition tool invocation.
func WriteDefinitionHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, WriteDefinitionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WriteDefinitionInput) (*mcp.CallToolResult, any, error) {
		if input.Symbol == "" {
			return nil, nil, fmt.Errorf("symbol name is required")
		}
		if input.Code == "" {
			return nil, nil, fmt.Errorf("code is required")
		}
		doc, err := OpenDocument(input.File)
		if err != nil {
			return nil, nil, err
		}
		defer doc.Close()

		if err := ReplaceSymbol(doc, input.Symbol, input.Signature, input.Code); err != nil {
			return nil, nil, err
		}
		if err := os.WriteFile(doc.Path(), []byte(doc.Text()), 0644); err != nil {
			return nil, nil, fmt.Errorf("failed to write file: %w", err)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Successfully replaced %s in %s", input.Symbol, input.File)},
			},
		}, nil, nil
	}
}

// ReplaceSymbol replaces a symbol's source text in the document buffer,
// as one atomic edit block.
func ReplaceSymbol(doc *document.Document, name, signature, code string) error {
	var sym *document.Symbol
	if signature != "" {
		sym = doc.FindSymbol(name, signature)
	} else {
		symbols := doc.FindSymbols(name)
		if len(symbols) > 1 {
			return fmt.Errorf("symbol %q is ambiguous in %s; pass a signature", name, doc.Path())
		}
		if len(symbols) == 1 {
			sym = symbols[0]
		}
	}
	if sym == nil {
		return fmt.Errorf("symbol %q not found in %s", name, doc.Path())
	}
	r, err := sym.Range()
	if err != nil {
		return err
	}

	session, err := doc.Begin()
	if err != nil {
		return err
	}
	if err := session.ReplaceRange(r, strings.TrimSuffix(code, "\n")); err != nil {
		session.Rollback()
		return err
	}
	return session.Commit()
}
