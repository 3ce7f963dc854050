package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/phyBrackets/knut/cpp"
)

// DeleteDefinitionInput is the input schema for the delete_definition tool.
type DeleteDefinitionInput struct {
	File      string `json:"file" jsonschema_description:"Relative file path from the project root."`
	Symbol    string `json:"symbol" jsonschema_description:"Qualified name of the method or function to delete (e.g., 'Foo::bar')."`
	Signature string `json:"signature,omitempty" jsonschema_description:"Optional signature filter in the form '<return type> (<parameter types>)'. Without it, every overload is deleted."`
}

// DeleteDefinitionTool creates the delete_definition MCP tool.
func DeleteDefinitionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_definition",
		Description: "Delete a method or function from a file by qualified name. With no signature every overload is deleted. Symbols are removed back-to-front in a single atomic edit block.",
	}
}

// DeleteDefinitionHandler handles the delete_definition tool invocation.
func DeleteDefinitionHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, DeleteDefinitionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteDefinitionInput) (*mcp.CallToolResult, any, error) {
		if input.Symbol == "" {
			return nil, nil, fmt.Errorf("symbol name is required")
		}
		doc, err := OpenDocument(input.File)
		if err != nil {
			return nil, nil, err
		}
		defer doc.Close()

		n, err := cpp.DeleteMethod(doc, input.Symbol, input.Signature)
		if err != nil {
			return nil, nil, err
		}
		if n == 0 {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{Text: fmt.Sprintf("No method %q found in %s", input.Symbol, input.File)},
				},
			}, nil, nil
		}
		if err := os.WriteFile(doc.Path(), []byte(doc.Text()), 0644); err != nil {
			return nil, nil, fmt.Errorf("failed to write file: %w", err)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Deleted %d definition(s) of %s from %s", n, input.Symbol, input.File)},
			},
		}, nil, nil
	}
}
