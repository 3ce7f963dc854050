package main

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/phyBrackets/knut/cpp"
	"github.com/phyBrackets/knut/tools"
)

// serverConfig holds the server configuration
var serverConfig *tools.Config

func runMap(path string, skipPatterns []string, filter string, lineLimit int) error {
	proj, err := tools.OpenProject(path)
	if err != nil {
		return err
	}
	defer proj.Close()

	output, err := tools.FormatCodemap(proj, tools.FormatOptions{
		SkipPatterns: skipPatterns,
		Filter:       filter,
		LineLimit:    lineLimit,
	})
	if err != nil {
		return err
	}
	if output == "" {
		output = "No symbols found in the specified directory."
	}

	fmt.Print(output)
	return nil
}

func runQuery(file, pattern string) error {
	doc, err := tools.OpenDocument(file)
	if err != nil {
		return err
	}
	defer doc.Close()

	matches, err := doc.Query(pattern)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	fmt.Print(tools.FormatMatches(doc.Text(), file, matches))
	return nil
}

func runDeleteMethod(file, name, signature string) error {
	doc, err := tools.OpenDocument(file)
	if err != nil {
		return err
	}
	defer doc.Close()

	count, err := cpp.DeleteMethod(doc, name, signature)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Printf("No method %q found in %s.\n", name, file)
		return nil
	}
	if err := os.WriteFile(doc.Path(), []byte(doc.Text()), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Printf("Deleted %d occurrence(s) of %q from %s.\n", count, name, file)
	return nil
}

func runMCPServer(skipPatterns []string, lineLimit int) error {
	serverConfig = &tools.Config{
		SkipPatterns: skipPatterns,
		LineLimit:    lineLimit,
	}

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "knut",
		Version: "1.0.0",
	}, nil)

	// Register codemap tool
	mcp.AddTool(s, tools.CodemapTool(), tools.CodemapHandler(serverConfig))

	// Register read_definition tool
	mcp.AddTool(s, tools.ReadDefinitionTool(), tools.ReadDefinitionHandler(serverConfig))

	// Register write_definition tool
	mcp.AddTool(s, tools.WriteDefinitionTool(), tools.WriteDefinitionHandler(serverConfig))

	// Register delete_definition tool
	mcp.AddTool(s, tools.DeleteDefinitionTool(), tools.DeleteDefinitionHandler(serverConfig))

	// Register query tool
	mcp.AddTool(s, tools.QueryTool(), tools.QueryHandler(serverConfig))

	// Register find_references tool
	mcp.AddTool(s, tools.FindReferencesTool(), tools.FindReferencesHandler(serverConfig))

	return s.Run(context.Background(), &mcp.StdioTransport{})
}
