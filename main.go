package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/phyBrackets/knut/tools"
)

var skipPatterns []string
var lineLimit int
var verbosity int

var rootCmd = &cobra.Command{
	Use:   "knut",
	Short: "Structural C/C++ code transformation tools",
	Long: `knut parses C/C++ sources into syntax trees and provides tools to
index symbols, run structural pattern queries, read/write/delete
definitions and find references. Edits are applied as atomic blocks
and re-parsed incrementally, so positions stay stable across changes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(verbosity, nil)
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as MCP server (communicates via stdio)",
	Long: `Run as an MCP server that communicates via stdio.
Exposes tools: codemap, read_definition, write_definition,
delete_definition, query, find_references.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(skipPatterns, lineLimit)
	},
}

var mapCmd = &cobra.Command{
	Use:   "map [path]",
	Short: "Index a directory and print the map to stdout",
	Long: `Index a codebase directory and print a compact listing of all symbols
(functions, classes, members) with their line ranges to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		filter, _ := cmd.Flags().GetString("filter")
		return runMap(path, skipPatterns, filter, lineLimit)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <file> <pattern>",
	Short: "Run a structural pattern against a file",
	Long: `Run a tree-sitter pattern against a single file and print every
match with its captures.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(args[0], args[1])
	},
}

var deleteMethodCmd = &cobra.Command{
	Use:   "delete-method <file> <name>",
	Short: "Delete a method or function from a file",
	Long: `Delete the method with the given qualified name (e.g. "Foo::bar")
from the file, declarations and definitions both. Without --signature
every overload is deleted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		signature, _ := cmd.Flags().GetString("signature")
		return runDeleteMethod(args[0], args[1], signature)
	},
}

func init() {
	// Flags on root are inherited by all subcommands
	rootCmd.PersistentFlags().StringArrayVar(&skipPatterns, "skip", nil,
		"Path prefixes to skip by default (can be specified multiple times)")
	rootCmd.PersistentFlags().IntVar(&lineLimit, "limit", tools.DefaultLineLimit,
		"Maximum lines in output (0 = no limit)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0,
		"Logging verbosity (0 = notices and above)")

	mapCmd.Flags().StringP("filter", "f", "",
		"Only show symbols for files matching this path prefix (file or directory)")
	deleteMethodCmd.Flags().String("signature", "",
		"Only delete the overload with this signature, e.g. 'void (int, const QString&)'")

	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(deleteMethodCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
