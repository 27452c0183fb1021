package main

import (
	"fmt"
	"os"
	"path/filepath"

	sortscript "github.com/Clydinite/SortScript"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an ordering file and dump its AST",
	Long:  "Parses the given ordering file (default ./.order) and prints the resulting statement tree, for debugging ordering files.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := filepath.Join(".", sortscript.OrderFileName)
	if len(args) > 0 {
		path = args[0]
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ast, err := sortscript.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return printJSON(os.Stdout, astJSON(ast))
}
