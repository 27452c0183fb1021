package main

import (
	"fmt"
	"os"

	sortscript "github.com/Clydinite/SortScript"
	"github.com/spf13/cobra"
)

var flagOrderFile string

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Render a directory ordered by its .order file",
	Long:  "Parses <path>/.order (or --order-file), walks the directory, applies the ordering rules, and renders the result. An invalid ordering file falls back to the default order.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().StringVar(&flagOrderFile, "order-file", "", "ordering file to use instead of <path>/.order")
}

func runTree(cmd *cobra.Command, args []string) error {
	dir, err := resolveTargetDir(args)
	if err != nil {
		return err
	}

	ast := loadAST(dir)

	root, err := sortscript.Walk(dir)
	if err != nil {
		return fmt.Errorf("walking %s: %w", dir, err)
	}

	engine := sortscript.New(ast)
	ordered, diags := engine.Order(root)
	for _, d := range diags {
		logger.Warn("skipped rule", "err", d)
	}

	if flagFormat == "json" {
		return printJSON(os.Stdout, treeJSON(ordered))
	}
	fmt.Println(renderTree(ordered))
	return nil
}

// loadAST parses the ordering file for dir. Ordering files are user-edited
// and transiently invalid while being typed, so a parse failure degrades to
// the empty AST (default ordering) with a warning instead of failing the
// command.
func loadAST(dir string) *sortscript.OrderFile {
	var ast *sortscript.OrderFile
	var err error
	if flagOrderFile != "" {
		var src []byte
		src, err = os.ReadFile(flagOrderFile)
		if err == nil {
			ast, err = sortscript.Parse(string(src))
		}
	} else {
		ast, err = sortscript.LoadOrderFile(dir)
	}
	if err != nil {
		logger.Warn("falling back to default ordering", "err", err)
		return &sortscript.OrderFile{}
	}
	logger.Debug("parsed ordering file", "statements", len(ast.Statements))
	return ast
}
