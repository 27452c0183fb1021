package main

import (
	"fmt"
	"os"

	sortscript "github.com/Clydinite/SortScript"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report required files missing from a directory tree",
	Long:  "Collects every @required pattern in the ordering file and searches the whole tree for matches. Exits non-zero when any pattern matches nothing.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir, err := resolveTargetDir(args)
	if err != nil {
		return err
	}

	ast, err := sortscript.LoadOrderFile(dir)
	if err != nil {
		return fmt.Errorf("parsing ordering file: %w", err)
	}

	root, err := sortscript.Walk(dir)
	if err != nil {
		return fmt.Errorf("walking %s: %w", dir, err)
	}

	missing := sortscript.ValidateRequired(ast, root)

	if flagFormat == "json" {
		if err := printJSON(os.Stdout, map[string]any{"missing": missing}); err != nil {
			return err
		}
	} else {
		for _, pattern := range missing {
			fmt.Printf("missing required file: %s\n", pattern)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%d required pattern(s) unmatched", len(missing))
	}
	logger.Debug("all required patterns matched")
	return nil
}
