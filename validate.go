package sortscript

import (
	"github.com/Clydinite/SortScript/internal/rules"
	"github.com/Clydinite/SortScript/internal/snap"
)

// ValidateRequired reports every required-tagged pattern that matches no
// node anywhere in the snapshot. Required-ness is file-wide: patterns are
// collected from the whole AST regardless of block nesting and searched
// against basenames across the whole tree. The snapshot is not modified.
func ValidateRequired(ast *OrderFile, root *Directory) []string {
	if ast == nil || root == nil {
		return nil
	}
	patterns := rules.CollectRequired(ast.Statements)
	if len(patterns) == 0 {
		return nil
	}

	var names []string
	collectBasenames(root, &names)

	var missing []string
	for _, p := range patterns {
		found := false
		for _, name := range names {
			if p.Matcher.Match(name) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, p.Source)
		}
	}
	return missing
}

func collectBasenames(dir *snap.Directory, names *[]string) {
	for _, c := range dir.Children {
		*names = append(*names, snap.NameOf(c))
		if d, ok := c.(*snap.Directory); ok {
			collectBasenames(d, names)
		}
	}
}
