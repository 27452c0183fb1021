package rules

import "github.com/Clydinite/SortScript/internal/dsl"

// RequiredPattern is one pattern tagged @required, kept with its source text
// for diagnostics.
type RequiredPattern struct {
	Source  string
	Matcher *Matcher
}

// CollectRequired gathers every required-tagged pattern in the statement
// tree, irrespective of block nesting: required-ness is file-wide. Patterns
// that fail to compile are skipped; the validator cannot report matches for
// them anyway.
func CollectRequired(stmts []dsl.Statement) []RequiredPattern {
	var out []RequiredPattern
	collectRequired(stmts, &out)
	return out
}

func collectRequired(stmts []dsl.Statement, out *[]RequiredPattern) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *dsl.FilePattern:
			if hasRequired(s.Directives) {
				appendRequired(out, s.Pattern)
			}
		case *dsl.PathBlock:
			if hasRequired(s.Directives) && !s.Pattern.IsEmpty() {
				appendRequired(out, s.Pattern)
			}
			collectRequired(s.Body, out)
		case *dsl.GroupBlock:
			collectRequired(s.Body, out)
		}
	}
}

func hasRequired(dirs []*dsl.Directive) bool {
	for _, d := range dirs {
		if d.Name == "required" {
			return true
		}
	}
	return false
}

func appendRequired(out *[]RequiredPattern, pat dsl.Pattern) {
	m, err := CompilePattern(pat)
	if err != nil {
		return
	}
	*out = append(*out, RequiredPattern{Source: pat.Source(), Matcher: m})
}
