// Package rules compiles ordering-file statements into the per-scope rule
// sets the engine evaluates: compiled pattern matchers, tiebreaker chains,
// explicit placement order, and category order. Scopes are recomputed from
// the immutable AST on every ordering pass; nothing here holds state across
// calls.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher matches item names or scope-relative paths against one compiled
// pattern. Literal patterns compare exactly and skip regexp entirely.
type Matcher struct {
	exact string
	re    *regexp.Regexp
}

// CompileGlob compiles a glob pattern. `*` and `?` stop at path separators;
// `**` crosses them.
func CompileGlob(pattern string) (*Matcher, error) {
	pattern = strings.TrimSuffix(pattern, "/")
	if pattern == "" {
		return nil, &CompileError{Pattern: pattern, Detail: "empty pattern"}
	}
	if !strings.ContainsAny(pattern, "*?") {
		return &Matcher{exact: pattern}, nil
	}
	re, err := regexp.Compile("^" + globToRegex(pattern) + "$")
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Detail: err.Error()}
	}
	return &Matcher{re: re}, nil
}

// CompileRegex compiles a regex literal. Flags follow the usual i/m/s
// meaning; other flags are ignored. A malformed body is a CompileError, which
// the scope compiler reports and skips rather than aborting the pass.
func CompileRegex(body, flags string) (*Matcher, error) {
	var prefix string
	for _, f := range []struct {
		flag byte
		mode string
	}{{'i', "i"}, {'m', "m"}, {'s', "s"}} {
		if strings.IndexByte(flags, f.flag) >= 0 {
			prefix += f.mode
		}
	}
	if prefix != "" {
		prefix = "(?" + prefix + ")"
	}
	re, err := regexp.Compile(prefix + body)
	if err != nil {
		return nil, &CompileError{Pattern: "/" + body + "/" + flags, Detail: err.Error()}
	}
	return &Matcher{re: re}, nil
}

// Match reports whether name matches. Trailing slashes on the candidate are
// stripped before matching.
func (m *Matcher) Match(name string) bool {
	name = strings.TrimSuffix(name, "/")
	if m.exact != "" {
		return name == m.exact
	}
	if m.re == nil {
		return false
	}
	return m.re.MatchString(name)
}

// globToRegex translates a glob into an anchorless regexp body. The cheapest
// strategies come first: "**" crosses directory boundaries, "*" and "?" stay
// within one path segment, and everything else is quoted verbatim.
func globToRegex(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			if i+1 < len(glob) && glob[i+1] == '*' {
				b.WriteString(".*")
				i++
				// Collapse "**/" so the pattern also matches zero segments.
				if i+1 < len(glob) && glob[i+1] == '/' {
					b.WriteString("/?")
					i++
				}
			} else {
				b.WriteString("[^/]*")
			}
		case '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String()
}

// CompileError reports a pattern that could not be compiled, typically a
// malformed regex in a directive argument. The affected rule is skipped.
type CompileError struct {
	Pattern string
	Detail  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %s: %s", e.Pattern, e.Detail)
}
