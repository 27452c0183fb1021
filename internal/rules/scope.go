package rules

import (
	"path"
	"regexp"

	"github.com/Clydinite/SortScript/internal/dsl"
	"github.com/Clydinite/SortScript/internal/snap"
)

// Rule is the compiled form of a file pattern with directives. Rules claim
// matching items in declaration order and may hide them, mark their state,
// or bucket them into groups.
type Rule struct {
	Pattern     dsl.Pattern
	Matcher     *Matcher
	Required    bool
	Hidden      bool
	Tiebreakers []Tiebreaker
	GroupName   string
	GroupBy     *GroupBy
	AllowIf     *regexp.Regexp
	DisallowIf  *regexp.Regexp
}

// Match reports whether the rule claims an item with the given name.
func (r *Rule) Match(name string) bool {
	return r.Matcher.Match(name)
}

// StateOf evaluates the rule's state predicates for a file name. disallow_if
// is checked first when both predicates are present.
func (r *Rule) StateOf(name string) snap.State {
	if r.DisallowIf != nil && r.DisallowIf.MatchString(name) {
		return snap.StateDisallowed
	}
	if r.AllowIf != nil && !r.AllowIf.MatchString(name) {
		return snap.StateDisallowed
	}
	return snap.StateNormal
}

// GroupBy derives a group bucket key from a file name: either the basename
// with every extension stripped, or capture group 1 of a regex match. An
// empty key leaves the file ungrouped.
type GroupBy struct {
	Basename bool
	Regex    *regexp.Regexp
}

// Key returns the bucket key for name, or "" when none applies.
func (g *GroupBy) Key(name string) string {
	if g.Basename {
		return stripExtensions(name)
	}
	m := g.Regex.FindStringSubmatch(name)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// stripExtensions removes extensions until none remain: "a.test.js" -> "a".
// Dotfiles like ".gitignore" are kept whole.
func stripExtensions(name string) string {
	for {
		ext := path.Ext(name)
		if ext == "" || ext == name {
			return name
		}
		name = name[:len(name)-len(ext)]
	}
}

// GroupRule is a compiled @group block: a fixed bucket whose members are
// matched literally against the directory being processed.
type GroupRule struct {
	Name    string
	Members []string
}

// Scope is the compiled rule set governing one directory level.
type Scope struct {
	Rules         []*Rule
	Groups        []*GroupRule
	Tiebreakers   []Tiebreaker
	ExplicitOrder []string
	TypeOrder     []snap.Kind
}

// EffectiveTiebreakers returns the scope's declared tiebreakers, falling
// back to the alphabetical default.
func (s *Scope) EffectiveTiebreakers() []Tiebreaker {
	if len(s.Tiebreakers) == 0 {
		return DefaultTiebreakers
	}
	return s.Tiebreakers
}

// Compile folds a statement list into a scope. Non-root path blocks are the
// engine's concern and are passed over here; an @root block compiles
// recursively and merges into this scope at its encounter position, with
// locally declared tiebreakers and type order winning over the merged ones.
// Rules that fail to compile are reported and skipped; they never abort the
// ordering pass.
func Compile(stmts []dsl.Statement) (*Scope, []error) {
	sc := &Scope{}
	var diags []error
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *dsl.FilePattern:
			if len(s.Directives) == 0 && s.Pattern.IsLiteral() {
				sc.ExplicitOrder = append(sc.ExplicitOrder, s.Pattern.Raw)
				continue
			}
			r, err := CompileRule(s.Pattern, s.Directives)
			if err != nil {
				diags = append(diags, err)
				continue
			}
			sc.Rules = append(sc.Rules, r)
		case *dsl.Directive:
			sc.applyDirective(s)
		case *dsl.PathBlock:
			if !s.Pattern.IsEmpty() {
				continue
			}
			inner, d := Compile(s.Body)
			diags = append(diags, d...)
			sc.mergeRoot(inner)
		case *dsl.GroupBlock:
			sc.Groups = append(sc.Groups, compileGroupBlock(s))
		}
	}
	return sc, diags
}

// CompileRule compiles one pattern plus directive list. A malformed regex in
// the pattern or any directive argument fails the whole rule.
func CompileRule(pat dsl.Pattern, dirs []*dsl.Directive) (*Rule, error) {
	m, err := CompilePattern(pat)
	if err != nil {
		return nil, err
	}
	r := &Rule{Pattern: pat, Matcher: m}
	for _, d := range dirs {
		if err := r.applyDirective(pat, m, d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// CompilePattern compiles a glob or regex pattern into a matcher.
func CompilePattern(pat dsl.Pattern) (*Matcher, error) {
	if pat.IsRegex {
		return CompileRegex(pat.Raw, pat.Flags)
	}
	return CompileGlob(pat.Raw)
}

// TiebreakersFromDirectives extracts the tiebreaker chain from a directive
// list, for block headers whose tiebreaker overrides the nested scope.
func TiebreakersFromDirectives(dirs []*dsl.Directive) []Tiebreaker {
	for _, d := range dirs {
		if d.Name == "tiebreaker" {
			return parseTiebreakerArgs(d.Args)
		}
	}
	return nil
}

func (r *Rule) applyDirective(pat dsl.Pattern, m *Matcher, d *dsl.Directive) error {
	switch d.Name {
	case "required":
		r.Required = true
	case "hidden":
		r.Hidden = true
	case "tiebreaker":
		r.Tiebreakers = parseTiebreakerArgs(d.Args)
	case "group":
		return r.applyGroup(pat, m, d.Args)
	case "group_by":
		return r.applyGroupBy(pat, m, d.Args)
	case "allow_if":
		re, err := regexArg(d.Args)
		if err != nil {
			return err
		}
		r.AllowIf = re
	case "disallow_if":
		re, err := regexArg(d.Args)
		if err != nil {
			return err
		}
		r.DisallowIf = re
	}
	// Unknown directive names are syntactically legal and ignored.
	return nil
}

func (r *Rule) applyGroup(pat dsl.Pattern, m *Matcher, args []dsl.Arg) error {
	if len(args) != 1 {
		return nil
	}
	switch a := args[0].(type) {
	case *dsl.StringArg:
		r.GroupName = a.Value
	case *dsl.IdentArg:
		r.GroupName = a.Value
	case *dsl.CaptureArg:
		// @group($1) buckets by the pattern's own capture group.
		if pat.IsRegex && m.re != nil {
			r.GroupBy = &GroupBy{Regex: m.re}
		}
	}
	return nil
}

func (r *Rule) applyGroupBy(pat dsl.Pattern, m *Matcher, args []dsl.Arg) error {
	if len(args) != 1 {
		return nil
	}
	switch a := args[0].(type) {
	case *dsl.Directive:
		if a.Name == "basename" {
			r.GroupBy = &GroupBy{Basename: true}
		}
	case *dsl.IdentArg:
		if a.Value == "basename" {
			r.GroupBy = &GroupBy{Basename: true}
		}
	case *dsl.RegexArg:
		km, err := CompileRegex(a.Source, a.Flags)
		if err != nil {
			return err
		}
		r.GroupBy = &GroupBy{Regex: km.re}
	case *dsl.CaptureArg:
		if pat.IsRegex && m.re != nil {
			r.GroupBy = &GroupBy{Regex: m.re}
		}
	}
	return nil
}

// regexArg extracts and compiles the single regex argument of allow_if and
// disallow_if.
func regexArg(args []dsl.Arg) (*regexp.Regexp, error) {
	if len(args) != 1 {
		return nil, nil
	}
	a, ok := args[0].(*dsl.RegexArg)
	if !ok {
		return nil, nil
	}
	m, err := CompileRegex(a.Source, a.Flags)
	if err != nil {
		return nil, err
	}
	return m.re, nil
}

// applyDirective folds a bare scope-level directive into the scope.
func (s *Scope) applyDirective(d *dsl.Directive) {
	switch d.Name {
	case "tiebreaker":
		s.Tiebreakers = parseTiebreakerArgs(d.Args)
	case "type":
		s.TypeOrder = parseKindArgs(d.Args)
	case "files":
		s.markKind(snap.KindFile)
	case "folders":
		s.markKind(snap.KindDirectory)
	case "groups":
		s.markKind(snap.KindGroup)
	}
}

// markKind appends a category marker used as a bare pattern, building a type
// order from encounter positions.
func (s *Scope) markKind(k snap.Kind) {
	for _, have := range s.TypeOrder {
		if have == k {
			return
		}
	}
	s.TypeOrder = append(s.TypeOrder, k)
}

// mergeRoot merges a compiled @root block into the scope. Rules, groups, and
// explicit order accumulate; tiebreakers and type order merge upward only
// when the outer scope has not declared its own.
func (s *Scope) mergeRoot(inner *Scope) {
	s.Rules = append(s.Rules, inner.Rules...)
	s.Groups = append(s.Groups, inner.Groups...)
	s.ExplicitOrder = append(s.ExplicitOrder, inner.ExplicitOrder...)
	if len(s.Tiebreakers) == 0 {
		s.Tiebreakers = inner.Tiebreakers
	}
	if len(s.TypeOrder) == 0 {
		s.TypeOrder = inner.TypeOrder
	}
}

func compileGroupBlock(g *dsl.GroupBlock) *GroupRule {
	gr := &GroupRule{Name: g.Name}
	for _, stmt := range g.Body {
		if fp, ok := stmt.(*dsl.FilePattern); ok && fp.Pattern.IsLiteral() {
			gr.Members = append(gr.Members, fp.Pattern.Raw)
		}
	}
	return gr
}

// parseTiebreakerArgs resolves tiebreaker names from directive arguments,
// accepting both @name and bare-word forms. Unknown names are ignored.
func parseTiebreakerArgs(args []dsl.Arg) []Tiebreaker {
	var keys []Tiebreaker
	for _, arg := range args {
		name := argName(arg)
		if t, ok := ParseTiebreaker(name); ok {
			keys = append(keys, t)
		}
	}
	return keys
}

// parseKindArgs resolves @type arguments into a category order.
func parseKindArgs(args []dsl.Arg) []snap.Kind {
	var kinds []snap.Kind
	seen := map[snap.Kind]bool{}
	add := func(k snap.Kind) {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	for _, arg := range args {
		switch argName(arg) {
		case "files":
			add(snap.KindFile)
		case "folders":
			add(snap.KindDirectory)
		case "groups":
			add(snap.KindGroup)
		}
	}
	return kinds
}

// argName returns the textual name of a directive argument, de-prefixing the
// leading @ of nested directives.
func argName(arg dsl.Arg) string {
	switch a := arg.(type) {
	case *dsl.Directive:
		return a.Name
	case *dsl.IdentArg:
		return a.Value
	case *dsl.StringArg:
		return a.Value
	}
	return ""
}
