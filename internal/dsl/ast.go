package dsl

import "strings"

// OrderFile is the root of a parsed ordering file. It is immutable after
// Parse returns and safe to share across goroutines; the engine recompiles
// scopes from it on every call.
type OrderFile struct {
	Statements []Statement
}

// Statement is the closed set of top-level constructs in an ordering file.
// A bare *Directive is itself a statement applying to the enclosing scope.
type Statement interface {
	isStatement()
}

// Pattern is a file or path pattern: a bare glob word, a quoted name, or a
// regex literal. The zero value is the empty pattern, which only occurs as
// the header of an @root block.
type Pattern struct {
	Raw     string // glob text, or regex body without delimiters
	IsRegex bool
	Flags   string // regex flags, "" for globs
}

// IsEmpty reports whether the pattern is absent (the @root block header).
func (p Pattern) IsEmpty() bool {
	return !p.IsRegex && p.Raw == ""
}

// IsLiteral reports whether the pattern is a plain filename with no glob
// metacharacters. Literal patterns without directives contribute to the
// explicit placement order instead of compiling to a rule.
func (p Pattern) IsLiteral() bool {
	return !p.IsRegex && p.Raw != "" && !strings.ContainsAny(p.Raw, "*?")
}

// Source renders the pattern as it appeared in the ordering file, for use in
// diagnostics and missing-required reports.
func (p Pattern) Source() string {
	if p.IsRegex {
		return "/" + p.Raw + "/" + p.Flags
	}
	return p.Raw
}

// FilePattern attaches directives to one pattern. With no directives and a
// literal pattern it pins the named file to an explicit position; otherwise
// it compiles to a rule.
type FilePattern struct {
	Pattern    Pattern
	Directives []*Directive
}

// PathBlock scopes nested statements to the children matched by Pattern.
// Header directives apply to the matched children themselves; an empty
// pattern is the @root form, whose body merges into the enclosing scope.
type PathBlock struct {
	Pattern    Pattern
	Directives []*Directive
	Body       []Statement
}

// GroupBlock collects literally listed member files into one named group.
type GroupBlock struct {
	Name string
	Body []Statement
}

// Directive is an @name(args...) annotation. Unknown names are syntactically
// legal and semantically ignored by the rule compiler.
type Directive struct {
	Name string
	Args []Arg
}

func (*FilePattern) isStatement() {}
func (*PathBlock) isStatement()   {}
func (*GroupBlock) isStatement()  {}
func (*Directive) isStatement()   {}

// Arg is the closed set of directive argument forms.
type Arg interface {
	isArg()
}

// StringArg is a double-quoted literal with escapes resolved.
type StringArg struct {
	Value string
}

// RegexArg is a /body/flags literal, kept as source text; the rule compiler
// owns regex compilation and its failure mode.
type RegexArg struct {
	Source string
	Flags  string
}

// CaptureArg is a $1 or $name capture group reference.
type CaptureArg struct {
	Name string
}

// IdentArg is a bare word argument.
type IdentArg struct {
	Value string
}

func (*StringArg) isArg()  {}
func (*RegexArg) isArg()   {}
func (*CaptureArg) isArg() {}
func (*IdentArg) isArg()   {}
func (*Directive) isArg()  {}
