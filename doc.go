// Package sortscript provides deterministic, scope-aware ordering of
// directory trees driven by a declarative .order file. It compiles the
// ordering DSL (patterns, directives, nested path blocks) and applies the
// resulting rules to a pre-materialized directory snapshot, producing a
// reordered tree with synthetic group containers and per-file allow state.
//
// # Pipeline
//
// Ordering runs in three phases:
//
//  1. Parse: tokenize and parse the .order source into an immutable AST.
//     Parsing is all-or-nothing; an invalid file yields an error and callers
//     fall back to the default ordering.
//
//  2. Compile: per directory scope, fold statements into compiled rules,
//     tiebreakers, explicit placement order, and category order. Scopes are
//     recompiled from the AST on every call, so an Engine is freely
//     re-entrant.
//
//  3. Order: recursively arrange each directory's children: group-block
//     buckets first, then explicitly listed names, then rule-claimed items,
//     then everything else, with a final normalization sort by the scope's
//     tiebreakers and category order. Explicit listings always win.
//
// # Usage
//
// Parse an ordering file, build a snapshot, and order it:
//
//	ast, err := sortscript.LoadOrderFile(dir)
//	if err != nil { ... }
//
//	root, err := sortscript.Walk(dir)
//	if err != nil { ... }
//
//	engine := sortscript.New(ast)
//	ordered, diags := engine.Order(root)
//	missing := sortscript.ValidateRequired(ast, root)
//
// The engine never touches the filesystem: Walk and LoadOrderFile are host
// conveniences, and the size/modified/created tiebreakers read stat fields
// captured in the snapshot or supplied via WithStat.
//
// # DSL surface
//
// Statements are file patterns (glob, quoted name, or /regex/), path blocks
// scoping nested statements to matched children, @group("name") blocks, and
// bare scope directives. Pattern directives: required, tiebreaker, group,
// group_by, hidden, allow_if, disallow_if. Scope directives: tiebreaker and
// type, plus the @files/@folders/@groups category markers. @root merges its
// body into the enclosing scope. # starts a line comment. Unknown directive
// names are accepted and ignored.
package sortscript
