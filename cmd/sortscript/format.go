package main

import (
	"encoding/json"
	"fmt"
	"io"

	sortscript "github.com/Clydinite/SortScript"
)

// validateFormat checks the persistent --format flag.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("invalid format %q: must be text or json", format)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// nodeJSON is the JSON shape of an ordered tree node.
type nodeJSON struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	State    string     `json:"state,omitempty"`
	Children []nodeJSON `json:"children,omitempty"`
}

func treeJSON(root *sortscript.Directory) nodeJSON {
	out := nodeJSON{Name: root.Name, Kind: sortscript.KindDirectory.String()}
	for _, c := range root.Children {
		out.Children = append(out.Children, childJSON(c))
	}
	return out
}

func childJSON(n sortscript.Node) nodeJSON {
	switch v := n.(type) {
	case *sortscript.Directory:
		return treeJSON(v)
	case *sortscript.Group:
		out := nodeJSON{Name: v.Name, Kind: sortscript.KindGroup.String()}
		for _, c := range v.Children {
			out.Children = append(out.Children, childJSON(c))
		}
		return out
	case *sortscript.File:
		out := nodeJSON{Name: v.Name, Kind: sortscript.KindFile.String()}
		if v.State == sortscript.StateDisallowed {
			out.State = v.State.String()
		}
		return out
	}
	return nodeJSON{}
}

// astJSON renders a parsed ordering file as a plain statement tree.
func astJSON(ast *sortscript.OrderFile) []map[string]any {
	return statementsJSON(ast.Statements)
}

func statementsJSON(stmts []sortscript.Statement) []map[string]any {
	out := make([]map[string]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, statementJSON(s))
	}
	return out
}

func statementJSON(s sortscript.Statement) map[string]any {
	switch v := s.(type) {
	case *sortscript.FilePattern:
		return map[string]any{
			"statement":  "file_pattern",
			"pattern":    v.Pattern.Source(),
			"directives": directivesJSON(v.Directives),
		}
	case *sortscript.PathBlock:
		kind := "path_block"
		if v.Pattern.IsEmpty() {
			kind = "root_block"
		}
		return map[string]any{
			"statement":  kind,
			"pattern":    v.Pattern.Source(),
			"directives": directivesJSON(v.Directives),
			"body":       statementsJSON(v.Body),
		}
	case *sortscript.GroupBlock:
		return map[string]any{
			"statement": "group_block",
			"name":      v.Name,
			"body":      statementsJSON(v.Body),
		}
	case *sortscript.Directive:
		return map[string]any{
			"statement": "directive",
			"directive": directiveJSON(v),
		}
	}
	return map[string]any{"statement": "unknown"}
}

func directivesJSON(dirs []*sortscript.Directive) []map[string]any {
	out := make([]map[string]any, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, directiveJSON(d))
	}
	return out
}

func directiveJSON(d *sortscript.Directive) map[string]any {
	args := make([]any, 0, len(d.Args))
	for _, a := range d.Args {
		args = append(args, argJSON(a))
	}
	return map[string]any{"name": d.Name, "args": args}
}

func argJSON(a sortscript.Arg) any {
	switch v := a.(type) {
	case *sortscript.StringArg:
		return map[string]any{"string": v.Value}
	case *sortscript.RegexArg:
		return map[string]any{"regex": v.Source, "flags": v.Flags}
	case *sortscript.CaptureArg:
		return map[string]any{"capture": v.Name}
	case *sortscript.IdentArg:
		return map[string]any{"ident": v.Value}
	case *sortscript.Directive:
		return map[string]any{"directive": directiveJSON(v)}
	}
	return nil
}
