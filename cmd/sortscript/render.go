package main

import (
	sortscript "github.com/Clydinite/SortScript"
	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
)

var (
	dirStyle        = lipgloss.NewStyle().Bold(true)
	groupStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("6"))
	disallowedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("9"))
)

// renderTree renders an ordered directory as a styled tree. Groups appear
// bracketed, directories bold with a trailing slash, and disallowed files
// struck through.
func renderTree(root *sortscript.Directory) string {
	t := ltree.Root(dirStyle.Render(root.Name + "/"))
	addChildren(t, root.Children)
	return t.String()
}

func addChildren(t *ltree.Tree, nodes []sortscript.Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *sortscript.Directory:
			sub := ltree.Root(dirStyle.Render(v.Name + "/"))
			addChildren(sub, v.Children)
			t.Child(sub)
		case *sortscript.Group:
			sub := ltree.Root(groupStyle.Render("[" + v.Name + "]"))
			addChildren(sub, v.Children)
			t.Child(sub)
		case *sortscript.File:
			label := v.Name
			if v.State == sortscript.StateDisallowed {
				label = disallowedStyle.Render(label)
			}
			t.Child(label)
		}
	}
}
