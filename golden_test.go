package sortscript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clydinite/SortScript/internal/snap"
)

// TestGolden walks testdata/ and, for each case, orders the fixture project
// with its ordering file and compares the flattened listing against
// expected.txt.
func TestGolden(t *testing.T) {
	cases, err := os.ReadDir("testdata")
	if err != nil {
		t.Skip("no testdata directory found")
	}

	for _, c := range cases {
		if !c.IsDir() {
			continue
		}
		caseDir := filepath.Join("testdata", c.Name())
		t.Run(c.Name(), func(t *testing.T) {
			runGoldenCase(t, caseDir)
		})
	}
}

func runGoldenCase(t *testing.T, caseDir string) {
	t.Helper()

	src, err := os.ReadFile(filepath.Join(caseDir, "order"))
	require.NoError(t, err)
	ast, err := Parse(string(src))
	require.NoError(t, err)

	root, err := Walk(filepath.Join(caseDir, "project"))
	require.NoError(t, err)

	out, diags := New(ast).Order(root)
	require.Empty(t, diags)

	expected, err := os.ReadFile(filepath.Join(caseDir, "expected.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(expected), flattenListing(out))
}

// flattenListing renders an ordered tree as one indented name per line:
// directories with a trailing slash, groups bracketed, disallowed files
// flagged.
func flattenListing(root *snap.Directory) string {
	var b strings.Builder
	writeListing(&b, root.Children, 0)
	return b.String()
}

func writeListing(b *strings.Builder, nodes []snap.Node, depth int) {
	for _, n := range nodes {
		b.WriteString(strings.Repeat("\t", depth))
		switch v := n.(type) {
		case *snap.Directory:
			b.WriteString(v.Name + "/\n")
			writeListing(b, v.Children, depth+1)
		case *snap.Group:
			b.WriteString("[" + v.Name + "]\n")
			writeListing(b, v.Children, depth+1)
		case *snap.File:
			b.WriteString(v.Name)
			if v.State == snap.StateDisallowed {
				b.WriteString(" (disallowed)")
			}
			b.WriteString("\n")
		}
	}
}
