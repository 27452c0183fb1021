package sortscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired_AllPresent(t *testing.T) {
	ast, err := Parse("license @required\n*.md @required")
	require.NoError(t, err)
	root := dirNode("", fileNode("license"), fileNode("readme.md"))
	assert.Empty(t, ValidateRequired(ast, root))
}

func TestValidateRequired_ReportsMissing(t *testing.T) {
	ast, err := Parse("license @required\nreadme.md @required")
	require.NoError(t, err)
	root := dirNode("", fileNode("main.go"), fileNode("readme.md"))
	assert.Equal(t, []string{"license"}, ValidateRequired(ast, root))
}

func TestValidateRequired_MatchesAnywhereInTree(t *testing.T) {
	ast, err := Parse("readme.md @required")
	require.NoError(t, err)
	// The required file lives two levels down; requiredness is satisfied by
	// a basename match anywhere in the snapshot.
	root := dirNode("", dirNode("docs", dirNode("guides", fileNode("readme.md"))))
	assert.Empty(t, ValidateRequired(ast, root))
}

func TestValidateRequired_NestedDeclaration(t *testing.T) {
	ast, err := Parse("src {\n\tmain.go @required\n}")
	require.NoError(t, err)
	root := dirNode("", fileNode("other.go"))
	assert.Equal(t, []string{"main.go"}, ValidateRequired(ast, root))
}

func TestValidateRequired_GlobPattern(t *testing.T) {
	ast, err := Parse("*.lock @required")
	require.NoError(t, err)
	missing := ValidateRequired(ast, dirNode("", fileNode("go.sum")))
	assert.Equal(t, []string{"*.lock"}, missing)
	assert.Empty(t, ValidateRequired(ast, dirNode("", fileNode("flake.lock"))))
}

func TestValidateRequired_NilInputs(t *testing.T) {
	assert.Nil(t, ValidateRequired(nil, dirNode("")))
	ast, err := Parse("license @required")
	require.NoError(t, err)
	assert.Nil(t, ValidateRequired(ast, nil))
}
