package sortscript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clydinite/SortScript/internal/snap"
)

func TestNew_NilASTActsAsEmptyOrderFile(t *testing.T) {
	root := dirNode("", fileNode("b.txt"), dirNode("a"), fileNode("a.txt"))
	out, diags := New(nil).Order(root)
	require.Empty(t, diags)
	assert.Equal(t, []string{"a", "a.txt", "b.txt"}, listing(out))
}

func TestParse_InvalidSourceReturnsNoAST(t *testing.T) {
	ast, err := Parse("docs {")
	require.Error(t, err)
	assert.Nil(t, ast)
}

func TestLoadOrderFile_Missing(t *testing.T) {
	ast, err := LoadOrderFile(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, ast)
	assert.Empty(t, ast.Statements)
}

func TestLoadOrderFile_Valid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, OrderFileName), []byte("readme.md\n*.log @hidden\n"), 0o644))
	ast, err := LoadOrderFile(dir)
	require.NoError(t, err)
	assert.Len(t, ast.Statements, 2)
}

func TestLoadOrderFile_InvalidReturnsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, OrderFileName), []byte("docs {\n"), 0o644))
	ast, err := LoadOrderFile(dir)
	require.Error(t, err)
	assert.Nil(t, ast)
}

func TestWalk_BuildsSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main\n"), 0o644))

	root, err := Walk(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"readme.md", "src"}, listing(root))

	readme, ok := root.Children[0].(*snap.File)
	require.True(t, ok)
	require.NotNil(t, readme.Info)
	assert.Equal(t, int64(5), readme.Info.Size)
	assert.Equal(t, filepath.Join(dir, "readme.md"), readme.Path)

	src, ok := root.Children[1].(*snap.Directory)
	require.True(t, ok)
	assert.Equal(t, []string{"main.go"}, listing(src))
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
