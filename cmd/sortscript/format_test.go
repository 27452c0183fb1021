package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sortscript "github.com/Clydinite/SortScript"
)

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("text"))
	assert.NoError(t, validateFormat("json"))
	assert.Error(t, validateFormat("yaml"))
	assert.Error(t, validateFormat(""))
}

func sampleTree() *sortscript.Directory {
	return &sortscript.Directory{
		Name: "project",
		Children: []sortscript.Node{
			&sortscript.Directory{Name: "src", Children: []sortscript.Node{
				&sortscript.File{Name: "main.go"},
			}},
			&sortscript.Group{Name: "Config", Children: []sortscript.Node{
				&sortscript.File{Name: "package.json"},
			}},
			&sortscript.File{Name: "secret.env", State: sortscript.StateDisallowed},
			&sortscript.File{Name: "readme.md"},
		},
	}
}

func TestTreeJSON(t *testing.T) {
	out := treeJSON(sampleTree())
	assert.Equal(t, "project", out.Name)
	assert.Equal(t, "directory", out.Kind)
	require.Len(t, out.Children, 4)

	src := out.Children[0]
	assert.Equal(t, "directory", src.Kind)
	require.Len(t, src.Children, 1)
	assert.Equal(t, "main.go", src.Children[0].Name)

	group := out.Children[1]
	assert.Equal(t, "group", group.Kind)
	assert.Equal(t, "Config", group.Name)

	secret := out.Children[2]
	assert.Equal(t, "file", secret.Kind)
	assert.Equal(t, "disallowed", secret.State)

	readme := out.Children[3]
	assert.Equal(t, "", readme.State, "normal files omit the state field")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, treeJSON(sampleTree())))
	s := buf.String()
	assert.Contains(t, s, `"name": "project"`)
	assert.Contains(t, s, `"state": "disallowed"`)
	assert.NotContains(t, s, `"state": "normal"`)
}

func TestASTJSON(t *testing.T) {
	ast, err := sortscript.Parse("readme.md\n*.js @group_by(@basename)\nsrc {\n\t@tiebreaker(@natural)\n}\n@group(\"Build\") {\n\tMakefile\n}")
	require.NoError(t, err)

	out := astJSON(ast)
	require.Len(t, out, 4)

	assert.Equal(t, "file_pattern", out[0]["statement"])
	assert.Equal(t, "readme.md", out[0]["pattern"])

	assert.Equal(t, "file_pattern", out[1]["statement"])
	dirs := out[1]["directives"].([]map[string]any)
	require.Len(t, dirs, 1)
	assert.Equal(t, "group_by", dirs[0]["name"])

	assert.Equal(t, "path_block", out[2]["statement"])
	body := out[2]["body"].([]map[string]any)
	require.Len(t, body, 1)
	assert.Equal(t, "directive", body[0]["statement"])

	assert.Equal(t, "group_block", out[3]["statement"])
	assert.Equal(t, "Build", out[3]["name"])
}

func TestASTJSON_RootBlock(t *testing.T) {
	ast, err := sortscript.Parse("@root {\n\ta.txt\n}")
	require.NoError(t, err)
	out := astJSON(ast)
	require.Len(t, out, 1)
	assert.Equal(t, "root_block", out[0]["statement"])
}

func TestRenderTree(t *testing.T) {
	s := renderTree(sampleTree())
	assert.True(t, strings.HasPrefix(s, "project/") || strings.Contains(s, "project/"))
	assert.Contains(t, s, "src/")
	assert.Contains(t, s, "[Config]")
	assert.Contains(t, s, "main.go")
	assert.Contains(t, s, "readme.md")
}
