package hclgrid

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeGrid(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	path := writeGrid(t, "grid.hcl", `
node "value" "greeting" {
  arguments {
    text = "hello"
  }
}

node "concat" "sentence" {
  arguments {
    separator = " "
  }
  depends_on = ["greeting"]
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Nodes, 2)

	greeting := model.Nodes[0]
	assert.Equal(t, "value", greeting.Fn)
	assert.Equal(t, "greeting", greeting.Name)
	assert.Equal(t, cty.StringVal("hello"), greeting.Arguments["text"])
	assert.Empty(t, greeting.DependsOn)

	sentence := model.Nodes[1]
	assert.Equal(t, "concat", sentence.Fn)
	assert.Equal(t, []string{"greeting"}, sentence.DependsOn)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`
node "value" "a" {}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`
node "value" "b" {
  depends_on = ["a"]
}
`), 0o644))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Nodes, 2)
	assert.Equal(t, "a", model.Nodes[0].Name)
	assert.Equal(t, "b", model.Nodes[1].Name)
}

func TestLoad_NoArgumentsBlock(t *testing.T) {
	path := writeGrid(t, "grid.hcl", `
node "value" "bare" {}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Nodes, 1)
	assert.Nil(t, model.Nodes[0].Arguments)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		assert.ErrorContains(t, err, "reading grid path")
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeGrid(t, "grid.hcl", `node "value" {`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.Error(t, err)
	})

	t.Run("unknown dependency", func(t *testing.T) {
		path := writeGrid(t, "grid.hcl", `
node "value" "a" {
  depends_on = ["ghost"]
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, `depends on undeclared node "ghost"`)
	})

	t.Run("duplicate node name", func(t *testing.T) {
		path := writeGrid(t, "grid.hcl", `
node "value" "a" {}
node "concat" "a" {}
`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, `duplicate node name "a"`)
	})
}
