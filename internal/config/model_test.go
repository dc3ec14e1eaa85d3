package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/evalgridgo/internal/nodeid"
)

func TestNode_Key(t *testing.T) {
	n := &Node{Fn: "value", Name: "greeting"}
	assert.Equal(t, nodeid.New("value", "greeting"), n.Key())
}

func TestModel_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		model   *Model
		wantErr string
	}{
		{
			name: "valid model",
			model: &Model{Nodes: []*Node{
				{Fn: "value", Name: "a"},
				{Fn: "concat", Name: "b", DependsOn: []string{"a"}},
			}},
		},
		{
			name: "empty name",
			model: &Model{Nodes: []*Node{
				{Fn: "value", Name: ""},
			}},
			wantErr: "empty name",
		},
		{
			name: "duplicate name",
			model: &Model{Nodes: []*Node{
				{Fn: "value", Name: "a"},
				{Fn: "concat", Name: "a"},
			}},
			wantErr: `duplicate node name "a"`,
		},
		{
			name: "unknown dependency",
			model: &Model{Nodes: []*Node{
				{Fn: "value", Name: "a", DependsOn: []string{"ghost"}},
			}},
			wantErr: `depends on undeclared node "ghost"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.model.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestModel_ByName(t *testing.T) {
	m := &Model{Nodes: []*Node{
		{Fn: "value", Name: "a"},
		{Fn: "value", Name: "b"},
	}}

	n, ok := m.ByName("b")
	require.True(t, ok)
	assert.Equal(t, "b", n.Name)

	_, ok = m.ByName("missing")
	assert.False(t, ok)
}
