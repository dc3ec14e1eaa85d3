package config

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/nodeid"
)

// Loader is the interface for a format-specific grid loader.
type Loader interface {
	// Load reads grid definitions from the given path (a file or a
	// directory of files) and translates them into the model.
	Load(ctx context.Context, path string) (*Model, error)
}

// Model is the unified representation of one grid: every declared node, in
// file order.
type Model struct {
	Nodes []*Node
}

// Node is the format-agnostic representation of a single `node` block.
type Node struct {
	// Fn is the function kind evaluating this node.
	Fn string
	// Name is the node's unique instance name within the grid; it becomes
	// the argument key of the node's identity.
	Name string
	// Arguments holds the node's resolved argument values.
	Arguments map[string]cty.Value
	// DependsOn lists the names of the nodes this node depends on, in
	// declaration order. The order is load-bearing: it decides how failure
	// diagnostics aggregate.
	DependsOn []string
}

// Key returns the node's graph identity.
func (n *Node) Key() nodeid.Key {
	return nodeid.New(nodeid.Fn(n.Fn), n.Name)
}

// Validate checks the model's internal references: node names must be
// unique and every depends_on target must name a declared node.
func (m *Model) Validate() error {
	byName := make(map[string]*Node, len(m.Nodes))
	for _, n := range m.Nodes {
		if n.Name == "" {
			return fmt.Errorf("node of kind %q has an empty name", n.Fn)
		}
		if _, exists := byName[n.Name]; exists {
			return fmt.Errorf("duplicate node name %q", n.Name)
		}
		byName[n.Name] = n
	}
	for _, n := range m.Nodes {
		for _, dep := range n.DependsOn {
			if _, ok := byName[dep]; !ok {
				return fmt.Errorf("node %q depends on undeclared node %q", n.Name, dep)
			}
		}
	}
	return nil
}

// ByName returns the node declared under the given name.
func (m *Model) ByName(name string) (*Node, bool) {
	for _, n := range m.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}
