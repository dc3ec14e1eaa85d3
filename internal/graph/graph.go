package graph

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vk/evalgridgo/internal/nodeid"
)

// Graph is a collection of nodes and their dependencies. Unlike a plain DAG
// it may temporarily contain cycles; FindCycles reports them so the evaluator
// can fail the affected nodes instead of deadlocking on them.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all vertices, keyed by node identity.
	nodes map[nodeid.Key]*vertex
}

// vertex is a single node in the graph. It is un-exported to enforce
// interaction via the public API using node keys, not struct manipulation.
type vertex struct {
	key nodeid.Key
	// deps holds the nodes this node depends on, in declaration order.
	deps []nodeid.Key
	// dependents holds the nodes that depend on this node, in edge
	// insertion order.
	dependents []nodeid.Key
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[nodeid.Key]*vertex),
	}
}

// AddNode adds a new node with the given key to the graph. If the node
// already exists, the function does nothing.
func (g *Graph) AddNode(key nodeid.Key) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[key]; ok {
		return
	}

	g.nodes[key] = &vertex{key: key}
}

// AddEdge records that `to` depends on `from`. Edges added for the same
// `to` accumulate in call order, which is the dependency-declaration order
// later reported by Dependencies. An error is returned if either node does
// not exist, the edge would be a self-reference, or the edge already exists.
func (g *Graph) AddEdge(from, to nodeid.Key) error {
	if from == to {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", from, from)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("source node not found: %s", from)
	}

	toNode, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("destination node not found: %s", to)
	}

	if slices.Contains(toNode.deps, from) {
		return fmt.Errorf("duplicate edge: %s -> %s", from, to)
	}

	toNode.deps = append(toNode.deps, from)
	fromNode.dependents = append(fromNode.dependents, to)

	return nil
}

// Dependencies returns the keys the given node depends on, in declaration
// order.
func (g *Graph) Dependencies(key nodeid.Key) ([]nodeid.Key, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", key)
	}
	return slices.Clone(n.deps), nil
}

// Dependents returns the keys that depend on the given node.
func (g *Graph) Dependents(key nodeid.Key) ([]nodeid.Key, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", key)
	}
	return slices.Clone(n.dependents), nil
}

// Contains reports whether the graph has a node with the given key.
func (g *Graph) Contains(key nodeid.Key) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	_, ok := g.nodes[key]
	return ok
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return len(g.nodes)
}

// Keys returns every node key in the graph, sorted for determinism.
func (g *Graph) Keys() []nodeid.Key {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return g.sortedKeysLocked()
}

// sortedKeysLocked returns all keys in Compare order. Callers must hold at
// least a read lock.
func (g *Graph) sortedKeysLocked() []nodeid.Key {
	keys := make([]nodeid.Key, 0, len(g.nodes))
	for key := range g.nodes {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, nodeid.Key.Compare)
	return keys
}
