package executor

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/config"
	"github.com/vk/evalgridgo/internal/evalerr"
	"github.com/vk/evalgridgo/internal/graph"
	"github.com/vk/evalgridgo/internal/nodeid"
	"github.com/vk/evalgridgo/internal/registry"
)

// Options control one evaluation run.
type Options struct {
	// Workers is the number of concurrent evaluation workers. Values below
	// one fall back to one.
	Workers int
	// KeepGoing keeps evaluating unaffected nodes after a failure. A
	// catastrophic failure cancels the run regardless.
	KeepGoing bool
}

// nodeStatus is the execution state of a node, managed atomically.
type nodeStatus int32

const (
	statusPending nodeStatus = iota
	statusRunning
	statusDone
	statusFailed
	statusSkipped
)

// nodeState pairs a declared node with its mutable run state. value and
// summary are written exactly once, before the node's completion is made
// visible to dependents, and only read afterwards.
type nodeState struct {
	cfg *config.Node
	key nodeid.Key

	// depCount is the number of dependencies that have not completed yet.
	depCount atomic.Int32
	status   atomic.Int32

	value   cty.Value
	summary *evalerr.Summary
}

func (n *nodeState) setStatus(s nodeStatus) {
	n.status.Store(int32(s))
}

func (n *nodeState) getStatus() nodeStatus {
	return nodeStatus(n.status.Load())
}

// Executor evaluates one grid. Build one with New per run.
type Executor struct {
	registry  *registry.Registry
	graph     *graph.Graph
	nodes     map[nodeid.Key]*nodeState
	keyByName map[string]nodeid.Key
	workers   int
	keepGoing bool

	wg sync.WaitGroup
}

// New validates the model against the registry, builds the dependency
// graph, and returns an executor ready to run. Unknown function kinds and
// malformed dependency declarations are reported here, before any node
// runs.
func New(r *registry.Registry, model *config.Model, opts Options) (*Executor, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	e := &Executor{
		registry:  r,
		graph:     graph.New(),
		nodes:     make(map[nodeid.Key]*nodeState, len(model.Nodes)),
		keyByName: make(map[string]nodeid.Key, len(model.Nodes)),
		workers:   workers,
		keepGoing: opts.KeepGoing,
	}

	for _, n := range model.Nodes {
		if _, ok := r.Lookup(nodeid.Fn(n.Fn)); !ok {
			return nil, fmt.Errorf("node %q uses unknown function kind %q", n.Name, n.Fn)
		}
		key := n.Key()
		e.graph.AddNode(key)
		e.nodes[key] = &nodeState{cfg: n, key: key, value: cty.NilVal}
		e.keyByName[n.Name] = key
	}

	for _, n := range model.Nodes {
		for _, depName := range n.DependsOn {
			depKey, ok := e.keyByName[depName]
			if !ok {
				return nil, fmt.Errorf("node %q depends on undeclared node %q", n.Name, depName)
			}
			if err := e.graph.AddEdge(depKey, n.Key()); err != nil {
				return nil, fmt.Errorf("linking node %q: %w", n.Name, err)
			}
		}
	}

	return e, nil
}

// dependencies returns the states of a node's dependencies in declaration
// order.
func (e *Executor) dependencies(n *nodeState) []*nodeState {
	deps := make([]*nodeState, 0, len(n.cfg.DependsOn))
	for _, name := range n.cfg.DependsOn {
		deps = append(deps, e.nodes[e.keyByName[name]])
	}
	return deps
}
