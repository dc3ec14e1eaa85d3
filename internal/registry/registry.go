package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/nodeid"
)

// Call carries everything a node function receives for one evaluation.
type Call struct {
	// Key identifies the node being evaluated.
	Key nodeid.Key
	// Args holds the node's resolved arguments from the grid definition.
	Args map[string]cty.Value
	// Deps holds the outputs of the node's dependencies, keyed by the
	// dependency's grid name.
	Deps map[string]cty.Value
}

// Func is one node function. A returned error may carry an explicit
// evalerr.Classification (via evalerr.Mark and friends); an unclassified
// error is treated as permanent and non-catastrophic.
type Func func(ctx context.Context, call *Call) (cty.Value, error)

// Module is the interface built-in function modules implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered node functions for a single application
// instance. It is populated once during startup and read-only afterwards.
type Registry struct {
	funcs map[nodeid.Fn]Func
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		funcs: make(map[nodeid.Fn]Func),
	}
}

// Register registers fn under the given function kind.
func (r *Registry) Register(kind nodeid.Fn, fn Func) {
	if _, exists := r.funcs[kind]; exists {
		panic(fmt.Sprintf("node function with kind '%s' already registered", kind))
	}
	slog.Debug("Registering node function.", "kind", kind)
	r.funcs[kind] = fn
}

// Lookup returns the function registered under kind.
func (r *Registry) Lookup(kind nodeid.Fn) (Func, bool) {
	fn, ok := r.funcs[kind]
	return fn, ok
}

// Kinds returns the number of registered function kinds.
func (r *Registry) Kinds() int {
	return len(r.funcs)
}
