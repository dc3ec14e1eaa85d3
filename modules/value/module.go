package value

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnEvalValue is the node function for the 'value' kind: it emits the
// node's `text` argument unchanged.
func OnEvalValue(ctx context.Context, call *registry.Call) (cty.Value, error) {
	v, ok := call.Args["text"]
	if !ok {
		return cty.NilVal, fmt.Errorf("node %s: missing required argument 'text'", call.Key)
	}
	return v, nil
}

// Register registers the node function with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register("value", OnEvalValue)
}
