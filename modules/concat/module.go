package concat

import (
	"context"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnEvalConcat is the node function for the 'concat' kind: it joins the
// string outputs of the node's dependencies, sorted by dependency name for
// consistent output, using the optional `separator` argument (default " ").
func OnEvalConcat(ctx context.Context, call *registry.Call) (cty.Value, error) {
	separator := " "
	if v, ok := call.Args["separator"]; ok {
		separator = v.AsString()
	}

	names := make([]string, 0, len(call.Deps))
	for name := range call.Deps {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		v := call.Deps[name]
		if v.IsNull() {
			continue
		}
		parts = append(parts, v.AsString())
	}

	return cty.StringVal(strings.Join(parts, separator)), nil
}

// Register registers the node function with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register("concat", OnEvalConcat)
}
