package envvar

import (
	"context"
	"fmt"
	"os"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/evalerr"
	"github.com/vk/evalgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnEvalEnvVar is the node function for the 'envvar' kind: it reads the
// environment variable named by the `name` argument. A missing variable is
// a transient failure: the environment may be fixed and the node retried.
func OnEvalEnvVar(ctx context.Context, call *registry.Call) (cty.Value, error) {
	nameVal, ok := call.Args["name"]
	if !ok {
		return cty.NilVal, fmt.Errorf("node %s: missing required argument 'name'", call.Key)
	}
	name := nameVal.AsString()

	v, ok := os.LookupEnv(name)
	if !ok {
		return cty.NilVal, evalerr.Transient(fmt.Errorf("environment variable %q is not set", name))
	}
	return cty.StringVal(v), nil
}

// Register registers the node function with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register("envvar", OnEvalEnvVar)
}
