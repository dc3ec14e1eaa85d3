package fail

import (
	"context"
	"errors"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/evalerr"
	"github.com/vk/evalgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnEvalFail is the node function for the 'fail' kind: it always fails with
// the `message` argument (default "failure requested"), classified by the
// optional boolean arguments `transient` and `catastrophic`. It exists to
// exercise failure propagation from grid definitions, in demos and tests.
func OnEvalFail(ctx context.Context, call *registry.Call) (cty.Value, error) {
	msg := "failure requested"
	if v, ok := call.Args["message"]; ok {
		msg = v.AsString()
	}

	class := evalerr.Classification{}
	if v, ok := call.Args["transient"]; ok {
		class.Transient = v.True()
	}
	if v, ok := call.Args["catastrophic"]; ok {
		class.Catastrophic = v.True()
	}

	return cty.NilVal, evalerr.Mark(errors.New(msg), class)
}

// Register registers the node function with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register("fail", OnEvalFail)
}
