package executor

import (
	"context"
	"log/slog"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/ctxlog"
	"github.com/vk/evalgridgo/internal/evalerr"
	"github.com/vk/evalgridgo/internal/registry"
)

// worker is the core processing loop for a single concurrent worker. A node
// arrives here only after every one of its dependencies has completed, so
// reading their outcomes needs no locking.
func (e *Executor) worker(ctx context.Context, readyChan chan *nodeState, cancel context.CancelFunc, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for n := range readyChan {
		workerLogger := logger.With("workerID", workerID, "nodeID", n.key.String())

		deps := e.dependencies(n)
		var failed []*evalerr.Summary
		skippedDep := false
		for _, d := range deps {
			switch d.getStatus() {
			case statusFailed:
				failed = append(failed, d.summary)
			case statusSkipped:
				skippedDep = true
			}
		}

		switch {
		case len(failed) > 0:
			// The node itself is not run; its failure is the aggregate of
			// its failed dependencies, in declaration order.
			n.summary = evalerr.FromChildren(n.key, failed)
			n.setStatus(statusFailed)
			workerLogger.Warn("Node failed due to failed dependencies.",
				"failedDeps", len(failed), "summary", n.summary.String())
			e.handleFailure(n.summary, cancel, workerLogger)

		case skippedDep || ctx.Err() != nil:
			// Cancellation means failure summaries are simply never built
			// for the affected nodes.
			n.setStatus(statusSkipped)
			workerLogger.Debug("Node skipped.")

		default:
			e.evaluate(ctx, n, deps, cancel, workerLogger)
		}

		e.finish(n, readyChan)
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

// evaluate runs a node's function and records the outcome.
func (e *Executor) evaluate(ctx context.Context, n *nodeState, deps []*nodeState, cancel context.CancelFunc, workerLogger *slog.Logger) {
	fn, _ := e.registry.Lookup(n.key.Fn)

	depValues := make(map[string]cty.Value, len(deps))
	for _, d := range deps {
		depValues[d.cfg.Name] = d.value
	}

	n.setStatus(statusRunning)
	workerLogger.Debug("Worker picked up node for evaluation.")

	value, err := fn(ctx, &registry.Call{
		Key:  n.key,
		Args: n.cfg.Arguments,
		Deps: depValues,
	})
	if err != nil {
		n.summary = evalerr.FromFailure(n.key, err, evalerr.ClassificationOf(err))
		n.setStatus(statusFailed)
		workerLogger.Warn("Node evaluation failed.", "error", err)
		e.handleFailure(n.summary, cancel, workerLogger)
		return
	}

	n.value = value
	n.setStatus(statusDone)
	workerLogger.Debug("Node evaluation succeeded.")
}

// handleFailure applies the run's failure policy to a fresh summary: a
// catastrophic failure aborts unconditionally, any other failure aborts
// unless keep-going is set.
func (e *Executor) handleFailure(s *evalerr.Summary, cancel context.CancelFunc, workerLogger *slog.Logger) {
	if s.Catastrophic() {
		workerLogger.Warn("Catastrophic failure, canceling run.")
		cancel()
		return
	}
	if !e.keepGoing {
		cancel()
	}
}

// finish publishes a node's completion: dependents with no other unmet
// dependencies become ready. Dependents that are not pending (cycle members
// failed before the run started) are left alone.
func (e *Executor) finish(n *nodeState, readyChan chan *nodeState) {
	dependents, _ := e.graph.Dependents(n.key)
	for _, depKey := range dependents {
		d := e.nodes[depKey]
		if d.getStatus() != statusPending {
			continue
		}
		if d.depCount.Add(-1) == 0 {
			readyChan <- d
		}
	}
	e.wg.Done()
}
