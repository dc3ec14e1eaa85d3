package executor

import (
	"context"
	"slices"

	"github.com/vk/evalgridgo/internal/ctxlog"
	"github.com/vk/evalgridgo/internal/evalerr"
	"github.com/vk/evalgridgo/internal/graph"
	"github.com/vk/evalgridgo/internal/nodeid"
)

// Run evaluates the whole graph and returns the per-node outcome. The
// returned error is Result.Err(): nil exactly when every node evaluated
// successfully.
func (e *Executor) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	// Nodes caught in a dependency cycle can never become ready; fail them
	// up front so their dependents aggregate the cycle instead of waiting
	// forever.
	cycles := e.graph.FindCycles()
	members := graph.CycleMembers(cycles)
	for key := range members {
		n := e.nodes[key]
		n.summary = evalerr.FromCycle(cyclePathFor(key, cycles))
		n.setStatus(statusFailed)
	}
	if len(cycles) > 0 {
		logger.Warn("Dependency cycles detected.", "cycles", len(cycles), "nodes", len(members))
	}

	readyChan := make(chan *nodeState, len(e.nodes))
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Debug("Initializing executor, finding ready nodes.")
	runnable := 0
	for _, key := range e.graph.Keys() {
		if members[key] {
			continue
		}
		n := e.nodes[key]
		pending := 0
		for _, d := range e.dependencies(n) {
			if d.getStatus() == statusPending {
				pending++
			}
		}
		n.depCount.Store(int32(pending))
		runnable++
		if pending == 0 {
			readyChan <- n
		}
	}

	e.wg.Add(runnable)

	logger.Debug("Starting worker pool.", "workers", e.workers)
	for i := 0; i < e.workers; i++ {
		go e.worker(runCtx, readyChan, cancel, i)
	}

	e.wg.Wait()
	close(readyChan)
	logger.Debug("All nodes completed.")

	res := e.collectResult()
	return res, res.Err()
}

// cyclePathFor builds the CyclePath a member node reports: the cycle's
// member list rotated so it starts at the member itself, with an empty
// path (the member's dependents grow the path during aggregation). If the
// node is a member of several cycles, the first detected one is reported.
func cyclePathFor(member nodeid.Key, cycles []evalerr.CyclePath) evalerr.CyclePath {
	for _, c := range cycles {
		i := slices.Index(c.Cycle, member)
		if i < 0 {
			continue
		}
		rotated := make([]nodeid.Key, 0, len(c.Cycle))
		rotated = append(rotated, c.Cycle[i:]...)
		rotated = append(rotated, c.Cycle[:i]...)
		return evalerr.NewCyclePath(nil, rotated)
	}
	// Unreachable: member comes from CycleMembers(cycles).
	panic("executor: node is not a member of any detected cycle")
}
