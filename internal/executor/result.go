package executor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/evalerr"
	"github.com/vk/evalgridgo/internal/nodeid"
)

// Result holds the outcome of one evaluation run.
type Result struct {
	// Values maps every successfully evaluated node to its output.
	Values map[nodeid.Key]cty.Value
	// Failures maps every failed node to its failure summary, covering
	// direct failures, cycle members, and aggregated dependents alike.
	Failures map[nodeid.Key]*evalerr.Summary
	// Skipped lists nodes that were never evaluated because the run was
	// canceled first, sorted by key.
	Skipped []nodeid.Key
}

// collectResult gathers per-node outcomes after all workers have stopped.
func (e *Executor) collectResult() *Result {
	res := &Result{
		Values:   make(map[nodeid.Key]cty.Value),
		Failures: make(map[nodeid.Key]*evalerr.Summary),
	}
	for key, n := range e.nodes {
		switch n.getStatus() {
		case statusDone:
			res.Values[key] = n.value
		case statusFailed:
			res.Failures[key] = n.summary
		default:
			res.Skipped = append(res.Skipped, key)
		}
	}
	slices.SortFunc(res.Skipped, nodeid.Key.Compare)
	return res
}

// Failed reports whether any node failed.
func (r *Result) Failed() bool {
	return len(r.Failures) > 0
}

// FailedKeys returns the keys of all failed nodes, sorted.
func (r *Result) FailedKeys() []nodeid.Key {
	keys := make([]nodeid.Key, 0, len(r.Failures))
	for key := range r.Failures {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, nodeid.Key.Compare)
	return keys
}

// Err renders the run outcome as an error: nil on success, otherwise a
// deterministic message naming every failed node and wrapping the first
// representative cause in key order.
func (r *Result) Err() error {
	if !r.Failed() {
		return nil
	}

	keys := r.FailedKeys()
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key.String()
	}
	failedList := strings.Join(names, ", ")

	for _, key := range keys {
		if cause := r.Failures[key].Cause(); cause != nil {
			return fmt.Errorf("evaluation failed for %s: %w", failedList, cause)
		}
	}
	return fmt.Errorf("evaluation failed for %s: dependency cycle detected", failedList)
}
