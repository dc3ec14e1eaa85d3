package app

import (
	"fmt"
	"strings"

	"github.com/vk/evalgridgo/internal/executor"
)

// reportFailures renders a human-readable failure report to the app's
// output writer. Nodes are listed in key order and every field comes from
// the node's summary, so the report is deterministic for a given run
// outcome.
func (a *App) reportFailures(res *executor.Result) {
	fmt.Fprintln(a.outW, "Evaluation failed.")

	for _, key := range res.FailedKeys() {
		s := res.Failures[key]
		fmt.Fprintf(a.outW, "  node %s\n", key)

		if cause := s.Cause(); cause != nil {
			fmt.Fprintf(a.outW, "    cause: %v (raised by %s)\n", cause, s.CauseOrigin())
		}

		if !s.RootCauses().IsEmpty() {
			names := make([]string, 0, s.RootCauses().Len())
			for k := range s.RootCauses().All() {
				names = append(names, k.String())
			}
			fmt.Fprintf(a.outW, "    root causes: %s\n", strings.Join(names, ", "))
		}

		for _, c := range s.Cycles() {
			fmt.Fprintf(a.outW, "    cycle: %s\n", c)
		}

		fmt.Fprintf(a.outW, "    retryable: %t  abort-run: %t\n", s.Transient(), s.Catastrophic())
	}

	if len(res.Skipped) > 0 {
		names := make([]string, 0, len(res.Skipped))
		for _, k := range res.Skipped {
			names = append(names, k.String())
		}
		fmt.Fprintf(a.outW, "  not evaluated: %s\n", strings.Join(names, ", "))
	}
}
