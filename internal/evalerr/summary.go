package evalerr

import (
	"fmt"
	"slices"

	"github.com/vk/evalgridgo/internal/nodeid"
	"github.com/vk/evalgridgo/internal/sharedset"
)

// RootCauseSet is the set of leaf nodes whose direct failure ultimately
// caused a Summary. It iterates in compile order and is shared by reference
// between a summary and every ancestor summary aggregating it.
type RootCauseSet = *sharedset.Set[nodeid.Key]

// Summary is the immutable aggregate describing why one node failed. It is
// built through exactly one of FromFailure, FromCycle, or FromChildren, and
// may be read concurrently without locking from the moment construction
// returns.
type Summary struct {
	rootCauses RootCauseSet

	// cause and causeOrigin are paired: both set or both absent. cause is
	// the representative error surfaced to the user; causeOrigin is the
	// node whose function raised it.
	cause       error
	causeOrigin nodeid.Key

	cycles []CyclePath

	transient    bool
	catastrophic bool
}

// newSummary validates the construction contract shared by all three
// constructors. Violations are bugs in the calling evaluator and panic.
func newSummary(
	rootCauses RootCauseSet,
	cause error,
	causeOrigin nodeid.Key,
	cycles []CyclePath,
	transient bool,
	catastrophic bool,
) *Summary {
	if (cause == nil) != causeOrigin.IsZero() {
		panic("evalerr: cause and its origin key must both be set or both be absent")
	}
	if cause == nil && len(cycles) == 0 {
		panic("evalerr: a summary must carry a cause or at least one cycle")
	}
	return &Summary{
		rootCauses:   rootCauses,
		cause:        cause,
		causeOrigin:  causeOrigin,
		cycles:       cycles,
		transient:    transient,
		catastrophic: catastrophic,
	}
}

// FromFailure summarizes the failure of a single node whose function
// returned cause. The node itself is the sole root cause, and the summary
// adopts the retry and abort flags the failing call site declared.
func FromFailure(origin nodeid.Key, cause error, class Classification) *Summary {
	return newSummary(
		sharedset.Of(origin),
		cause,
		origin,
		nil,
		class.Transient,
		class.Catastrophic,
	)
}

// FromCycle summarizes membership in one detected dependency cycle. No leaf
// function failed, so there are no root causes and no representative cause.
// A cycle is never retryable (the dependency structure itself is wrong) and
// never catastrophic by itself.
func FromCycle(cycle CyclePath) *Summary {
	return newSummary(
		sharedset.Empty[nodeid.Key](),
		nil,
		nodeid.Key{},
		[]CyclePath{cycle},
		false,
		false,
	)
}

// FromChildren summarizes the failure of current, a node that did not fail
// itself but depends on the failed nodes whose summaries are given. Children
// must be supplied in dependency-declaration order; the order is a contract,
// not a detail, because it decides which child's cause represents the
// aggregate and in what order diagnostics render.
//
// The combined root causes are built with a single union over every child's
// set, so aggregation cost does not grow with the sets' sizes. The
// representative cause is the first child's non-absent (cause, origin) pair.
// Every child cycle path is extended upward with current. The aggregate is
// transient only if every child is, and catastrophic if any child is.
//
// Calling with no children is a bug in the caller and panics.
func FromChildren(current nodeid.Key, children []*Summary) *Summary {
	if len(children) == 0 {
		panic("evalerr: FromChildren requires at least one child summary")
	}

	childSets := make([]RootCauseSet, len(children))
	var cause error
	var causeOrigin nodeid.Key
	var cycles []CyclePath
	transient := true
	catastrophic := false

	for i, child := range children {
		childSets[i] = child.rootCauses
		if cause == nil && child.cause != nil {
			cause = child.cause
			causeOrigin = child.causeOrigin
		}
		for _, c := range child.cycles {
			cycles = append(cycles, c.prepend(current))
		}
		transient = transient && child.transient
		catastrophic = catastrophic || child.catastrophic
	}

	return newSummary(
		sharedset.Union(nil, childSets...),
		cause,
		causeOrigin,
		cycles,
		transient,
		catastrophic,
	)
}

// RootCauses returns the leaf nodes whose direct failures caused this
// summary, in compile order.
func (s *Summary) RootCauses() RootCauseSet {
	return s.rootCauses
}

// Cause returns the representative error to surface to the user, or nil if
// this summary describes only cycles.
func (s *Summary) Cause() error {
	return s.cause
}

// CauseOrigin returns the node whose function raised Cause. It is the zero
// key exactly when Cause is nil.
func (s *Summary) CauseOrigin() nodeid.Key {
	return s.causeOrigin
}

// Cycles returns every cycle reachable below the summarized node, each with
// the dependency path from that node down to the cycle. The returned slice
// is a copy and safe to hold.
func (s *Summary) Cycles() []CyclePath {
	return slices.Clone(s.cycles)
}

// Transient reports whether every contributing cause is independently
// retryable, making a retry of the whole subtree worthwhile.
func (s *Summary) Transient() bool {
	return s.transient
}

// Catastrophic reports whether any contributing cause requires the entire
// run to abort, regardless of keep-going policy.
func (s *Summary) Catastrophic() bool {
	return s.catastrophic
}

// String renders a short diagnostic form, for logs.
func (s *Summary) String() string {
	switch {
	case s.cause != nil && len(s.cycles) > 0:
		return fmt.Sprintf("%v (origin %s, %d root causes, %d cycles)",
			s.cause, s.causeOrigin, s.rootCauses.Len(), len(s.cycles))
	case s.cause != nil:
		return fmt.Sprintf("%v (origin %s, %d root causes)",
			s.cause, s.causeOrigin, s.rootCauses.Len())
	default:
		return fmt.Sprintf("dependency cycle (%d cycles)", len(s.cycles))
	}
}
