package evalerr

import (
	"slices"
	"strings"

	"github.com/vk/evalgridgo/internal/nodeid"
)

// CyclePath records one dependency cycle discovered during graph traversal,
// together with the chain of edges leading to it from some node of interest.
// Both sequences are immutable once built.
type CyclePath struct {
	// PathToCycle is the chain of dependency edges from the node of
	// interest down to a node that is itself a member of Cycle. It is empty
	// for a node inside the cycle.
	PathToCycle []nodeid.Key
	// Cycle lists the member nodes, starting at the re-entry point; the
	// last member depends back on the first.
	Cycle []nodeid.Key
}

// NewCyclePath builds a CyclePath from the given sequences. Both slices are
// copied so the result is not aliased to the caller's storage.
func NewCyclePath(pathToCycle, cycle []nodeid.Key) CyclePath {
	return CyclePath{
		PathToCycle: slices.Clone(pathToCycle),
		Cycle:       slices.Clone(cycle),
	}
}

// prepend returns a new CyclePath whose path is extended upward with key:
// "key reaches this cycle by first going through the old path". The cycle
// member list is shared unchanged.
func (c CyclePath) prepend(key nodeid.Key) CyclePath {
	path := make([]nodeid.Key, 0, len(c.PathToCycle)+1)
	path = append(path, key)
	path = append(path, c.PathToCycle...)
	return CyclePath{PathToCycle: path, Cycle: c.Cycle}
}

// Equal reports whether two cycle paths record the same chain and members.
func (c CyclePath) Equal(other CyclePath) bool {
	return slices.Equal(c.PathToCycle, other.PathToCycle) &&
		slices.Equal(c.Cycle, other.Cycle)
}

// String renders the path and cycle for diagnostics, repeating the re-entry
// point at the end so the loop reads naturally:
//
//	a -> b -> [c -> d -> c]
func (c CyclePath) String() string {
	var sb strings.Builder
	for _, k := range c.PathToCycle {
		sb.WriteString(k.String())
		sb.WriteString(" -> ")
	}
	sb.WriteString("[")
	for _, k := range c.Cycle {
		sb.WriteString(k.String())
		sb.WriteString(" -> ")
	}
	if len(c.Cycle) > 0 {
		sb.WriteString(c.Cycle[0].String())
	}
	sb.WriteString("]")
	return sb.String()
}
