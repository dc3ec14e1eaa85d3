package graph

import (
	"slices"

	"github.com/vk/evalgridgo/internal/evalerr"
	"github.com/vk/evalgridgo/internal/nodeid"
)

// FindCycles walks dependency edges depth-first from every node and returns
// each distinct cycle as an evalerr.CyclePath with an empty path and the
// member list starting at the cycle's smallest key. Traversal starts from
// nodes in sorted key order and follows dependencies in declaration order,
// so the result is deterministic for a given graph. An acyclic graph yields
// nil.
func (g *Graph) FindCycles() []evalerr.CyclePath {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// Classic depth-first search with three sets of nodes:
	// permanent: fully visited, known not to reach an unreported cycle.
	// temporary: currently on the recursion stack.
	// unvisited: everything else.
	permanent := make(map[nodeid.Key]bool)
	temporary := make(map[nodeid.Key]bool)
	var stack []nodeid.Key

	var cycles []evalerr.CyclePath
	seen := make(map[string]bool)

	var visit func(key nodeid.Key)
	visit = func(key nodeid.Key) {
		if permanent[key] {
			return
		}
		if temporary[key] {
			// The node is already on our recursion stack: everything from
			// its first occurrence onward forms the cycle.
			start := slices.Index(stack, key)
			members := rotateToSmallest(slices.Clone(stack[start:]))
			c := evalerr.NewCyclePath(nil, members)
			if id := c.String(); !seen[id] {
				seen[id] = true
				cycles = append(cycles, c)
			}
			return
		}

		temporary[key] = true
		stack = append(stack, key)

		for _, dep := range g.nodes[key].deps {
			visit(dep)
		}

		stack = stack[:len(stack)-1]
		delete(temporary, key)
		permanent[key] = true
	}

	for _, key := range g.sortedKeysLocked() {
		if !permanent[key] {
			visit(key)
		}
	}

	return cycles
}

// rotateToSmallest rotates the member list so it begins at the smallest key,
// giving every discovery of the same cycle one canonical form.
func rotateToSmallest(members []nodeid.Key) []nodeid.Key {
	if len(members) == 0 {
		return members
	}
	smallest := 0
	for i, k := range members {
		if k.Less(members[smallest]) {
			smallest = i
		}
	}
	rotated := make([]nodeid.Key, 0, len(members))
	rotated = append(rotated, members[smallest:]...)
	rotated = append(rotated, members[:smallest]...)
	return rotated
}

// CycleMembers returns the set of keys that appear in any of the given
// cycles.
func CycleMembers(cycles []evalerr.CyclePath) map[nodeid.Key]bool {
	members := make(map[nodeid.Key]bool)
	for _, c := range cycles {
		for _, k := range c.Cycle {
			members[k] = true
		}
	}
	return members
}
