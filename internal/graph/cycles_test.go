package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/evalgridgo/internal/evalerr"
	"github.com/vk/evalgridgo/internal/nodeid"
)

func buildGraph(t *testing.T, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, e := range edges {
		g.AddNode(key(e[0]))
		g.AddNode(key(e[1]))
		require.NoError(t, g.AddEdge(key(e[0]), key(e[1])))
	}
	return g
}

func TestFindCycles(t *testing.T) {
	t.Run("empty graph has no cycles", func(t *testing.T) {
		assert.Nil(t, New().FindCycles())
	})

	t.Run("graph with nodes but no edges has no cycles", func(t *testing.T) {
		g := New()
		g.AddNode(key("a"))
		g.AddNode(key("b"))
		assert.Nil(t, g.FindCycles())
	})

	t.Run("valid dag has no cycles", func(t *testing.T) {
		g := buildGraph(t, [][2]string{
			{"a", "b"},
			{"b", "c"},
			{"a", "c"}, // transitive edge
			{"c", "d"},
		})
		assert.Nil(t, g.FindCycles())
	})

	t.Run("simple direct cycle is detected", func(t *testing.T) {
		g := buildGraph(t, [][2]string{
			{"a", "b"},
			{"b", "a"},
		})

		cycles := g.FindCycles()
		require.Len(t, cycles, 1)
		assert.Empty(t, cycles[0].PathToCycle)
		assert.Equal(t, []nodeid.Key{key("a"), key("b")}, cycles[0].Cycle)
	})

	t.Run("longer cycle is detected once", func(t *testing.T) {
		g := buildGraph(t, [][2]string{
			{"a", "b"},
			{"b", "c"},
			{"c", "d"},
			{"d", "a"}, // cycle back to the start
		})

		cycles := g.FindCycles()
		require.Len(t, cycles, 1)
		assert.Equal(t,
			[]nodeid.Key{key("a"), key("d"), key("c"), key("b")},
			cycles[0].Cycle)
	})

	t.Run("cycle with acyclic entry edge", func(t *testing.T) {
		// top depends on a; a and b form a cycle.
		g := buildGraph(t, [][2]string{
			{"a", "top"},
			{"b", "a"},
			{"a", "b"},
		})

		cycles := g.FindCycles()
		require.Len(t, cycles, 1)
		assert.Equal(t, []nodeid.Key{key("a"), key("b")}, cycles[0].Cycle)
	})

	t.Run("two disjoint cycles are both reported", func(t *testing.T) {
		g := buildGraph(t, [][2]string{
			{"a", "b"},
			{"b", "a"},
			{"x", "y"},
			{"y", "x"},
		})

		cycles := g.FindCycles()
		require.Len(t, cycles, 2)
		assert.Equal(t, []nodeid.Key{key("a"), key("b")}, cycles[0].Cycle)
		assert.Equal(t, []nodeid.Key{key("x"), key("y")}, cycles[1].Cycle)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		g := buildGraph(t, [][2]string{
			{"a", "b"},
			{"b", "c"},
			{"c", "a"},
		})

		first := g.FindCycles()
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, g.FindCycles())
		}
	})
}

func TestCycleMembers(t *testing.T) {
	cycles := []evalerr.CyclePath{
		evalerr.NewCyclePath(nil, []nodeid.Key{key("a"), key("b")}),
		evalerr.NewCyclePath(nil, []nodeid.Key{key("b"), key("c")}),
	}

	members := CycleMembers(cycles)
	assert.Equal(t, map[nodeid.Key]bool{
		key("a"): true,
		key("b"): true,
		key("c"): true,
	}, members)
}
