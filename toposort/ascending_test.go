package toposort_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topograph/core"
	"github.com/katalvlaran/topograph/toposort"
)

// TestAscending_EmptyGraph verifies an empty graph yields an empty sequence.
func TestAscending_EmptyGraph(t *testing.T) {
	order, err := toposort.Ascending(core.Graph[int]{})
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestAscending_OnlyLeaves covers a graph of explicit leaves: a single layer,
// emitted in natural order.
func TestAscending_OnlyLeaves(t *testing.T) {
	g := core.Graph[int]{1: {}, 2: {}, 3: {}}

	order, err := toposort.Ascending(g)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)
}

// TestAscending_DiscoveredLeaf covers the incomplete-graph case: node 2 is
// referenced but never keyed, and must still be emitted in the first layer.
func TestAscending_DiscoveredLeaf(t *testing.T) {
	g := core.Graph[int]{1: {}, 3: {2}}

	order, err := toposort.Ascending(g)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)
}

// TestAscending_SingleRelations checks three independent parent→child pairs.
func TestAscending_SingleRelations(t *testing.T) {
	g := core.Graph[int]{4: {1}, 5: {2}, 6: {3}}

	order, err := toposort.Ascending(g)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, order)
}

// TestAscending_MultiLevel checks a graph several dependency levels deep.
func TestAscending_MultiLevel(t *testing.T) {
	g := core.Graph[int]{
		7: {5, 4},
		5: {3, 2},
		8: {5, 1},
		6: {5},
		4: {3, 1},
	}

	order, err := toposort.Ascending(g)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, order)
}

// TestAscending_ChildrenBeforeParents asserts the core invariant over the
// full edge set rather than one expected permutation.
func TestAscending_ChildrenBeforeParents(t *testing.T) {
	g := core.Graph[string]{
		"app":  {"lib", "cfg"},
		"lib":  {"std"},
		"cfg":  {"std"},
		"test": {"app"},
	}

	order, err := toposort.Ascending(g)
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for parent, children := range g {
		for _, child := range children {
			assert.Less(t, pos[child], pos[parent],
				"child %q must precede parent %q", child, parent)
		}
	}
}

// TestAscending_DirectCycle verifies the error and its residual payload for
// a two-node cycle.
func TestAscending_DirectCycle(t *testing.T) {
	g := core.Graph[int]{1: {2}, 2: {1}}

	order, err := toposort.Ascending(g)
	assert.Nil(t, order, "no partial result on failure")
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)

	var cycleErr *toposort.CycleError[int]
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, core.Graph[int]{1: {2}, 2: {1}}, cycleErr.Residual)
}

// TestAscending_TransitiveCycle verifies a three-node cycle is reported with
// all three members in the residual graph.
func TestAscending_TransitiveCycle(t *testing.T) {
	g := core.Graph[int]{1: {2}, 2: {3}, 3: {1}}

	_, err := toposort.Ascending(g)
	var cycleErr *toposort.CycleError[int]
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, core.Graph[int]{1: {2}, 2: {3}, 3: {1}}, cycleErr.Residual)
}

// TestAscending_CycleWithAcyclicSubtree ensures the residual graph contains
// only the cycle: the acyclic 5→4→6 branch resolves and is excluded.
func TestAscending_CycleWithAcyclicSubtree(t *testing.T) {
	g := core.Graph[int]{1: {2}, 2: {3}, 3: {1}, 5: {4}, 4: {6}}

	_, err := toposort.Ascending(g)
	var cycleErr *toposort.CycleError[int]
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, core.Graph[int]{1: {2}, 2: {3}, 3: {1}}, cycleErr.Residual)
}

// TestAscending_CycleErrorMessage pins the operator-facing message format.
func TestAscending_CycleErrorMessage(t *testing.T) {
	_, err := toposort.Ascending(core.Graph[int]{1: {2}, 2: {1}})
	require.Error(t, err)
	assert.Equal(t, "toposort: cycle detected: 2 nodes still blocked", err.Error())
}

// TestAscending_UnorderableNodes covers hashable-but-unorderable node types:
// layer membership is guaranteed, same-layer order is not.
func TestAscending_UnorderableNodes(t *testing.T) {
	type item struct{ id int }
	root := item{id: 42}
	g := core.Graph[item]{
		root: {{id: 1}, {id: 2}, {id: 3}},
	}

	order, err := toposort.Ascending(g)
	require.NoError(t, err)
	require.Len(t, order, 4)
	assert.ElementsMatch(t, []item{{id: 1}, {id: 2}, {id: 3}}, order[:3])
	assert.Equal(t, root, order[3])
}

// TestAscending_WithLess restores full determinism for an unorderable node
// type via an explicit comparator.
func TestAscending_WithLess(t *testing.T) {
	type item struct{ id int }
	g := core.Graph[item]{
		{id: 42}: {{id: 3}, {id: 1}, {id: 2}},
	}
	byID := func(a, b item) bool { return a.id < b.id }

	order, err := toposort.Ascending(g, toposort.WithLess(byID))
	require.NoError(t, err)
	assert.Equal(t, []item{{id: 1}, {id: 2}, {id: 3}, {id: 42}}, order)
}

// TestAscending_InputUntouched asserts the caller's graph survives the sort
// unmodified, including after a cycle failure.
func TestAscending_InputUntouched(t *testing.T) {
	g := core.Graph[int]{3: {1, 2}, 2: {1}}
	_, err := toposort.Ascending(g)
	require.NoError(t, err)
	assert.Equal(t, core.Graph[int]{3: {1, 2}, 2: {1}}, g)

	cyclic := core.Graph[int]{1: {2}, 2: {1}}
	_, err = toposort.Ascending(cyclic)
	require.Error(t, err)
	assert.Equal(t, core.Graph[int]{1: {2}, 2: {1}}, cyclic)
}

// TestAscending_Idempotent re-runs the sort on the same graph and expects an
// identical sequence every time.
func TestAscending_Idempotent(t *testing.T) {
	g := core.Graph[int]{7: {5, 4}, 5: {3, 2}, 8: {5, 1}, 6: {5}, 4: {3, 1}}

	first, err := toposort.Ascending(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := toposort.Ascending(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestAscending_SentinelOnly confirms plain errors.Is matching works without
// reaching for the typed error.
func TestAscending_SentinelOnly(t *testing.T) {
	_, err := toposort.Ascending(core.Graph[string]{"a": {"b"}, "b": {"a"}})
	assert.True(t, errors.Is(err, toposort.ErrCycleDetected))
}
