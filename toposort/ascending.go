// Package toposort provides the ascending (children-first) topological sort.
//
// Ascending computes a linear ordering of the graph's node universe such
// that every node appears after all of its children. If the graph contains
// a cycle it returns a *CycleError wrapping ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(L·V + E) scanning plus O(V log V) total layer sorting
//   - Memory: O(V + E) for the working copy
package toposort

import (
	"sort"

	"github.com/katalvlaran/topograph/core"
)

// Ascending performs a layered topological sort of g "from the bottom":
// dependencies first, dependents after. The result spans the full node
// universe — keys plus referenced-but-not-keyed children. An empty graph
// yields an empty result.
//
// Within one layer (nodes that became ready simultaneously) nodes are
// emitted in natural order when the node type has one, in the order given
// via WithLess otherwise, or in unspecified order when neither exists;
// layer membership is guaranteed in every case.
//
// The caller's graph is never mutated; the sort works on an owned copy.
// On a cycle, that copy's unresolved remainder is attached to the error.
func Ascending[N comparable](g core.Graph[N], opts ...Option[N]) ([]N, error) {
	if len(g) == 0 {
		return nil, nil
	}

	// 1. Apply optional settings over the natural-order default.
	o := defaultSortOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Normalize the graph into an owned mutable map of child sets.
	working := make(map[N]map[N]struct{}, len(g))
	for node, children := range g {
		set := make(map[N]struct{}, len(children))
		for _, child := range children {
			set[child] = struct{}{}
		}
		working[node] = set
	}

	// 3. Seed the frontier with implicit leaves: children referenced in some
	//    set but absent as keys have no dependencies of their own.
	frontier := make(map[N]struct{})
	for _, set := range working {
		for child := range set {
			if _, keyed := working[child]; !keyed {
				frontier[child] = struct{}{}
			}
		}
	}

	order := make([]N, 0, len(working)+len(frontier))
	layer := make([]N, 0, len(frontier))
	for {
		// 4. Every node whose child set has drained is ready.
		for node, set := range working {
			if len(set) == 0 {
				frontier[node] = struct{}{}
			}
		}
		// 5. No progress: either done or stuck on a cycle.
		if len(frontier) == 0 {
			break
		}

		// 6. Emit the layer, ordered when a comparator is available.
		layer = layer[:0]
		for node := range frontier {
			layer = append(layer, node)
		}
		if o.less != nil {
			sort.Slice(layer, func(i, j int) bool { return o.less(layer[i], layer[j]) })
		}
		order = append(order, layer...)

		// 7. Remove emitted nodes from the working map and strip them from
		//    every remaining child set, then reset the frontier.
		for node, set := range working {
			if _, emitted := frontier[node]; emitted {
				delete(working, node)
				continue
			}
			for f := range frontier {
				delete(set, f)
			}
		}
		clear(frontier)
	}

	// 8. Anything left is blocked by a cycle.
	if len(working) != 0 {
		return nil, &CycleError[N]{Residual: residualGraph(working, o.less)}
	}

	return order, nil
}

// residualGraph converts the unresolved working sets back into a Graph for
// diagnostics, sorting child slices when a comparator is available so the
// payload is stable for ordered node types.
func residualGraph[N comparable](working map[N]map[N]struct{}, less func(a, b N) bool) core.Graph[N] {
	residual := make(core.Graph[N], len(working))
	for node, set := range working {
		children := make([]N, 0, len(set))
		for child := range set {
			children = append(children, child)
		}
		if less != nil {
			sort.Slice(children, func(i, j int) bool { return less(children[i], children[j]) })
		}
		residual[node] = children
	}

	return residual
}
