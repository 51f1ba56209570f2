// This file provides query and copy helpers on Graph.
package core

import "sort"

// Len returns the number of keyed nodes in g. Implicit leaves (nodes only
// referenced as children) are not counted; see Nodes for the full universe.
func (g Graph[N]) Len() int {
	return len(g)
}

// Has reports whether n appears as a key in g.
func (g Graph[N]) Has(n N) bool {
	_, ok := g[n]

	return ok
}

// Children returns the direct children of n, or nil when n is not a key
// (an implicit leaf). The returned slice is g's own backing slice and must
// not be modified by the caller.
func (g Graph[N]) Children(n N) []N {
	return g[n]
}

// Keys returns the keyed nodes of g. When N has a natural order the result
// is sorted ascending; otherwise the order is unspecified.
func (g Graph[N]) Keys() []N {
	keys := make([]N, 0, len(g))
	for node := range g {
		keys = append(keys, node)
	}
	sortIfOrdered(keys)

	return keys
}

// Nodes returns the node universe of g: every key plus every node referenced
// only as a child. Each node appears exactly once. When N has a natural order
// the result is sorted ascending; otherwise the order is unspecified.
func (g Graph[N]) Nodes() []N {
	seen := make(map[N]struct{}, len(g))
	nodes := make([]N, 0, len(g))
	for node := range g {
		seen[node] = struct{}{}
		nodes = append(nodes, node)
	}
	for _, children := range g {
		for _, child := range children {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			nodes = append(nodes, child)
		}
	}
	sortIfOrdered(nodes)

	return nodes
}

// Clone returns a deep copy of g: a fresh map with fresh child slices.
// Useful when a caller needs a private snapshot of a graph it does not own.
func (g Graph[N]) Clone() Graph[N] {
	clone := make(Graph[N], len(g))
	for node, children := range g {
		copied := make([]N, len(children))
		copy(copied, children)
		clone[node] = copied
	}

	return clone
}

// sortIfOrdered sorts s in place when N has a natural order and leaves it
// untouched otherwise.
func sortIfOrdered[N comparable](s []N) {
	if less, ok := NaturalLess[N](); ok {
		sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
	}
}
