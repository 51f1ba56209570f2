// Package toposort provides the descending (top-down) topological sort.
//
// Descending walks the graph depth-first with an explicit stack and emits
// nodes in post-order: a node appears only after every child the traversal
// discovered through it. It tolerates cycles and incomplete graphs, and an
// explicit start set scopes the result to a subtree.
//
// Complexity:
//
//   - Time:   O(V + E·d) — each re-peek rescans children for the first
//     unvisited one; d is bounded by the maximum out-degree
//   - Memory: O(V) for the visited set and stack
package toposort

import (
	"iter"

	"github.com/katalvlaran/topograph/core"
)

// Descending returns a lazy post-order depth-first sequence of g's nodes
// "from the top". Traversal starts from the given start nodes, defaulting
// to all keys of g (sorted when the node type has a natural order). Nodes
// outside the subtree reachable from the start set are never emitted, which
// scopes the result without filtering the graph itself.
//
// Cycles are not detected and not an error: an already-visited node is not
// re-descended into and not re-emitted. Each reachable node is emitted
// exactly once, duplicate start nodes included.
//
// The sequence is single-pass in spirit: breaking out of the range stops
// all further work, and ranging again runs a fresh traversal from scratch.
func Descending[N comparable](g core.Graph[N], start ...N) iter.Seq[N] {
	return func(yield func(N) bool) {
		if len(g) == 0 {
			return
		}

		// 1. Default to the full key set; a start node need not be a key.
		roots := start
		if len(roots) == 0 {
			roots = g.Keys()
		}

		visited := make(map[N]struct{}, len(g))
		stack := make([]N, 0, len(g))
		for _, root := range roots {
			if _, seen := visited[root]; seen {
				continue
			}

			// 2. Iterative DFS: pop, descend into the first unvisited child
			//    (re-pushing the current node to reprocess afterwards), emit
			//    when no unvisited child remains.
			stack = append(stack[:0], root)
			for len(stack) > 0 {
				node := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				visited[node] = struct{}{}

				children, keyed := g[node]
				if !keyed {
					// Implicit leaf: nothing below it, emit immediately.
					if !yield(node) {
						return
					}
					continue
				}

				descended := false
				for _, child := range children {
					if _, seen := visited[child]; !seen {
						stack = append(stack, node, child)
						descended = true
						break
					}
				}
				if !descended {
					if !yield(node) {
						return
					}
				}
			}
		}
	}
}
