// Package paths enumerates the root-to-leaf paths of a directed graph,
// separating acyclic paths from the cyclic paths closing back on themselves.
//
// What:
//
//   - Paths(g, ...Option) returns two lists: every maximal path from an
//     elder node (a node no other node depends on, once cycle-closing
//     edges are excluded) down to a leaf, and every cyclic path discovered
//     along the way. A cyclic path ends by revisiting its own first node:
//     [1 2 1] is the loop 1→2→1.
//   - WithSubtree() widens the acyclic output from elder-rooted paths to
//     the paths recorded under every non-leaf node, exposing interior
//     subtree paths. Cyclic paths are returned either way.
//
// Why:
//
//   - Explain a dependency graph to a human: who ultimately pulls in what,
//     and through which chains
//   - Debug cycles as data — the closed loops come back as values, not as
//     an error aborting the scan
//
// How:
//
//	Nodes are processed in descending topological order (toposort.Descending),
//	which emits a node only after its children — so every child's path set is
//	complete before any parent consumes it. Each non-leaf node inherits its
//	children's paths by prepending itself; a child whose paths already loop
//	is inherited as the short edge path [node, child] instead, deliberately
//	truncating longer walks through cycle territory so path growth stays
//	bounded. A child path already containing the current node closes a loop
//	and is recorded as a cyclic path instead of an acyclic one.
//
// Edge cases:
//
//   - Empty graph → two empty lists
//   - Leaf-only graph (no node has children) → two empty lists
//   - A node whose children are pure leaves contributes one two-element
//     path per child
//
// Complexity:
//
//   - Time:   O(V + E + P·L) for P produced paths of average length L
//   - Memory: O(P·L) for the per-node path tables
//
// Errors: none. Path enumeration never fails; cycles are output, not errors.
package paths
