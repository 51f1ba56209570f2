// Package core defines the central Graph and Path types shared by every
// topograph algorithm, plus the small set of helpers they rely on:
// node-universe listing, child lookup, cloning, and best-effort natural
// ordering of node values.
//
// What:
//
//   - Graph[N]: a read-only adjacency view — each key maps to the slice of
//     its directly related (child) nodes. A node referenced as a child does
//     not have to appear as a key; it is then an implicit leaf, and the
//     graph is called "incomplete". Algorithms treat a Graph as an immutable
//     snapshot and never mutate it.
//   - Path[N]: an ordered walk from an ancestor to a descendant along
//     existing edges. A cyclic path repeats its first node as its last
//     element, marking a closed loop.
//   - NaturalLess[N]: reports a comparator for node types with an obvious
//     total order (strings, integers, unsigned integers, floats), and
//     (nil, false) for everything else. Algorithms use it to make emission
//     order deterministic when they can, and degrade gracefully when they
//     cannot.
//
// Why:
//
//   - One shared vocabulary: toposort and paths both speak Graph[N] and
//     Path[N], so results compose without conversion.
//   - Determinism by default: Keys and Nodes return sorted listings
//     whenever N is orderable, which pins down traversal order for ordered
//     node types without demanding an ordering from anyone else.
//
// Key Types:
//
//   - Graph[N comparable]  map from node to its children
//   - Path[N comparable]   ordered node sequence
//
// Invariants:
//
//   - Keys are unique (map semantics).
//   - Child slice order is caller-controlled and is the traversal order
//     used by the algorithms; callers wanting reproducible results across
//     runs should list children deterministically.
//
// Complexity:
//
//   - Keys:  O(V log V) when orderable, O(V) otherwise
//   - Nodes: O(V+E) collection plus O(U log U) sort when orderable
//   - Clone: O(V+E)
package core
