// This file declares the Graph and Path types used across topograph.
package core

// Graph is a read-only adjacency view of a directed graph: each key maps to
// the slice of its directly related (child) nodes.
//
// A node may appear as a child without appearing as a key — it is then an
// implicit leaf with no children of its own. An empty or nil child slice
// marks an explicit leaf. Algorithms never mutate a Graph they are given;
// they build their own working copies.
//
// The child slice order is significant: it is the order in which algorithms
// visit children, the Go counterpart of the insertion order a hash-backed
// mapping would expose.
type Graph[N comparable] map[N][]N

// Path is an ordered sequence of nodes representing a walk from an ancestor
// down to a descendant along existing edges.
//
// A cyclic Path additionally repeats its first node as its last element:
// [2 3 2] is the two-node loop 2→3→2.
type Path[N comparable] []N
