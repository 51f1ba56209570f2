// Package topograph orders the vertices of directed graphs — even graphs
// that contain cycles — and enumerates the paths running through them.
//
// 🚀 What is topograph?
//
//	A small, generic, zero-dependency library built around three operations:
//		• Ascending topological sort: children before parents, layer by layer,
//		  with cycle detection and a residual-graph diagnostic on failure
//		• Descending topological sort: iterative DFS post-order, tolerant of
//		  cycles, optionally scoped to a subtree of starting nodes
//		• Path enumeration: every root-to-leaf path, with cyclic paths
//		  separated out as data rather than rejected as errors
//
// ✨ Why choose topograph?
//
//   - Generic – nodes are any comparable type; ordering is optional and
//     only used to make same-layer emission deterministic
//   - Lazy where it matters – descending sort is a single-pass iterator;
//     stop consuming and no further work is done
//   - Honest about cycles – ascending sort fails loudly with the exact
//     unresolved subgraph; descending sort and path enumeration carry on
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	core/     — Graph and Path types, node-universe helpers, natural ordering
//	toposort/ — Ascending and Descending sorts, CycleError, Sorter strategies
//	paths/    — acyclic/cyclic path enumeration
//
// Quick ASCII example:
//
//	    6───►3        a graph {6: {3}, 5: {2}, 4: {1}} linearizes
//	    5───►2        ascending to [1 2 3 4 5 6] and descending
//	    4───►1        to [1 4 2 5 3 6].
//
// Dive into each package's doc.go for contracts, complexity, and examples.
//
//	go get github.com/katalvlaran/topograph
package topograph
