// Package toposort linearizes directed graphs in two directions: a layered,
// cycle-detecting ascending sort and a cycle-tolerant, lazily produced
// descending sort, plus interchangeable Sorter strategies over both.
//
// What:
//
//   - Ascending: Kahn-style layered sort "from the bottom" — every node is
//     emitted after all of its children. Layers of simultaneously ready
//     nodes are emitted in natural order when the node type has one (or the
//     order given via WithLess), otherwise in unspecified order. A graph
//     that cannot be fully linearized fails with a CycleError carrying the
//     residual working graph: exactly the nodes still blocked and the child
//     references blocking them.
//   - Descending: iterative depth-first post-order "from the top", driven
//     by an explicit stack. A node is emitted only once every child found
//     by the traversal has been emitted. Cycles are not an error: a node
//     already visited is simply not re-descended into and not re-emitted.
//     Passing explicit start nodes scopes the traversal (and the emitted
//     sequence) to the subtree reachable from them, without filtering the
//     graph itself.
//   - Sorter: a one-method capability ("sort this graph") with Ascender and
//     Descender implementations, so call sites can swap direction without
//     changing shape.
//
// Why:
//
//   - Resolve safe build/apply/tear-down orders in dependency graphs
//   - Surface dependency cycles with enough context to debug them
//   - Feed downstream passes (such as paths.Paths) a dependency-safe
//     processing order even when the graph contains cycles
//
// Key Types & Functions:
//
//   - Ascending(g, ...Option) ([]N, error)
//   - Descending(g, start...) iter.Seq[N]
//   - Sorter[N], Ascender[N], Descender[N]
//   - ErrCycleDetected, CycleError[N]
//   - WithLess(cmp) Option[N]
//
// Laziness:
//
//   - Descending returns a single-pass iterator: consumption drives the
//     traversal, breaking out early performs no further work, and ranging
//     over the sequence again runs a fresh traversal.
//   - Ascending must examine the whole graph to rule out cycles, so its
//     result is materialized up front and the error is synchronous.
//
// Complexity:
//
//   - Ascending:  Time O(L·V + E + V log V) for L layers (O(V+E) on typical
//     shallow graphs, plus the per-layer sort), Memory O(V+E)
//   - Descending: Time O(V + E·d) where d is the revisit cost of the
//     first-unvisited-child scan, Memory O(V)
//
// Errors:
//
//   - ErrCycleDetected — ascending sort found no emittable layer while
//     nodes remained; match with errors.Is, recover the residual graph
//     with errors.As on *CycleError[N].
package toposort
