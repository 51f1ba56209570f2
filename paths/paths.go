// Package paths implements the enumeration itself: a single pass over the
// descending topological order, folding children's path sets into parents.
package paths

import (
	"slices"

	"github.com/katalvlaran/topograph/core"
	"github.com/katalvlaran/topograph/toposort"
)

// Paths scans g and returns all maximal acyclic paths from elder nodes down
// to leaves, plus every cyclic path discovered. An elder node is one no
// other node depends on once cycle-closing edges are excluded; a cyclic
// path repeats its first node as its last element.
//
// By default the acyclic list contains only elder-rooted paths; WithSubtree
// widens it to the recorded paths of every non-leaf node. The cyclic list
// is identical either way. Empty and leaf-only graphs yield two empty
// lists. The caller's graph is never mutated.
func Paths[N comparable](g core.Graph[N], opts ...Option) (pathList, cyclePathList []core.Path[N]) {
	if len(g) == 0 {
		return nil, nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// pathMap holds the acyclic paths recorded under each processed node;
	// an entry may be present but empty when all of a node's paths closed
	// cycles. cycleMap holds the cyclic paths rooted at each node. Owner
	// slices preserve processing order so output order is reproducible.
	pathMap := make(map[N][]core.Path[N], len(g))
	pathOwners := make([]N, 0, len(g))
	cycleMap := make(map[N][]core.Path[N])
	cycleOwners := make([]N, 0)

	// elders collects candidate roots: processed nodes not yet consumed as
	// anyone's child. Newest candidates sit at the front.
	elders := make([]N, 0, len(g))

	// Descending order emits a node only after its children, so every
	// child's path set is complete before its parents consume it.
	for node := range toposort.Descending(g) {
		children := g[node]
		if len(children) == 0 {
			// Pure leaf (implicit or explicit): cannot own a path.
			continue
		}

		elders = slices.Insert(elders, 0, node)
		pathMap[node] = []core.Path[N]{}
		pathOwners = append(pathOwners, node)

		for _, child := range children {
			// The child has a parent, so it is no root for enumeration.
			if i := slices.Index(elders, child); i >= 0 {
				elders = slices.Delete(elders, i, i+1)
			}

			// A processed child contributes its recorded paths, even when
			// that record is empty; an unprocessed child contributes itself
			// as a trivial one-node path.
			childPaths, processed := pathMap[child]
			if !processed {
				childPaths = []core.Path[N]{{child}}
			}

			for _, childPath := range childPaths {
				if i := slices.Index(childPath, node); i >= 0 {
					// The walk returns to the current node: a closed loop.
					// Keep only the portion up to and including the first
					// occurrence, so the cycle ends where it started.
					cycle := make(core.Path[N], 0, i+2)
					cycle = append(cycle, node)
					cycle = append(cycle, childPath[:i+1]...)
					if _, known := cycleMap[node]; !known {
						cycleOwners = append(cycleOwners, node)
					}
					cycleMap[node] = append(cycleMap[node], cycle)
					continue
				}

				if _, childCyclic := cycleMap[child]; childCyclic {
					// The child sits on a cycle elsewhere: record the short
					// edge path instead of extending inherited paths, which
					// would otherwise grow without bound across the loop.
					pathMap[node] = append(pathMap[node], core.Path[N]{node, child})
					continue
				}

				extended := make(core.Path[N], 0, len(childPath)+1)
				extended = append(extended, node)
				extended = append(extended, childPath...)
				pathMap[node] = append(pathMap[node], extended)
			}
		}
	}

	// Build the result: elder-rooted paths, or every owner's paths when the
	// subtree view is requested. Cyclic paths are always returned in full.
	roots := elders
	if o.subtree {
		roots = pathOwners
	}
	for _, root := range roots {
		pathList = append(pathList, pathMap[root]...)
	}
	for _, owner := range cycleOwners {
		cyclePathList = append(cyclePathList, cycleMap[owner]...)
	}

	return pathList, cyclePathList
}
