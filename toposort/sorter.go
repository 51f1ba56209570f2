// Package toposort exposes the two sorts behind one interchangeable
// capability, so callers can depend on "sort this graph" and swap the
// direction without touching call sites.
package toposort

import (
	"slices"

	"github.com/katalvlaran/topograph/core"
)

// Sorter is the abstract sorting capability: produce an ordered node
// sequence from a graph. Implementations hold no mutable state; a Sorter
// value can be reused across graphs and goroutines.
type Sorter[N comparable] interface {
	Sort(g core.Graph[N]) ([]N, error)
}

// Ascender sorts via Ascending. The zero value is ready to use; Opts are
// forwarded to every Sort call.
type Ascender[N comparable] struct {
	Opts []Option[N]
}

// Sort delegates to Ascending(g, a.Opts...).
func (a Ascender[N]) Sort(g core.Graph[N]) ([]N, error) {
	return Ascending(g, a.Opts...)
}

// Descender sorts via Descending, materializing the lazy sequence. The zero
// value traverses from all graph keys; a non-empty Start scopes every Sort
// call to that subtree.
type Descender[N comparable] struct {
	Start []N
}

// Sort delegates to Descending(g, d.Start...) and collects the sequence.
// The error is always nil: descending sort tolerates cycles.
func (d Descender[N]) Sort(g core.Graph[N]) ([]N, error) {
	return slices.Collect(Descending(g, d.Start...)), nil
}

// Compile-time checks that both strategies satisfy Sorter.
var (
	_ Sorter[int] = Ascender[int]{}
	_ Sorter[int] = Descender[int]{}
)
