// Package toposort declares the error taxonomy and functional options for
// the ascending sort. Descending sort takes its start nodes positionally
// and never fails, so it needs neither.
package toposort

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/topograph/core"
)

// ErrCycleDetected indicates that ascending sort could not fully linearize
// the graph: every remaining node still had at least one unresolved child.
var ErrCycleDetected = errors.New("toposort: cycle detected")

// CycleError reports a failed ascending sort. It wraps ErrCycleDetected and
// carries the residual working graph — node to still-unresolved children —
// so callers can inspect exactly which nodes remained blocked.
//
// The residual graph is algorithm-internal state, not the caller's input:
// it contains only the cycle members and any nodes depending transitively
// on nothing but cycle members. Child slices are sorted when the node type
// has a natural order.
type CycleError[N comparable] struct {
	// Residual maps each unresolved node to the children still blocking it.
	Residual core.Graph[N]
}

// Error implements the error interface.
func (e *CycleError[N]) Error() string {
	return fmt.Sprintf("%v: %d nodes still blocked", ErrCycleDetected, len(e.Residual))
}

// Unwrap lets errors.Is(err, ErrCycleDetected) match a *CycleError.
func (e *CycleError[N]) Unwrap() error {
	return ErrCycleDetected
}

// Option configures optional behavior of the ascending sort.
// Use with Ascending(g, opts...).
type Option[N comparable] func(*sortOptions[N])

// sortOptions holds settings for Ascending, currently only layer ordering.
type sortOptions[N comparable] struct {
	// less orders nodes within one ready layer. nil means the layer is
	// emitted in unspecified order.
	less func(a, b N) bool
}

// defaultSortOptions seeds options with the node type's natural order when
// it has one, mirroring a sorted-emission attempt with graceful fallback.
func defaultSortOptions[N comparable]() sortOptions[N] {
	less, _ := core.NaturalLess[N]()

	return sortOptions[N]{less: less}
}

// WithLess returns an Option that orders same-layer nodes with cmp instead
// of the natural order. It is the only way to get deterministic layers for
// node types without a natural order (structs, pointers, interfaces).
// Passing a nil comparator has no effect.
func WithLess[N comparable](cmp func(a, b N) bool) Option[N] {
	return func(o *sortOptions[N]) {
		if cmp != nil {
			o.less = cmp
		}
	}
}
