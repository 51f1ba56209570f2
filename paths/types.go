// Package paths defines the options for path enumeration.
package paths

// Option configures optional behavior of Paths.
// Use with Paths(g, opts...).
type Option func(*options)

// options holds the enumeration settings.
type options struct {
	// subtree widens the acyclic result from elder-rooted paths to the
	// recorded paths of every non-leaf node.
	subtree bool
}

// defaultOptions returns the default settings: elder-rooted paths only.
func defaultOptions() options {
	return options{subtree: false}
}

// WithSubtree returns an Option that includes the paths recorded under every
// non-leaf node, not just the elder roots. Cyclic paths are unaffected; they
// are always returned in full.
func WithSubtree() Option {
	return func(o *options) {
		o.subtree = true
	}
}
