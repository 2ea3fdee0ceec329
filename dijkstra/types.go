package dijkstra

import "errors"

// Sentinel errors for shortest-path queries.
var (
	// ErrNilStore indicates that a nil *compiled.Store was passed in.
	ErrNilStore = errors.New("dijkstra: store is nil")

	// ErrNodeOutOfRange indicates a source or target index outside [0, N).
	ErrNodeOutOfRange = errors.New("dijkstra: node index out of range")

	// ErrNegativeWeight is returned by WithWeightCheck when the store holds a
	// negative arc weight. Without the check, behavior on negative weights is
	// unspecified.
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")

	// ErrStoreMismatch indicates forward and reverse stores of different sizes.
	ErrStoreMismatch = errors.New("dijkstra: forward and reverse stores disagree on node count")
)

// Options configures a shortest-path run.
type Options struct {
	// WeightCheck, when true, pre-scans every arc weight and fails fast with
	// ErrNegativeWeight before the queue is seeded. Off by default: the scan
	// costs O(E), which defeats the point of a compiled store when the caller
	// already guarantees non-negative weights.
	WeightCheck bool
}

// Option is a functional option for shortest-path queries.
type Option func(*Options)

// WithWeightCheck enables the defensive negative-weight pre-scan.
func WithWeightCheck() Option {
	return func(o *Options) { o.WeightCheck = true }
}

// DefaultOptions returns the default query configuration.
func DefaultOptions() Options {
	return Options{WeightCheck: false}
}

// Route is the index-level outcome of a point-to-point query.
//
// Found=false is a defined, non-exceptional outcome meaning target is
// unreachable from source; Distance is +Inf and Nodes is nil in that case.
type Route struct {
	// Distance is the total weight of the shortest path, +Inf when not found.
	Distance float64

	// Nodes is the path as node indices, source first, target last.
	Nodes []int

	// Found reports whether any path exists.
	Found bool
}

// PathResult is the external-identifier-level outcome of Between.
// A zero Found means "no path", not an error.
type PathResult[K comparable] struct {
	// Distance is the total weight of the shortest path, +Inf when not found.
	Distance float64

	// Path lists the identifiers from source to target inclusive.
	Path []K

	// Found reports whether any path exists.
	Found bool
}
