package compiled

import (
	"errors"
	"iter"
	"time"
)

// Sentinel errors for compilation and identifier resolution.
var (
	// ErrNilSource indicates that Compile received a nil ingest view.
	ErrNilSource = errors.New("compiled: ingest source is nil")

	// ErrBadWeight indicates that the ingest view produced a NaN edge weight.
	ErrBadWeight = errors.New("compiled: edge weight is NaN")

	// ErrUnknownIdentifier indicates a query referenced an external identifier
	// that was never seen during compilation.
	ErrUnknownIdentifier = errors.New("compiled: unknown identifier")

	// ErrIndexOutOfRange indicates an internal index outside [0, N).
	// Under a correct compilation this cannot happen.
	ErrIndexOutOfRange = errors.New("compiled: index out of range")
)

// Source is the read-only ingest view Compile consumes.
//
// Both sequences must be finite, restartable, and deterministic: compiling
// the same view twice must enumerate nodes and edges in the same order.
// Nodes must include isolated nodes. OutEdges yields (neighbor, weight)
// pairs; a view over an unweighted graph should yield weight 1.
//
// *core.Graph satisfies Source[string].
type Source[K comparable] interface {
	// Nodes enumerates every node identifier.
	Nodes() iter.Seq[K]

	// OutEdges enumerates the outgoing edges of one node.
	OutEdges(node K) iter.Seq2[K, float64]
}

// Report records the one-time cost of a compilation, kept separate from any
// query timing so callers can amortize: with a per-query saving s and compile
// cost c, the break-even point is c/s queries.
type Report struct {
	// Duration is the wall time spent building the index and forward store.
	Duration time.Duration

	// Nodes is the number of interned identifiers.
	Nodes int

	// Arcs is the number of directed arc entries in the forward store
	// (an undirected edge contributes two).
	Arcs int
}
