// Package oracle cross-checks compiled query results against the reference
// (dictionary-based) implementation.
//
// Every check returns a Diagnostic rather than an error: a failed comparison
// is a finding about the engines, not a fault of the caller. Distances are
// compared with an absolute tolerance, because the two implementations may
// sum floating-point edge weights in different orders. Paths are validated by
// weight, not by shape — several distinct shortest paths may be equally
// valid. Component labelings are compared as partitions, ignoring the label
// values themselves.
package oracle

import (
	"fmt"
	"math"

	"github.com/ckibe-opt/compiledgraph/compiled"
	"github.com/ckibe-opt/compiledgraph/dijkstra"
)

// DefaultTolerance is an absolute distance tolerance that absorbs summation
// order differences on realistic edge weights.
const DefaultTolerance = 1e-9

// Diagnostic is the outcome of one verification: an overall verdict plus a
// human-readable reason for every mismatch found.
type Diagnostic struct {
	Pass     bool
	Failures []string
}

// String renders the verdict and up to all recorded failures.
func (d Diagnostic) String() string {
	if d.Pass {
		return "oracle: PASS"
	}
	out := fmt.Sprintf("oracle: FAIL (%d mismatches)", len(d.Failures))
	for _, f := range d.Failures {
		out += "\n  - " + f
	}

	return out
}

func (d *Diagnostic) failf(format string, args ...interface{}) {
	d.Pass = false
	d.Failures = append(d.Failures, fmt.Sprintf(format, args...))
}

func pass() Diagnostic { return Diagnostic{Pass: true} }

// Distances compares two single-source results keyed by external identifier.
// The key sets must be equal (reachability agreement) and every shared
// distance must agree within tolerance.
func Distances[K comparable](got, want map[K]float64, tolerance float64) Diagnostic {
	d := pass()
	for id, w := range want {
		g, ok := got[id]
		if !ok {
			d.failf("node %v: reachable in reference (dist=%v) but not in compiled result", id, w)
			continue
		}
		if math.Abs(g-w) > tolerance {
			d.failf("node %v: compiled dist %v, reference dist %v, |Δ| > %v", id, g, w, tolerance)
		}
	}
	for id := range got {
		if _, ok := want[id]; !ok {
			d.failf("node %v: reachable in compiled result but not in reference", id)
		}
	}

	return d
}

// Path validates a point-to-point result against the compiled graph itself:
// the path must start at source, end at target, traverse only existing arcs,
// and its cumulative weight (cheapest arc per hop, since parallel arcs are
// preserved) must match the reported distance within tolerance.
//
// A Found=false result passes when its distance is +Inf; reachability
// agreement with the reference is Distances' job.
func Path[K comparable](g *compiled.Graph[K], source, target K, res dijkstra.PathResult[K], tolerance float64) Diagnostic {
	d := pass()
	if !res.Found {
		if !math.IsInf(res.Distance, 1) {
			d.failf("no-path result carries finite distance %v", res.Distance)
		}
		if res.Path != nil {
			d.failf("no-path result carries a path of %d nodes", len(res.Path))
		}

		return d
	}

	if len(res.Path) == 0 {
		d.failf("found result carries an empty path")
		return d
	}
	if res.Path[0] != source {
		d.failf("path starts at %v, want source %v", res.Path[0], source)
	}
	if last := res.Path[len(res.Path)-1]; last != target {
		d.failf("path ends at %v, want target %v", last, target)
	}

	total := 0.0
	for k := 0; k+1 < len(res.Path); k++ {
		w, err := cheapestArc(g, res.Path[k], res.Path[k+1])
		if err != nil {
			d.failf("hop %v→%v: %v", res.Path[k], res.Path[k+1], err)
			return d
		}
		total += w
	}
	if math.Abs(total-res.Distance) > tolerance {
		d.failf("path weight %v does not match reported distance %v", total, res.Distance)
	}

	return d
}

// cheapestArc returns the minimum weight among parallel arcs from→to in the
// forward store.
func cheapestArc[K comparable](g *compiled.Graph[K], from, to K) (float64, error) {
	u, err := g.IndexOf(from)
	if err != nil {
		return 0, err
	}
	v, err := g.IndexOf(to)
	if err != nil {
		return 0, err
	}
	targets, weights := g.Forward().Arcs(u)
	best := math.Inf(1)
	for k, tgt := range targets {
		if tgt == v && weights[k] < best {
			best = weights[k]
		}
	}
	if math.IsInf(best, 1) {
		return 0, fmt.Errorf("no arc exists")
	}

	return best, nil
}

// Partitions compares two component labelings up to relabeling: the key sets
// must match and the induced equivalence relations must be identical (each
// got-label pairs with exactly one want-label and vice versa).
func Partitions[K comparable](got, want map[K]int) Diagnostic {
	d := pass()
	if len(got) != len(want) {
		d.failf("labelings cover %d vs %d nodes", len(got), len(want))
		return d
	}

	fwd := make(map[int]int) // got label -> want label
	bwd := make(map[int]int) // want label -> got label
	for id, gl := range got {
		wl, ok := want[id]
		if !ok {
			d.failf("node %v labeled in compiled result but missing from reference", id)
			continue
		}
		if prev, seen := fwd[gl]; seen && prev != wl {
			d.failf("compiled component %d spans reference components %d and %d (merge)", gl, prev, wl)
		}
		if prev, seen := bwd[wl]; seen && prev != gl {
			d.failf("reference component %d spans compiled components %d and %d (split)", wl, prev, gl)
		}
		fwd[gl] = wl
		bwd[wl] = gl
	}

	return d
}
