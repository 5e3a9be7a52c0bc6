package nurbs

import "math"

// Epsilon is the magnitude below which denominators are treated as zero
// throughout knot construction and evaluation.
const Epsilon = 1e-10

// KnotVector is a non-decreasing sequence of parameter values.
type KnotVector []float64

// ClampedKnots returns the clamped knot vector of a curve with count control
// points and the given degree. The degree is clamped to count-1 for the
// purpose of building the vector, so the result always has
// count + min(degree, count-1) + 1 entries. The first entries are 0, the last
// are 1 and interior knots are spaced uniformly.
//
// With no control points, the result is [0, 1].
func ClampedKnots(count, degree int) KnotVector {
	if count <= 0 {
		return KnotVector{0, 1}
	}
	n := count - 1
	d := max(min(degree, n), 0)
	m := n + d + 1

	knots := make(KnotVector, 0, m+1)
	for i := 0; i <= m; i++ {
		var k float64
		switch {
		case i < d:
			k = 0
		case i > n:
			k = 1
		default:
			denom := float64(n - d + 1)
			if math.Abs(denom) < Epsilon {
				k = float64(i) / float64(m)
			} else {
				k = float64(i-d) / denom
			}
		}
		knots = append(knots, k)
	}
	return knots
}

// Clone returns a copy of the knot vector.
func (kv KnotVector) Clone() KnotVector {
	if kv == nil {
		return nil
	}
	return append(KnotVector(nil), kv...)
}

// IsNonDecreasing reports whether every knot is at least as large as its
// predecessor.
func (kv KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}
