package nurbs

import "math"

// Basis returns the degree+1 B-spline basis functions that are nonzero over
// the given knot span, evaluated at u, using the Cox–de Boor recursion.
//
// If span is not a valid span for the degree (span < degree or
// span+degree >= len(kv)), all basis values are zero.
func (kv KnotVector) Basis(span, degree int, u float64) []float64 {
	if degree < 0 {
		return nil
	}
	var s basisScratch
	return kv.basis(&s, span, degree, u)
}

// basisScratch holds the working arrays of the basis recursion so that
// repeated evaluations of the same curve can reuse them.
type basisScratch struct {
	basis, left, right []float64
}

func (s *basisScratch) reset(degree int) {
	if cap(s.basis) < degree+1 {
		s.basis = make([]float64, degree+1)
		s.left = make([]float64, degree+1)
		s.right = make([]float64, degree+1)
		return
	}
	s.basis = s.basis[:degree+1]
	s.left = s.left[:degree+1]
	s.right = s.right[:degree+1]
	clear(s.basis)
	clear(s.left)
	clear(s.right)
}

// basis computes the basis functions into s.basis and returns it. The result
// is only valid until the next call with the same scratch space.
func (kv KnotVector) basis(s *basisScratch, span, degree int, u float64) []float64 {
	s.reset(degree)
	if span < degree || span+degree >= len(kv) {
		return s.basis
	}

	basis, left, right := s.basis, s.left, s.right
	basis[0] = 1
	for j := 1; j <= degree; j++ {
		if span+1 < j || span+j >= len(kv) {
			continue
		}
		left[j] = u - kv[span+1-j]
		right[j] = kv[span+j] - u

		var saved float64
		for r := range j {
			temp := 0.0
			if d := right[r+1] + left[j-r]; !(math.Abs(d) < Epsilon) { // NaN divisors propagate
				temp = basis[r] / d
			}
			basis[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		basis[j] = saved
	}
	return basis
}
