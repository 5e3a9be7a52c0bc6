package nurbs

// maxSpanIterations bounds the binary search in [KnotVector.Span] so that it
// terminates on malformed knot vectors.
const maxSpanIterations = 100

// clampParam clamps u to [0, 1]. NaN is mapped to 0.
func clampParam(u float64) float64 {
	switch {
	case u > 1:
		return 1
	case u >= 0:
		return u
	default:
		return 0
	}
}

// Span returns the index i of the knot span [kv[i], kv[i+1]) that contains u,
// for a curve with count control points of the given degree. u is clamped to
// [0, 1] first.
//
// The second return value is false if the span cannot be located because
// there are no control points or too few knots for the degree.
//
// On knot vectors that aren't non-decreasing the search may not converge, in
// which case the span at index degree is returned.
func (kv KnotVector) Span(count, degree int, u float64) (int, bool) {
	if count < 1 || len(kv) < 2 || degree < 0 {
		return 0, false
	}
	n := count - 1
	if n+1 >= len(kv) || degree >= len(kv) {
		return 0, false
	}

	u = clampParam(u)
	if u >= kv[n+1] {
		return n, true
	}
	if u <= kv[degree] {
		return degree, true
	}

	low, high := degree, n+1
	mid := (low + high) / 2
	for range maxSpanIterations {
		if mid+1 >= len(kv) {
			break
		}
		if !(u < kv[mid] || u >= kv[mid+1]) {
			return mid, true
		}
		if u < kv[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return degree, true
}
