package nurbs

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBasisPartitionOfUnity(t *testing.T) {
	const epsilon = 1e-12
	for degree := 0; degree <= 4; degree++ {
		count := degree + 3
		kv := ClampedKnots(count, degree)
		for u := 0.0; u <= 1; u += 1.0 / 64 {
			span, ok := kv.Span(count, degree, u)
			if !ok {
				t.Fatalf("degree=%d u=%g: span not located", degree, u)
			}
			basis := kv.Basis(span, degree, u)
			if len(basis) != degree+1 {
				t.Fatalf("got %d basis functions, want %d", len(basis), degree+1)
			}
			var sum float64
			for _, b := range basis {
				if b < -epsilon {
					t.Errorf("degree=%d u=%g: negative basis value %g", degree, u, b)
				}
				sum += b
			}
			if math.Abs(sum-1) > epsilon {
				t.Errorf("degree=%d u=%g: basis sums to %g", degree, u, sum)
			}
		}
	}
}

func TestBasisKnownValues(t *testing.T) {
	kv := ClampedKnots(3, 2)
	// Quadratic Bernstein polynomials at u = 0.25.
	diff(t, []float64{0.5625, 0.375, 0.0625}, kv.Basis(2, 2, 0.25), cmpopts.EquateApprox(0, 1e-12))

	kv = ClampedKnots(2, 1)
	diff(t, []float64{1, 0}, kv.Basis(1, 1, 0))
	diff(t, []float64{0.5, 0.5}, kv.Basis(1, 1, 0.5))
	diff(t, []float64{0, 1}, kv.Basis(1, 1, 1))
}

func TestBasisInvalidSpan(t *testing.T) {
	kv := ClampedKnots(4, 3)
	diff(t, []float64{0, 0, 0, 0}, kv.Basis(2, 3, 0.5))
	diff(t, []float64{0, 0, 0, 0}, kv.Basis(5, 3, 0.5))
	diff(t, []float64{0, 0}, KnotVector{0, 1}.Basis(1, 1, 0.5))
}

func TestBasisDegenerateKnots(t *testing.T) {
	// All knots coincide, so every divisor is zero.
	kv := KnotVector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	got := kv.Basis(2, 2, 0.5)
	for i, b := range got {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			t.Errorf("basis[%d] = %g", i, b)
		}
	}
	diff(t, []float64{0, 0, 0}, got)
}

func TestBasisScratchReuse(t *testing.T) {
	kv := ClampedKnots(5, 3)
	var s basisScratch
	for _, u := range []float64{0.1, 0.7, 0.3} {
		span, _ := kv.Span(5, 3, u)
		want := kv.Basis(span, 3, u)
		got := kv.basis(&s, span, 3, u)
		diff(t, want, got)
	}
}
