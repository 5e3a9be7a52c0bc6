package nurbs

import (
	"iter"
	"math"
)

// Curve is a two-dimensional non-uniform rational B-spline.
//
// A curve starts out without control points and grows by appending them with
// [Curve.AddControlPoint], which also rebuilds the knot vector as a clamped,
// uniform vector (see [ClampedKnots]). Control points can be modified in
// place with [Curve.UpdateControlPoint], which does not touch the knot vector.
//
// Curves aren't safe for concurrent mutation.
type Curve struct {
	points []ControlPoint
	knots  KnotVector
	degree int
}

// NewCurve returns an empty curve of the given degree. Negative degrees are
// treated as 0. The degree cannot be changed later.
func NewCurve(degree int) *Curve {
	return &Curve{degree: max(degree, 0)}
}

// Degree returns the curve's degree.
func (c *Curve) Degree() int { return c.degree }

// NumControlPoints returns the number of control points.
func (c *Curve) NumControlPoints() int { return len(c.points) }

// AddControlPoint appends a control point and rebuilds the knot vector.
func (c *Curve) AddControlPoint(cp ControlPoint) {
	c.points = append(c.points, cp)
	c.knots = ClampedKnots(len(c.points), c.degree)
}

// ControlPoint returns a copy of the control point at index i. The second
// return value is false if i is out of range.
func (c *Curve) ControlPoint(i int) (ControlPoint, bool) {
	if i < 0 || i >= len(c.points) {
		return ControlPoint{}, false
	}
	return c.points[i], true
}

// ControlPoints returns a copy of all control points, in order.
func (c *Curve) ControlPoints() []ControlPoint {
	return append([]ControlPoint(nil), c.points...)
}

// UpdateControlPoint replaces the control point at index i and reports
// whether i was in range. The knot vector is left as is, so that editing a
// point doesn't change the curve's parameterization.
func (c *Curve) UpdateControlPoint(i int, x, y, weight float64) bool {
	if i < 0 || i >= len(c.points) {
		return false
	}
	c.points[i] = ControlPoint{X: x, Y: y, Weight: weight}
	return true
}

// SetKnots replaces the knot vector with a copy of knots. The knots are kept
// until the next call to [Curve.AddControlPoint]. Knot vectors that don't fit
// the curve's control points and degree aren't rejected, but evaluation may
// then produce no result.
func (c *Curve) SetKnots(knots []float64) {
	c.knots = KnotVector(knots).Clone()
}

// Knots returns a copy of the knot vector.
func (c *Curve) Knots() KnotVector {
	return c.knots.Clone()
}

// Evaluate computes the point of the curve at parameter u. Parameters outside
// [0, 1] are clamped. The returned point always has a weight of 1.
//
// The second return value is false if the curve cannot be evaluated: it has
// no control points, its knot vector doesn't fit the degree, or the weights
// sum to (nearly) zero at u.
func (c *Curve) Evaluate(u float64) (ControlPoint, bool) {
	var s basisScratch
	return c.evaluate(&s, u)
}

func (c *Curve) evaluate(s *basisScratch, u float64) (ControlPoint, bool) {
	if len(c.points) == 0 || len(c.knots) == 0 {
		return ControlPoint{}, false
	}
	u = clampParam(u)
	span, ok := c.knots.Span(len(c.points), c.degree, u)
	if !ok || span < c.degree || span >= len(c.points) {
		return ControlPoint{}, false
	}

	basis := c.knots.basis(s, span, c.degree, u)
	var nx, ny, denom float64
	for i, b := range basis {
		idx := span - c.degree + i
		if idx >= len(c.points) {
			continue
		}
		cp := c.points[idx]
		nx += b * cp.Weight * cp.X
		ny += b * cp.Weight * cp.Y
		denom += b * cp.Weight
	}
	if math.Abs(denom) < Epsilon {
		return ControlPoint{}, false
	}
	return ControlPoint{X: nx / denom, Y: ny / denom, Weight: 1}, true
}

// fallback is substituted for samples that cannot be evaluated.
func (c *Curve) fallback() ControlPoint {
	if len(c.points) > 0 {
		return c.points[0]
	}
	return ControlPoint{X: 0, Y: 0, Weight: 1}
}

// EvalPoint is like [Curve.Evaluate] but returns the position only, using the
// same fallback as [Curve.SamplePoints] when the curve cannot be evaluated.
func (c *Curve) EvalPoint(u float64) Point {
	cp, ok := c.Evaluate(u)
	if !ok {
		cp = c.fallback()
	}
	return cp.Point()
}

// Samples returns an iterator over count points of the curve at uniformly
// spaced parameters, starting at u = 0 and ending at exactly u = 1. At least
// two points are produced.
//
// Samples that cannot be evaluated are replaced with the first control point,
// so the sequence always has the requested length. The sequence is empty if
// the curve has fewer than degree+1 control points or no knots.
func (c *Curve) Samples(count int) iter.Seq[ControlPoint] {
	return func(yield func(ControlPoint) bool) {
		if len(c.points) < c.degree+1 || len(c.knots) == 0 {
			return
		}
		count := max(count, 2)
		step := 1 / float64(count-1)

		var s basisScratch
		for i := range count {
			u := float64(i) * step
			if i == count-1 {
				u = 1
			}
			cp, ok := c.evaluate(&s, u)
			if !ok {
				cp = c.fallback()
			}
			if !yield(cp) {
				return
			}
		}
	}
}

// SamplePoints returns the points produced by [Curve.Samples].
func (c *Curve) SamplePoints(count int) []ControlPoint {
	out := make([]ControlPoint, 0, max(count, 2))
	for cp := range c.Samples(count) {
		out = append(out, cp)
	}
	return out
}

// ControlBoundingBox returns the smallest rectangle enclosing all control
// points. For positive weights, the curve lies within it. The zero Rect is
// returned for curves without control points.
func (c *Curve) ControlBoundingBox() Rect {
	if len(c.points) == 0 {
		return Rect{}
	}
	p0 := c.points[0].Point()
	r := NewRectFromPoints(p0, p0)
	for _, cp := range c.points[1:] {
		r = r.UnionPoint(cp.Point())
	}
	return r
}

// Transform returns a new curve whose control points are transformed by aff.
// Weights, knots and degree are carried over unchanged.
func (c *Curve) Transform(aff Affine) *Curve {
	out := &Curve{
		points: make([]ControlPoint, len(c.points)),
		knots:  c.knots.Clone(),
		degree: c.degree,
	}
	for i, cp := range c.points {
		out.points[i] = cp.Transform(aff)
	}
	return out
}
