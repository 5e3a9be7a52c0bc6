// Package nurbs evaluates two-dimensional non-uniform rational B-spline
// (NURBS) curves.
//
// A [Curve] is built from weighted control points ([ControlPoint]) and a
// degree. Appending control points keeps a clamped, uniform knot vector up to
// date (see [ClampedKnots]), which makes the curve start at its first and end
// at its last control point. Callers can replace the knot vector with
// [Curve.SetKnots].
//
// # Evaluation
//
// [Curve.Evaluate] computes the point of the curve at a parameter u ∈ [0, 1]
// by locating the knot span that contains u ([KnotVector.Span]), computing the
// nonzero basis functions over that span with the Cox–de Boor recursion
// ([KnotVector.Basis]) and combining them with the weighted control points.
//
// Evaluation never panics. Inconsistent input, such as too few knots for the
// degree or weights that sum to zero, is reported by a false second return
// value. Denominators smaller than [Epsilon] in magnitude contribute zero
// instead of infinities or NaNs.
//
// # Sampling
//
// [Curve.Samples] and [Curve.SamplePoints] evaluate the curve at uniformly
// spaced parameters, for example to draw it as a polyline. Sampling always
// produces the requested number of points: points that cannot be evaluated
// are replaced with the first control point. [GenerateCurvePoints] and
// [AppendCurvePoints] do the same for parallel slices of coordinates and
// weights and produce interleaved coordinates.
//
// # Concurrency
//
// Curves are not safe for concurrent mutation. Concurrent calls to methods
// that don't modify a curve, such as Evaluate, are safe.
package nurbs
