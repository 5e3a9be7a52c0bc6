package nurbs

// GenerateCurvePoints builds a curve of the given degree from parallel slices
// of x coordinates, y coordinates and weights, samples it at count points and
// returns the samples interleaved as [x0, y0, x1, y1, ...].
//
// Only as many control points as the shortest of xs, ys and ws are used.
func GenerateCurvePoints(xs, ys, ws []float64, degree, count int) []float64 {
	return AppendCurvePoints(nil, xs, ys, ws, degree, count)
}

// AppendCurvePoints is like [GenerateCurvePoints] but appends the interleaved
// samples to dst and returns the extended slice. Callers that sample
// repeatedly can reuse a buffer this way.
func AppendCurvePoints(dst []float64, xs, ys, ws []float64, degree, count int) []float64 {
	c := NewCurve(degree)
	n := min(len(xs), len(ys), len(ws))
	c.points = make([]ControlPoint, 0, n)
	for i := range n {
		c.AddControlPoint(CP(xs[i], ys[i], ws[i]))
	}
	for cp := range c.Samples(count) {
		dst = append(dst, cp.X, cp.Y)
	}
	return dst
}
