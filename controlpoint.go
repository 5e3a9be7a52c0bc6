package nurbs

import "fmt"

// ControlPoint is a weighted point in homogeneous 2D space. Weights should be
// positive; other weights are accepted but may produce degenerate curves.
type ControlPoint struct {
	X      float64
	Y      float64
	Weight float64
}

// CP returns the control point (x, y) with weight w.
func CP(x, y, w float64) ControlPoint {
	return ControlPoint{X: x, Y: y, Weight: w}
}

// Point returns the control point's Euclidean position, ignoring its weight.
func (cp ControlPoint) Point() Point {
	return Point{X: cp.X, Y: cp.Y}
}

// Transform applies an affine transformation to the control point's position.
// The weight is unchanged.
func (cp ControlPoint) Transform(aff Affine) ControlPoint {
	pt := cp.Point().Transform(aff)
	return ControlPoint{X: pt.X, Y: pt.Y, Weight: cp.Weight}
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("(%g, %g; w=%g)", cp.X, cp.Y, cp.Weight)
}
