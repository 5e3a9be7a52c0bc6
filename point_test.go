package nurbs

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(2, 3).Sub(Pt(1, 1)), Vec(1, 2))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointIsInfNaN(t *testing.T) {
	if Pt(1, 2).IsInf() || Pt(1, 2).IsNaN() {
		t.Error("finite point reported as infinite or NaN")
	}
	if !Pt(math.Inf(1), 0).IsInf() {
		t.Error("infinite point reported as finite")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("NaN point not reported as NaN")
	}
}

func TestControlPointTransform(t *testing.T) {
	cp := CP(3, 4, 0.25).Transform(Translate(Vec(1, -1)))
	diff(t, CP(4, 3, 0.25), cp)
	diff(t, Pt(4, 3), cp.Point())
	if s := CP(1, 2, 0.5).String(); s != "(1, 2; w=0.5)" {
		t.Errorf("got %q", s)
	}
}
