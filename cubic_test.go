package planar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezArclen(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, trueArclen, c.Arclen(accuracy), cmpopts.EquateApprox(0, accuracy))
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	left, right := c.Subdivide()
	if left.Start() != c.Start() || right.End() != c.End() {
		t.Errorf("subdivision moved the end points")
	}
	if left.End() != right.Start() {
		t.Errorf("halves aren't connected: %v and %v", left.End(), right.Start())
	}
	for _, u := range Linspace(0, 1, 9) {
		assertNear(t, left.Eval(u), c.Eval(u/2), 1e-12)
		assertNear(t, right.Eval(u), c.Eval(0.5+u/2), 1e-12)
	}
	assertClose(t, "length of halves", left.Arclen(1e-9)+right.Arclen(1e-9), c.Arclen(1e-9), 1e-8)
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	box := c.BoundingBox()
	diff(t, Rect{0, 0, 4, 2}, box)
	// The curve peaks at y = 1.5, inside the control polygon.
	assertClose(t, "peak", c.Eval(0.5).Y, 1.5, 1e-12)
	for _, u := range Linspace(0, 1, 17) {
		if !box.Inflate(1e-12, 1e-12).Contains(c.Eval(u)) {
			t.Errorf("bounding box %v doesn't contain %v", box, c.Eval(u))
		}
	}
	if c.IsInf() || c.IsNaN() {
		t.Errorf("finite curve reported as infinite or NaN")
	}
}
