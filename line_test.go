package planar

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	assertClose(t, "length", l.Length(), math.Sqrt(2.0), 1e-12)
	sub := l.Subsegment(0.25, 0.75)
	assertClose(t, "subsegment length", sub.Length(), math.Sqrt(2.0)/2, 1e-12)
	if got := l.Translate(Vec(1, 2)).Start(); got != Pt(1, 2) {
		t.Errorf("got %v, want (1, 2)", got)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(math.NaN(), 0.0), Pt(0.0, 1.0)}).IsNaN() {
		t.Errorf("line isn't NaN but should be")
	}
}

func TestLineEval(t *testing.T) {
	l := Line{Pt(1, 1), Pt(3, 1)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(1, 1)},
		{0.5, Pt(2, 1)},
		{1, Pt(3, 1)},
		{-1, Pt(-1, 1)},
		{2, Pt(5, 1)},
	}
	for _, tt := range tests {
		if got := l.Eval(tt.t); got != tt.want {
			t.Errorf("Eval(%g) = %v, want %v", tt.t, got, tt.want)
		}
	}
	diff(t, Vec(1, 0), l.UnitTangent())
	diff(t, Rect{1, 1, 3, 1}, l.BoundingBox())
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 3), 9, 0.5},
		{Pt(-2, 0), 4, 0},
		{Pt(13, 4), 25, 1},
		{Pt(2.5, -1), 1, 0.25},
	}
	for _, tt := range tests {
		distSq, ts := l.Nearest(tt.pt)
		assertClose(t, "squared distance", distSq, tt.distSq, 1e-12)
		assertClose(t, "parameter", ts, tt.t, 1e-12)
	}
}

func TestLineSignedDistance(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	assertClose(t, "left", l.SignedDistance(Pt(5, 3)), 3, 1e-12)
	assertClose(t, "right", l.SignedDistance(Pt(-5, -2)), -2, 1e-12)
	assertClose(t, "reversed", Line{Pt(10, 0), Pt(0, 0)}.SignedDistance(Pt(5, 3)), -3, 1e-12)
	if d := (Line{Pt(1, 1), Pt(1, 1)}).SignedDistance(Pt(0, 0)); !math.IsNaN(d) {
		t.Errorf("got %g for degenerate line, want NaN", d)
	}
}
