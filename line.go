package planar

import "math"

// Line represents a line segment. A [Polyline] consists of consecutive lines,
// one per pair of neighbouring waypoints.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Eval evaluates the line at t. Values outside of [0, 1] extrapolate.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Direction returns P1 − P0.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0)
}

// UnitTangent returns the normalized direction of the line. It is NaN for
// lines of zero length.
func (l Line) UnitTangent() Vec2 {
	return l.Direction().Normalize()
}

// Nearest returns the squared distance between pt and the closest point on
// the line, and the parameter t ∈ [0, 1] of that point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// SignedDistance returns the distance of pt from the infinite line through
// l, positive if pt lies to the left of the direction P0 → P1.
func (l Line) SignedDistance(pt Point) float64 {
	d := l.Direction()
	n := d.Hypot()
	if n == 0 {
		return math.NaN()
	}
	return d.Cross(pt.Sub(l.P0)) / n
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}
