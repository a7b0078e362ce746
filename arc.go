package planar

import "math"

// Arc is a circular arc. It is used to generate waypoints along circles, for
// example for tracks and turns.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	// SweepAngle is the signed angle covered by the arc. Positive values
	// sweep counter-clockwise. It may exceed a full revolution, in which
	// case samples overlap spatially.
	SweepAngle float64
}

// Eval returns the point at fraction t of the sweep.
func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle + t*a.SweepAngle).Mul(a.Radius))
}

// Sample returns n evenly spaced points along the arc, including both end
// points.
func (a Arc) Sample(n int) []Point {
	out := make([]Point, 0, max(n, 0))
	for _, t := range Linspace(0, 1, n) {
		out = append(out, a.Eval(t))
	}
	return out
}

// Curvature returns the signed curvature of the arc: 1/r for
// counter-clockwise arcs and −1/r for clockwise arcs.
func (a Arc) Curvature() float64 {
	return math.Copysign(1/a.Radius, a.SweepAngle)
}

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return math.Abs(a.SweepAngle) * a.Radius
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}
