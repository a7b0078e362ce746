package planar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Errorf("got %s, expected %s", got, want)
	}
}

func assertClose(t *testing.T, what string, got, want, epsilon float64) {
	t.Helper()
	if d := got - want; d > epsilon || d < -epsilon {
		t.Errorf("%s: got %g, want %g ± %g", what, got, want, epsilon)
	}
}

func mustPolyline(t testing.TB, pts ...Point) *Polyline {
	t.Helper()
	p, err := NewPolyline(pts)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// fullCircle returns n waypoints on a counter-clockwise circle, without
// repeating the first one.
func fullCircle(center Point, r float64, n int) []Point {
	return Arc{Center: center, Radius: r, SweepAngle: 2 * math.Pi}.Sample(n + 1)[:n]
}

// trefoil returns n waypoints of a closed, non-convex curve with varying
// curvature.
func trefoil(n int) []Point {
	pts := make([]Point, n)
	for i := range n {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 5 + 2*math.Cos(3*th)
		pts[i] = Pt(r*math.Cos(th), r*math.Sin(th))
	}
	return pts
}
