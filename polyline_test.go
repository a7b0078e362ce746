package planar

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPolylineInvalid(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"empty", nil},
		{"single", []Point{Pt(0, 0)}},
		{"duplicate", []Point{Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(2, 0)}},
		{"NaN", []Point{Pt(0, 0), Pt(math.NaN(), 0)}},
		{"Inf", []Point{Pt(0, 0), Pt(1, math.Inf(1))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPolyline(tt.pts); !errors.Is(err, ErrInvalidCurve) {
				t.Errorf("got error %v, want ErrInvalidCurve", err)
			}
		})
	}
}

func TestPolylineBreakpoints(t *testing.T) {
	p := mustPolyline(t, Pt(0, 0), Pt(3, 4), Pt(3, 5))
	diff(t, []float64{0, 5, 6}, p.Breakpoints())
	if p.SMin() != 0 || p.SMax() != 6 || p.TotalDist() != 6 {
		t.Errorf("got domain [%g, %g], want [0, 6]", p.SMin(), p.SMax())
	}
	if n := p.NumPieces(); n != 2 {
		t.Errorf("got %d pieces, want 2", n)
	}
	diff(t, Rect{0, 0, 3, 5}, p.BoundingBox())
}

func TestPolylineCopiesWaypoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0)}
	p := mustPolyline(t, pts...)
	pts[1] = Pt(5, 5)
	assertNear(t, p.Pos(1), Pt(1, 0), 0)

	got := p.Waypoints()
	got[0] = Pt(-1, -1)
	assertNear(t, p.Pos(0), Pt(0, 0), 0)
}

func TestPolylineEval(t *testing.T) {
	p := mustPolyline(t, Pt(0, 0), Pt(1, 0), Pt(1, 1))
	tests := []struct {
		s    float64
		pos  Point
		utan Vec2
	}{
		{0, Pt(0, 0), Vec(1, 0)},
		{0.5, Pt(0.5, 0), Vec(1, 0)},
		{1.5, Pt(1, 0.5), Vec(0, 1)},
		{2, Pt(1, 1), Vec(0, 1)},
		// extrapolation along the first and last segment
		{-1, Pt(-1, 0), Vec(1, 0)},
		{3, Pt(1, 2), Vec(0, 1)},
	}
	for _, tt := range tests {
		pos, utan := p.PosUnitTangent(tt.s)
		assertNear(t, pos, tt.pos, 1e-12)
		assertNear(t, p.Pos(tt.s), tt.pos, 1e-12)
		diff(t, tt.utan, utan, cmpopts.EquateApprox(0, 1e-12))
		diff(t, tt.utan, p.UnitTangent(tt.s), cmpopts.EquateApprox(0, 1e-12))
		diff(t, tt.utan, p.Tangent(tt.s), cmpopts.EquateApprox(0, 1e-12))
	}

	if !p.IsInterior(1) || p.IsInterior(0) || p.IsInterior(2.5) {
		t.Error("wrong interior test")
	}
	assertClose(t, "Clip", p.Clip(-3), 0, 0)
	assertClose(t, "Clip", p.Clip(7), 2, 0)
	assertNear(t, p.Pos(p.Clip(3)), Pt(1, 1), 1e-12)
}

func TestPolylineAdd(t *testing.T) {
	p := mustPolyline(t, Pt(0, 0), Pt(1, 0))
	if err := p.Add(Pt(1, 1), Pt(2, 1)); err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0, 1, 2, 3}, p.Breakpoints())
	assertNear(t, p.Pos(2.5), Pt(1.5, 1), 1e-12)

	// A zero-length segment is rejected without modifying the polyline.
	if err := p.Add(Pt(3, 1), Pt(3, 1)); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("got error %v, want ErrInvalidCurve", err)
	}
	if err := p.Add(Pt(2, 1)); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("got error %v, want ErrInvalidCurve", err)
	}
	if n := p.NumWaypoints(); n != 4 {
		t.Errorf("got %d waypoints after failed Add, want 4", n)
	}
	diff(t, []float64{0, 1, 2, 3}, p.Breakpoints())

	if err := p.Add(); err != nil {
		t.Errorf("adding nothing failed: %v", err)
	}
}

func TestPolylineAddMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	p := mustPolyline(t, Pt(0, 0), Pt(1, 1))
	for range 50 {
		n := 1 + r.IntN(4)
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Pt(r.Float64()*10, r.Float64()*10)
		}
		if err := p.Add(pts...); err != nil {
			t.Fatal(err)
		}
		bk := p.Breakpoints()
		if len(bk) != p.NumWaypoints() {
			t.Fatalf("got %d breakpoints for %d waypoints", len(bk), p.NumWaypoints())
		}
		for i := 1; i < len(bk); i++ {
			if bk[i] <= bk[i-1] {
				t.Fatalf("breakpoints not strictly increasing at %d: %v", i, bk)
			}
		}
	}

	// Breakpoints built incrementally agree with those built at once.
	q := mustPolyline(t, p.Waypoints()...)
	diff(t, q.Breakpoints(), p.Breakpoints(), cmpopts.EquateApprox(0, 1e-9))
}

func TestPolylineWithBreakpoints(t *testing.T) {
	pts := []Point{Pt(0.34, -1.2), Pt(30.1, 15.0), Pt(20.0, 23.1)}
	chord := mustPolyline(t, pts...)
	bk := chord.Breakpoints()
	for i := range bk {
		bk[i] += 10
	}
	p, err := NewPolylineWithBreakpoints(pts, bk)
	if err != nil {
		t.Fatal(err)
	}
	if p.SMin() != 10 {
		t.Errorf("got SMin %g, want 10", p.SMin())
	}
	assertNear(t, p.Pos(chord.SMax()/2+10), chord.Pos(chord.SMax()/2), 1e-9)

	if _, err := NewPolylineWithBreakpoints(pts, []float64{0, 2, 1}); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("got error %v, want ErrInvalidCurve", err)
	}
	if _, err := NewPolylineWithBreakpoints(pts, []float64{0, 2}); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("got error %v, want ErrInvalidCurve", err)
	}
}

func TestPolylineProjectCorner(t *testing.T) {
	// The query point is equidistant from both segments. Starting on the
	// first segment, the projection stays there.
	p := mustPolyline(t, Pt(0, 0), Pt(1, 0), Pt(1, 1))
	f := p.Project(Pt(0.5, 0.5), 0.5, nil)
	if !f.Converged {
		t.Fatal("projection didn't converge")
	}
	assertClose(t, "S", f.S, 0.5, 1e-9)
	assertClose(t, "Offset", f.Offset, 0.5, 1e-9)

	// Starting on the second segment, it converges to the foot point there,
	// also to the left of the path.
	f = p.Project(Pt(0.5, 0.5), 1.4, nil)
	if !f.Converged {
		t.Fatal("projection didn't converge")
	}
	assertClose(t, "S", f.S, 1.5, 1e-9)
	assertClose(t, "Offset", f.Offset, 0.5, 1e-9)
}

func TestPolylineProjectNotConverged(t *testing.T) {
	p := mustPolyline(t, Pt(0, 0), Pt(10, 0))
	opts := &ProjectOptions{MaxIter: 1}
	f := p.Project(Pt(5, 1), 0, opts)
	if f.Converged {
		t.Fatal("expected no convergence after a single large step")
	}
	if !math.IsNaN(f.S) {
		t.Errorf("got S = %g, want NaN", f.S)
	}
	assertClose(t, "Offset", f.Offset, 1, 1e-12)

	// The generic function returns the last iterate instead.
	g := Project(p, Pt(5, 1), 0, opts)
	if g.Converged {
		t.Fatal("expected no convergence after a single large step")
	}
	assertClose(t, "S", g.S, 5, 1e-12)
	assertClose(t, "Offset", g.Offset, 1, 1e-12)
}

func TestPolylineNearest(t *testing.T) {
	p := mustPolyline(t, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	s, distSq := p.Nearest(Pt(11, 6))
	assertClose(t, "s", s, 16, 1e-12)
	assertClose(t, "distSq", distSq, 1, 1e-12)

	// The nearest point makes a good initial guess.
	s, _ = p.Nearest(Pt(3, 9))
	f := p.Project(Pt(3, 9), s, nil)
	if !f.Converged {
		t.Fatal("projection didn't converge")
	}
	assertClose(t, "S", f.S, 27, 1e-9)
	assertClose(t, "Offset", f.Offset, 1, 1e-9)
}

func BenchmarkPolylinePosUnitTangent(b *testing.B) {
	pts := make([]Point, 1000)
	for i := range pts {
		pts[i] = Pt(float64(i), math.Sin(float64(i)))
	}
	p, err := NewPolyline(pts)
	if err != nil {
		b.Fatal(err)
	}
	s := p.TotalDist() * 0.77
	for range b.N {
		p.PosUnitTangent(s)
	}
}
