package planar

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// cubicPiece holds the power basis coefficients of one spline piece, in the
// local coordinate h = s − s_i:
//
//	p(s) = a + b·h + c·h² + d·h³
type cubicPiece struct {
	a, b, c, d Vec2
}

func (cp cubicPiece) pos(h float64) Point {
	return Point(cp.a.Add(cp.b.Add(cp.c.Add(cp.d.Mul(h)).Mul(h)).Mul(h)))
}

func (cp cubicPiece) deriv(h float64) Vec2 {
	return cp.b.Add(cp.c.Mul(2).Add(cp.d.Mul(3 * h)).Mul(h))
}

func (cp cubicPiece) deriv2(h float64) Vec2 {
	return cp.c.Mul(2).Add(cp.d.Mul(6 * h))
}

func (cp cubicPiece) deriv3() Vec2 {
	return cp.d.Mul(6)
}

// piecewiseCubic is an interpolating cubic spline over the breakpoints bk,
// with one piece per pair of consecutive breakpoints. It is immutable after
// construction.
type piecewiseCubic struct {
	pts    []Point
	bk     []float64
	pieces []cubicPiece
}

type boundary int

const (
	naturalBoundary boundary = iota
	periodicBoundary
)

// fitSpline interpolates pts at the breakpoints bk. For periodic splines,
// pts must already be closed, i.e. its last point must equal its first.
//
// Both coordinates share the same system matrix, so they are solved
// together. The unknowns are the second derivatives M_i at the breakpoints.
func fitSpline(pts []Point, bk []float64, bc boundary) (piecewiseCubic, error) {
	nseg := len(bk) - 1
	h := make([]float64, nseg)
	slope := make([]Vec2, nseg)
	for i := range nseg {
		h[i] = bk[i+1] - bk[i]
		slope[i] = pts[i+1].Sub(pts[i]).Div(h[i])
	}

	// m[i] is the second derivative at breakpoint i; m[nseg] is filled in
	// according to the boundary condition.
	m := make([]Vec2, nseg+1)
	switch bc {
	case naturalBoundary:
		// M_0 = M_n = 0; the system only covers interior breakpoints.
		n := nseg - 1
		if n > 0 {
			A := mat.NewDense(n, n, nil)
			B := mat.NewDense(n, 2, nil)
			for r := range n {
				i := r + 1
				if r > 0 {
					A.Set(r, r-1, h[i-1])
				}
				A.Set(r, r, 2*(h[i-1]+h[i]))
				if r < n-1 {
					A.Set(r, r+1, h[i])
				}
				rhs := slope[i].Sub(slope[i-1]).Mul(6)
				B.Set(r, 0, rhs.X)
				B.Set(r, 1, rhs.Y)
			}
			var sol mat.Dense
			if err := sol.Solve(A, B); err != nil {
				return piecewiseCubic{}, invalidf("fitting natural spline: %v", err)
			}
			for r := range n {
				m[r+1] = Vec(sol.At(r, 0), sol.At(r, 1))
			}
		}
	case periodicBoundary:
		// Cyclic system: M_n = M_0 and the neighbour of breakpoint 0 is
		// breakpoint n−1.
		n := nseg
		A := mat.NewDense(n, n, nil)
		B := mat.NewDense(n, 2, nil)
		for i := range n {
			prev := (i - 1 + n) % n
			next := (i + 1) % n
			A.Set(i, prev, A.At(i, prev)+h[prev])
			A.Set(i, i, A.At(i, i)+2*(h[prev]+h[i]))
			A.Set(i, next, A.At(i, next)+h[i])
			rhs := slope[i].Sub(slope[prev]).Mul(6)
			B.Set(i, 0, rhs.X)
			B.Set(i, 1, rhs.Y)
		}
		var sol mat.Dense
		if err := sol.Solve(A, B); err != nil {
			return piecewiseCubic{}, invalidf("fitting periodic spline: %v", err)
		}
		for i := range n {
			m[i] = Vec(sol.At(i, 0), sol.At(i, 1))
		}
		m[n] = m[0]
	default:
		panic("unreachable")
	}

	pieces := make([]cubicPiece, nseg)
	for i := range nseg {
		pieces[i] = cubicPiece{
			a: Vec2(pts[i]),
			b: slope[i].Sub(m[i].Mul(2).Add(m[i+1]).Mul(h[i] / 6)),
			c: m[i].Mul(0.5),
			d: m[i+1].Sub(m[i]).Div(6 * h[i]),
		}
	}
	return piecewiseCubic{
		pts:    pts,
		bk:     bk,
		pieces: pieces,
	}, nil
}

func (pw *piecewiseCubic) local(s float64) (cubicPiece, float64) {
	idx := segmentIndex(pw.bk, s)
	return pw.pieces[idx], s - pw.bk[idx]
}

func (pw *piecewiseCubic) pos(s float64) Point {
	cp, h := pw.local(s)
	return cp.pos(h)
}

func (pw *piecewiseCubic) deriv(s float64) Vec2 {
	cp, h := pw.local(s)
	return cp.deriv(h)
}

func (pw *piecewiseCubic) deriv2(s float64) Vec2 {
	cp, h := pw.local(s)
	return cp.deriv2(h)
}

// derivs returns the position and the first two derivatives at s with a
// single piece lookup.
func (pw *piecewiseCubic) derivs(s float64) (Point, Vec2, Vec2) {
	cp, h := pw.local(s)
	return cp.pos(h), cp.deriv(h), cp.deriv2(h)
}

func (pw *piecewiseCubic) posUnitTangent(s float64) (Point, Vec2) {
	cp, h := pw.local(s)
	return cp.pos(h), cp.deriv(h).Normalize()
}

func (pw *piecewiseCubic) tangentCurvature(s float64) (Vec2, float64) {
	cp, h := pw.local(s)
	d := cp.deriv(h)
	return d, signedCurvature(d, cp.deriv2(h))
}

func (pw *piecewiseCubic) curvatureRate(s float64) float64 {
	cp, h := pw.local(s)
	return curvatureRate(cp.deriv(h), cp.deriv2(h), cp.deriv3())
}

// CubicSpline is an open interpolating curve that fits x(s) and y(s) as
// independent cubic splines over the chord length of the waypoints, with
// natural boundary conditions (zero second derivative at both ends).
//
// The chord-length parameterization is usually close to unit speed,
// especially with dense waypoints around sharp turns. Outside of the domain
// the first and last pieces are extrapolated, which can diverge quickly.
//
// A CubicSpline cannot be extended. Build a new one from the combined
// waypoints instead.
type CubicSpline struct {
	pw piecewiseCubic
}

// NewCubicSpline returns a spline through pts. At least two waypoints are
// required and consecutive waypoints must be distinct. The waypoints are
// copied.
func NewCubicSpline(pts []Point) (*CubicSpline, error) {
	chord, err := NewPolyline(pts)
	if err != nil {
		return nil, err
	}
	pw, err := fitSpline(chord.pts, chord.arclen, naturalBoundary)
	if err != nil {
		return nil, err
	}
	return &CubicSpline{pw: pw}, nil
}

func (c *CubicSpline) Kind() Kind { return CubicSplineKind }

// Waypoints returns a copy of the spline's waypoints.
func (c *CubicSpline) Waypoints() []Point { return slices.Clone(c.pw.pts) }

// Breakpoints returns a copy of the curve parameter at each waypoint.
func (c *CubicSpline) Breakpoints() []float64 { return slices.Clone(c.pw.bk) }

func (c *CubicSpline) BoundingBox() Rect { return boundingBox(c.pw.pts) }

func (c *CubicSpline) SMin() float64      { return c.pw.bk[0] }
func (c *CubicSpline) SMax() float64      { return c.pw.bk[len(c.pw.bk)-1] }
func (c *CubicSpline) TotalDist() float64 { return c.SMax() - c.SMin() }

func (c *CubicSpline) IsInterior(s float64) bool {
	return s > c.SMin() && s < c.SMax()
}

func (c *CubicSpline) Clip(s float64) float64 {
	return min(max(s, c.SMin()), c.SMax())
}

func (c *CubicSpline) Pos(s float64) Point        { return c.pw.pos(s) }
func (c *CubicSpline) Tangent(s float64) Vec2     { return c.pw.deriv(s) }
func (c *CubicSpline) UnitTangent(s float64) Vec2 { return c.pw.deriv(s).Normalize() }
func (c *CubicSpline) SecondDeriv(s float64) Vec2 { return c.pw.deriv2(s) }
func (c *CubicSpline) PosUnitTangent(s float64) (Point, Vec2) {
	return c.pw.posUnitTangent(s)
}

// Curvature returns the signed curvature at s.
func (c *CubicSpline) Curvature(s float64) float64 {
	_, k := c.pw.tangentCurvature(s)
	return k
}

// ThirdDeriv returns the third derivative, which is constant on each piece.
func (c *CubicSpline) ThirdDeriv(s float64) Vec2 {
	cp, _ := c.pw.local(s)
	return cp.deriv3()
}

// TangentCurvature returns the (non-normalized) tangent and the signed
// curvature at s. Use [CubicSpline.Tangent] if only the tangent is needed.
func (c *CubicSpline) TangentCurvature(s float64) (Vec2, float64) {
	return c.pw.tangentCurvature(s)
}

// CurvatureRate returns the derivative of the signed curvature with respect
// to true arc length, dκ/dσ.
func (c *CubicSpline) CurvatureRate(s float64) float64 {
	return c.pw.curvatureRate(s)
}

func (c *CubicSpline) derivs(s float64) (Point, Vec2, Vec2) {
	return c.pw.derivs(s)
}

// Project is [Project] applied to c.
func (c *CubicSpline) Project(q Point, guess float64, opts *ProjectOptions) Frenet {
	return Project(c, q, guess, opts)
}

// ProjectNewton is [ProjectNewton] applied to c.
func (c *CubicSpline) ProjectNewton(q Point, guess float64, opts *ProjectOptions) Frenet {
	return ProjectNewton(c, q, guess, opts)
}

// PeriodicSpline is a closed interpolating curve. It fits x(s) and y(s) as
// cubic splines with periodic boundary conditions over the chord length of
// the waypoints, with the first waypoint implicitly appended to close the
// loop. Do not repeat the first waypoint at the end yourself.
//
// Every evaluation wraps its argument first, so that f(s) == f(s + k·Period())
// for all integers k.
type PeriodicSpline struct {
	pw piecewiseCubic
}

// NewPeriodicSpline returns a closed spline through pts. At least two
// waypoints are required, consecutive waypoints must be distinct, and the
// last waypoint must differ from the first. The waypoints are copied.
func NewPeriodicSpline(pts []Point) (*PeriodicSpline, error) {
	if len(pts) < 2 {
		return nil, invalidf("need at least 2 waypoints, got %d", len(pts))
	}
	closed := make([]Point, 0, len(pts)+1)
	closed = append(closed, pts...)
	closed = append(closed, pts[0])
	chord, err := NewPolyline(closed)
	if err != nil {
		return nil, err
	}
	pw, err := fitSpline(chord.pts, chord.arclen, periodicBoundary)
	if err != nil {
		return nil, err
	}
	return &PeriodicSpline{pw: pw}, nil
}

func (c *PeriodicSpline) Kind() Kind { return PeriodicSplineKind }

// Waypoints returns a copy of the waypoints the spline was built from,
// without the closing duplicate.
func (c *PeriodicSpline) Waypoints() []Point {
	return slices.Clone(c.pw.pts[:len(c.pw.pts)-1])
}

// Breakpoints returns a copy of the curve parameter at each waypoint,
// including the closing one. It has one more entry than [PeriodicSpline.Waypoints].
func (c *PeriodicSpline) Breakpoints() []float64 { return slices.Clone(c.pw.bk) }

func (c *PeriodicSpline) BoundingBox() Rect { return boundingBox(c.pw.pts) }

func (c *PeriodicSpline) SMin() float64      { return c.pw.bk[0] }
func (c *PeriodicSpline) SMax() float64      { return c.pw.bk[len(c.pw.bk)-1] }
func (c *PeriodicSpline) TotalDist() float64 { return c.SMax() - c.SMin() }
func (c *PeriodicSpline) Period() float64    { return c.TotalDist() }

// IsInterior always returns true, as every parameter maps into the domain.
func (c *PeriodicSpline) IsInterior(s float64) bool { return true }

// Clip clamps s to [SMin, SMax]. Don't confuse it with [PeriodicSpline.Wrap].
func (c *PeriodicSpline) Clip(s float64) float64 {
	return min(max(s, c.SMin()), c.SMax())
}

// Wrap maps s into [SMin, SMax) by adding or subtracting a multiple of the
// period. It doesn't change which point s refers to.
func (c *PeriodicSpline) Wrap(s float64) float64 {
	lo, hi, period := c.SMin(), c.SMax(), c.Period()
	w := s - period*math.Floor((s-lo)/period)
	if w >= hi {
		w -= period
	}
	if w < lo {
		w = lo
	}
	return w
}

func (c *PeriodicSpline) Pos(s float64) Point        { return c.pw.pos(c.Wrap(s)) }
func (c *PeriodicSpline) Tangent(s float64) Vec2     { return c.pw.deriv(c.Wrap(s)) }
func (c *PeriodicSpline) UnitTangent(s float64) Vec2 { return c.pw.deriv(c.Wrap(s)).Normalize() }
func (c *PeriodicSpline) SecondDeriv(s float64) Vec2 { return c.pw.deriv2(c.Wrap(s)) }
func (c *PeriodicSpline) PosUnitTangent(s float64) (Point, Vec2) {
	return c.pw.posUnitTangent(c.Wrap(s))
}

// Curvature returns the signed curvature at s.
func (c *PeriodicSpline) Curvature(s float64) float64 {
	_, k := c.pw.tangentCurvature(c.Wrap(s))
	return k
}

// TangentCurvature returns the (non-normalized) tangent and the signed
// curvature at s.
func (c *PeriodicSpline) TangentCurvature(s float64) (Vec2, float64) {
	return c.pw.tangentCurvature(c.Wrap(s))
}

// CurvatureRate returns the derivative of the signed curvature with respect
// to true arc length, dκ/dσ.
func (c *PeriodicSpline) CurvatureRate(s float64) float64 {
	return c.pw.curvatureRate(c.Wrap(s))
}

func (c *PeriodicSpline) derivs(s float64) (Point, Vec2, Vec2) {
	return c.pw.derivs(c.Wrap(s))
}

// Project is [Project] applied to c. The returned curve parameter is not
// wrapped; it continues from guess, so apply [PeriodicSpline.Wrap] when a
// canonical value is needed.
func (c *PeriodicSpline) Project(q Point, guess float64, opts *ProjectOptions) Frenet {
	return Project(c, q, guess, opts)
}

// ProjectNewton is [ProjectNewton] applied to c.
func (c *PeriodicSpline) ProjectNewton(q Point, guess float64, opts *ProjectOptions) Frenet {
	return ProjectNewton(c, q, guess, opts)
}
