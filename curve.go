package planar

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidCurve is returned, wrapped, by all constructors when the
// waypoints or breakpoints do not describe a valid curve.
var ErrInvalidCurve = errors.New("invalid curve definition")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCurve, fmt.Sprintf(format, args...))
}

// Kind identifies the concrete representation of a curve.
type Kind int

const (
	PolylineKind Kind = iota + 1
	CubicSplineKind
	PeriodicSplineKind
	CubicSegmentKind
)

func (k Kind) String() string {
	switch k {
	case PolylineKind:
		return "polyline"
	case CubicSplineKind:
		return "spline"
	case PeriodicSplineKind:
		return "loop"
	case CubicSegmentKind:
		return "cubic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Degree returns the guaranteed smoothness class of curves of this kind. A
// degree 1 curve is piecewise continuous, a degree 2 curve additionally has a
// continuous tangent field, and a degree 3 curve is a polynomial of degree
// three or more. Only curves of degree 2 and up implement [SmoothCurve].
func (k Kind) Degree() int {
	switch k {
	case PolylineKind:
		return 1
	case CubicSplineKind, PeriodicSplineKind, CubicSegmentKind:
		return 3
	default:
		return 0
	}
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, error) {
	for _, k := range [...]Kind{PolylineKind, CubicSplineKind, PeriodicSplineKind, CubicSegmentKind} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown curve kind %q", s)
}

// Positioner describes curves that can be evaluated at a curve parameter.
//
// All curves in this package extrapolate when evaluated outside of their
// domain. Use [Domain.Clip] to prevent that.
type Positioner interface {
	Pos(s float64) Point
}

// Tangenter describes curves that can compute their first derivative. The
// tangent is not normalized.
type Tangenter interface {
	Tangent(s float64) Vec2
}

// UnitTangenter describes curves that can compute their unit tangent.
type UnitTangenter interface {
	UnitTangent(s float64) Vec2
}

// PosUnitTangenter describes curves that can compute position and unit
// tangent in one go. This is all that [Project] needs, and implementations
// are expected to share the work of locating the active segment.
type PosUnitTangenter interface {
	PosUnitTangent(s float64) (Point, Vec2)
}

// Domain describes the parameter domain of a curve.
type Domain interface {
	// SMin returns the first breakpoint.
	SMin() float64
	// SMax returns the last breakpoint.
	SMax() float64
	// TotalDist returns SMax − SMin. For periodic curves this is the
	// period. It is measured in the curve parameter, which need not be the
	// true arc length.
	TotalDist() float64
	// IsInterior reports whether s lies strictly inside the domain. It is
	// always true for periodic curves.
	IsInterior(s float64) bool
	// Clip clamps s to [SMin, SMax].
	Clip(s float64) float64
}

// Curve is implemented by all curves of degree 1 or higher.
type Curve interface {
	Domain
	Positioner
	Tangenter
	UnitTangenter
	PosUnitTangenter
	Kind() Kind
}

// SmoothCurve is implemented by curves with a continuous tangent field, which
// can thus report their second derivative and signed curvature. Curvature is
// positive for left (counter-clockwise) turns.
type SmoothCurve interface {
	Curve
	SecondDeriv(s float64) Vec2
	TangentCurvature(s float64) (Vec2, float64)
	Curvature(s float64) float64
}

// Extender is implemented by curves that can be extended at their tail.
type Extender interface {
	Add(pts ...Point) error
}

// Wrapper is implemented by periodic curves.
type Wrapper interface {
	// Wrap maps s into [SMin, SMax).
	Wrap(s float64) float64
	// Period returns the length of the periodic domain.
	Period() float64
}

var (
	_ Curve       = (*Polyline)(nil)
	_ Extender    = (*Polyline)(nil)
	_ SmoothCurve = (*CubicSpline)(nil)
	_ SmoothCurve = (*PeriodicSpline)(nil)
	_ Wrapper     = (*PeriodicSpline)(nil)
	_ SmoothCurve = CubicSegment{}
)

// AsSmooth returns c as a [SmoothCurve] if it supports second derivatives
// and curvature. Degree 1 curves don't.
func AsSmooth(c Curve) (SmoothCurve, bool) {
	sc, ok := c.(SmoothCurve)
	return sc, ok
}

// IsPeriodic reports whether c has a periodic domain.
func IsPeriodic(c Curve) bool {
	_, ok := c.(Wrapper)
	return ok
}

// Linspace returns n evenly spaced values covering [lo, hi], both ends
// included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Positions evaluates c at every parameter in ss.
func Positions(c Positioner, ss []float64) []Point {
	out := make([]Point, len(ss))
	for i, s := range ss {
		out[i] = c.Pos(s)
	}
	return out
}

// UnitTangents computes the unit tangent of c at every parameter in ss.
func UnitTangents(c UnitTangenter, ss []float64) []Vec2 {
	out := make([]Vec2, len(ss))
	for i, s := range ss {
		out[i] = c.UnitTangent(s)
	}
	return out
}

// Curvatures computes the signed curvature of c at every parameter in ss.
func Curvatures(c SmoothCurve, ss []float64) []float64 {
	out := make([]float64, len(ss))
	for i, s := range ss {
		out[i] = c.Curvature(s)
	}
	return out
}

// signedCurvature computes (ẋÿ − ẏẍ) / ‖ṗ‖³.
func signedCurvature(d, dd Vec2) float64 {
	n := d.Hypot()
	return d.Cross(dd) / (n * n * n)
}

// curvatureRate computes dκ/dσ with respect to true arc length σ from the
// first three derivatives with respect to the curve parameter.
func curvatureRate(d, dd, ddd Vec2) float64 {
	n2 := d.Hypot2()
	n := math.Sqrt(n2)
	dk := (d.Cross(ddd)*n2 - 3*d.Dot(dd)*d.Cross(dd)) / (n2 * n2 * n)
	return dk / n
}

// WrapAngle wraps theta into (−π, π].
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	} else if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}

// chordLengths returns the cumulative chord length at each waypoint, starting
// at zero. It rejects non-finite waypoints and consecutive duplicates.
func chordLengths(pts []Point) ([]float64, error) {
	for i, pt := range pts {
		if !pt.isFinite() {
			return nil, invalidf("waypoint %d is not finite: %v", i, pt)
		}
	}
	out := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		out[i] = pts[i].Distance(pts[i-1])
		if out[i] == 0 {
			return nil, invalidf("waypoints %d and %d coincide at %v", i-1, i, pts[i])
		}
	}
	floats.CumSum(out, out)
	return out, nil
}

// checkBreakpoints verifies that bkpts is finite and strictly increasing.
func checkBreakpoints(bkpts []float64) error {
	for i, b := range bkpts {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return invalidf("breakpoint %d is not finite: %g", i, b)
		}
		if i > 0 && b <= bkpts[i-1] {
			return invalidf("breakpoints not strictly increasing at index %d: %g <= %g", i, b, bkpts[i-1])
		}
	}
	return nil
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
