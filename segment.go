package planar

import "math"

// DefaultArclenSamples is the number of samples used by
// [CubicSegment.Arclen] when called with n <= 0.
const DefaultArclenSamples = 1000

// CubicSegment is a single cubic polynomial per axis, typically used as a
// short trajectory between two boundary states. The polynomial is stored
// with respect to the normalized parameter u = (t − t0) / (t1 − t0):
//
//	p(u) = c₀ + c₁·u + c₂·u² + c₃·u³
//
// Because the coefficients refer to the normalized domain, the time domain
// can be changed with [CubicSegment.Rescale] without refitting. Only the
// chain rule factors applied to derivatives change.
//
// The curve parameter of a CubicSegment is time, not arc length. [Project]
// advances the parameter by a distance, so each step is off by a factor equal
// to the speed. It converges for speeds below 2 and oscillates or diverges
// above. Use [ProjectNewton] for fast segments, or project onto a copy
// rescaled with [CubicSegment.Rescale] so that its duration roughly matches
// its length.
type CubicSegment struct {
	t0     float64
	dur    float64
	invDur float64
	coeffs [4]Vec2
}

// NewCubicSegment returns a segment over [t0, t1] with the given power basis
// coefficients with respect to the normalized parameter. t0 must differ from
// t1; t1 < t0 is allowed and reverses the direction of time.
func NewCubicSegment(t0, t1 float64, coeffs [4]Vec2) (CubicSegment, error) {
	if err := checkTimeDomain(t0, t1); err != nil {
		return CubicSegment{}, err
	}
	for i, c := range coeffs {
		if c.IsNaN() || c.IsInf() {
			return CubicSegment{}, invalidf("coefficient %d is not finite: %v", i, c)
		}
	}
	dur := t1 - t0
	return CubicSegment{
		t0:     t0,
		dur:    dur,
		invDur: 1 / dur,
		coeffs: coeffs,
	}, nil
}

// FitCubicSegment returns the segment over [t0, t1] that starts at p0 with
// velocity v0 and ends at p1 with velocity v1. The velocities are derivatives
// with respect to t, not to the normalized parameter.
//
// The fit is closed-form Hermite interpolation.
func FitCubicSegment(t0, t1 float64, p0 Point, v0 Vec2, p1 Point, v1 Vec2) (CubicSegment, error) {
	if err := checkTimeDomain(t0, t1); err != nil {
		return CubicSegment{}, err
	}
	dur := t1 - t0
	// Velocities with respect to u.
	v0n := v0.Mul(dur)
	v1n := v1.Mul(dur)
	a := p1.Sub(p0).Sub(v0n)
	b := v1n.Sub(v0n)
	return NewCubicSegment(t0, t1, [4]Vec2{
		Vec2(p0),
		v0n,
		a.Mul(3).Sub(b),
		b.Sub(a.Mul(2)),
	})
}

func checkTimeDomain(t0, t1 float64) error {
	if math.IsNaN(t0) || math.IsInf(t0, 0) || math.IsNaN(t1) || math.IsInf(t1, 0) {
		return invalidf("time domain [%g, %g] is not finite", t0, t1)
	}
	if t0 == t1 {
		return invalidf("empty time domain [%g, %g]", t0, t1)
	}
	return nil
}

// Rescale returns the same geometric curve over the new time domain
// [t0, t1]. The coefficients are kept as is.
func (c CubicSegment) Rescale(t0, t1 float64) (CubicSegment, error) {
	return NewCubicSegment(t0, t1, c.coeffs)
}

// Coeffs returns the power basis coefficients with respect to the normalized
// parameter.
func (c CubicSegment) Coeffs() [4]Vec2 { return c.coeffs }

func (c CubicSegment) T0() float64       { return c.t0 }
func (c CubicSegment) T1() float64       { return c.t0 + c.dur }
func (c CubicSegment) Duration() float64 { return c.dur }
func (c CubicSegment) Kind() Kind        { return CubicSegmentKind }

func (c CubicSegment) SMin() float64      { return min(c.T0(), c.T1()) }
func (c CubicSegment) SMax() float64      { return max(c.T0(), c.T1()) }
func (c CubicSegment) TotalDist() float64 { return c.SMax() - c.SMin() }

func (c CubicSegment) IsInterior(t float64) bool {
	return t > c.SMin() && t < c.SMax()
}

func (c CubicSegment) Clip(t float64) float64 {
	return min(max(t, c.SMin()), c.SMax())
}

// Normalize maps t to the normalized parameter u, which is 0 at t0 and 1 at
// t1.
func (c CubicSegment) Normalize(t float64) float64 {
	return (t - c.t0) * c.invDur
}

// PosNormalized evaluates the segment at the normalized parameter u.
func (c CubicSegment) PosNormalized(u float64) Point {
	k := c.coeffs
	return Point(k[0].Add(k[1].Add(k[2].Add(k[3].Mul(u)).Mul(u)).Mul(u)))
}

// TangentNormalized returns dp/du.
func (c CubicSegment) TangentNormalized(u float64) Vec2 {
	k := c.coeffs
	return k[1].Add(k[2].Mul(2).Add(k[3].Mul(3 * u)).Mul(u))
}

// SecondDerivNormalized returns d²p/du².
func (c CubicSegment) SecondDerivNormalized(u float64) Vec2 {
	k := c.coeffs
	return k[2].Mul(2).Add(k[3].Mul(6 * u))
}

// ThirdDerivNormalized returns d³p/du³, which is constant.
func (c CubicSegment) ThirdDerivNormalized() Vec2 {
	return c.coeffs[3].Mul(6)
}

func (c CubicSegment) Pos(t float64) Point {
	return c.PosNormalized(c.Normalize(t))
}

func (c CubicSegment) Tangent(t float64) Vec2 {
	return c.TangentNormalized(c.Normalize(t)).Mul(c.invDur)
}

func (c CubicSegment) UnitTangent(t float64) Vec2 {
	return c.Tangent(t).Normalize()
}

func (c CubicSegment) PosUnitTangent(t float64) (Point, Vec2) {
	u := c.Normalize(t)
	return c.PosNormalized(u), c.TangentNormalized(u).Mul(c.invDur).Normalize()
}

func (c CubicSegment) SecondDeriv(t float64) Vec2 {
	return c.SecondDerivNormalized(c.Normalize(t)).Mul(c.invDur * c.invDur)
}

func (c CubicSegment) ThirdDeriv(t float64) Vec2 {
	return c.ThirdDerivNormalized().Mul(c.invDur * c.invDur * c.invDur)
}

func (c CubicSegment) derivs(t float64) (Point, Vec2, Vec2) {
	u := c.Normalize(t)
	return c.PosNormalized(u),
		c.TangentNormalized(u).Mul(c.invDur),
		c.SecondDerivNormalized(u).Mul(c.invDur * c.invDur)
}

// TangentCurvature returns the tangent with respect to t and the signed
// curvature at t. The curvature is a geometric property and doesn't depend on
// the length of the time domain, only on its direction.
func (c CubicSegment) TangentCurvature(t float64) (Vec2, float64) {
	d := c.Tangent(t)
	return d, signedCurvature(d, c.SecondDeriv(t))
}

func (c CubicSegment) Curvature(t float64) float64 {
	_, k := c.TangentCurvature(t)
	return k
}

// CurvatureRate returns the derivative of the signed curvature with respect
// to true arc length, dκ/dσ.
func (c CubicSegment) CurvatureRate(t float64) float64 {
	return curvatureRate(c.Tangent(t), c.SecondDeriv(t), c.ThirdDeriv(t))
}

// Arclen approximates the length of the segment between t0 and t1 with a
// left Riemann sum over n evenly spaced samples of the speed. It is an
// approximation whose error shrinks linearly with n; use [CubicSegment.Bez]
// and [CubicBez.Arclen] for an accurate result. n <= 0 selects
// DefaultArclenSamples.
func (c CubicSegment) Arclen(n int) float64 {
	if n <= 0 {
		n = DefaultArclenSamples
	}
	var sum float64
	for i := range n {
		sum += c.TangentNormalized(float64(i) / float64(n)).Hypot()
	}
	return sum / float64(n)
}

// Bez returns the segment between t0 and t1 as a cubic Bézier.
func (c CubicSegment) Bez() CubicBez {
	k := c.coeffs
	p1 := k[0].Add(k[1].Mul(1.0 / 3.0))
	p2 := p1.Add(k[1].Mul(1.0 / 3.0)).Add(k[2].Mul(1.0 / 3.0))
	return CubicBez{
		P0: Point(k[0]),
		P1: Point(p1),
		P2: Point(p2),
		P3: Point(k[0].Add(k[1]).Add(k[2]).Add(k[3])),
	}
}

// Project is [Project] applied to c, with t as the curve parameter.
func (c CubicSegment) Project(q Point, guess float64, opts *ProjectOptions) Frenet {
	return Project(c, q, guess, opts)
}
