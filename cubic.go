package planar

import "math"

// CubicBez is a cubic Bézier curve. [CubicSegment.Bez] converts a segment to
// this form, which has an accurate arc length computation.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (q CubicBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf() || q.P3.IsInf()
}

func (q CubicBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN() || q.P3.IsNaN()
}

// BoundingBox returns the rectangle spanned by the control points, which
// contains the curve.
func (c CubicBez) BoundingBox() Rect {
	return boundingBox([]Point{c.P0, c.P1, c.P2, c.P3})
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}
