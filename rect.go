package planar

// Rect is an axis-aligned rectangle. It is used to report the extents of a
// curve's waypoints.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// boundingBox returns the smallest rectangle containing all points. pts must
// not be empty.
func boundingBox(pts []Point) Rect {
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// UnionPoint computes the smallest rectangle containing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return NewRectFromPoints(
		Pt(min(r.X0, pt.X), min(r.Y0, pt.Y)),
		Pt(max(r.X1, pt.X), max(r.Y1, pt.Y)),
	)
}

// Inflate returns a rectangle expanded by width on the left and right and by
// height on the top and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	r = r.Abs()
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Contains reports whether pt lies inside the rectangle, including its
// boundary.
func (r Rect) Contains(pt Point) bool {
	r = r.Abs()
	return pt.X >= r.X0 && pt.X <= r.X1 && pt.Y >= r.Y0 && pt.Y <= r.Y1
}

