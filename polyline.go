package planar

import (
	"math"
	"slices"
)

// Polyline linearly interpolates a sequence of waypoints. Its curve parameter
// is the exact arc length, i.e. the cumulative chord length at each waypoint,
// unless custom breakpoints were provided.
//
// Polyline is the only curve that can be extended after construction, see
// [Polyline.Add]. It is not safe for concurrent use while being extended.
type Polyline struct {
	pts    []Point
	arclen []float64
}

// NewPolyline returns a polyline through pts. At least two waypoints are
// required and consecutive waypoints must be distinct. The waypoints are
// copied.
func NewPolyline(pts []Point) (*Polyline, error) {
	if len(pts) < 2 {
		return nil, invalidf("need at least 2 waypoints, got %d", len(pts))
	}
	arclen, err := chordLengths(pts)
	if err != nil {
		return nil, err
	}
	return &Polyline{
		pts:    slices.Clone(pts),
		arclen: arclen,
	}, nil
}

// NewPolylineWithBreakpoints returns a polyline through pts using the given
// breakpoints as curve parameters instead of the chord length. bkpts must be
// strictly increasing and have one entry per waypoint. Both slices are
// copied.
func NewPolylineWithBreakpoints(pts []Point, bkpts []float64) (*Polyline, error) {
	if len(pts) < 2 {
		return nil, invalidf("need at least 2 waypoints, got %d", len(pts))
	}
	if len(bkpts) != len(pts) {
		return nil, invalidf("got %d breakpoints for %d waypoints", len(bkpts), len(pts))
	}
	if _, err := chordLengths(pts); err != nil {
		return nil, err
	}
	if err := checkBreakpoints(bkpts); err != nil {
		return nil, err
	}
	return &Polyline{
		pts:    slices.Clone(pts),
		arclen: slices.Clone(bkpts),
	}, nil
}

// Add appends waypoints to the tail of the polyline, extending the
// breakpoints by the chord length from the previous last waypoint. If any of
// the new segments has zero length, Add returns an error and the polyline is
// left unmodified.
func (p *Polyline) Add(pts ...Point) error {
	if len(pts) == 0 {
		return nil
	}
	ext, err := chordLengths(append([]Point{p.pts[len(p.pts)-1]}, pts...))
	if err != nil {
		return err
	}
	last := p.arclen[len(p.arclen)-1]
	for _, d := range ext[1:] {
		p.arclen = append(p.arclen, last+d)
	}
	p.pts = append(p.pts, pts...)
	return nil
}

func (p *Polyline) Kind() Kind { return PolylineKind }

// Waypoints returns a copy of the polyline's waypoints.
func (p *Polyline) Waypoints() []Point { return slices.Clone(p.pts) }

// Breakpoints returns a copy of the curve parameter at each waypoint.
func (p *Polyline) Breakpoints() []float64 { return slices.Clone(p.arclen) }

func (p *Polyline) NumWaypoints() int { return len(p.pts) }
func (p *Polyline) NumPieces() int    { return len(p.pts) - 1 }

// Segment returns the i-th line segment.
func (p *Polyline) Segment(i int) Line {
	return Line{p.pts[i], p.pts[i+1]}
}

func (p *Polyline) BoundingBox() Rect { return boundingBox(p.pts) }

func (p *Polyline) SMin() float64      { return p.arclen[0] }
func (p *Polyline) SMax() float64      { return p.arclen[len(p.arclen)-1] }
func (p *Polyline) TotalDist() float64 { return p.SMax() - p.SMin() }

func (p *Polyline) IsInterior(s float64) bool {
	return s > p.SMin() && s < p.SMax()
}

func (p *Polyline) Clip(s float64) float64 {
	return min(max(s, p.SMin()), p.SMax())
}

// local returns the active segment for s and the fractional position of s
// within it.
func (p *Polyline) local(s float64) (Line, float64) {
	idx := segmentIndex(p.arclen, s)
	s0, s1 := p.arclen[idx], p.arclen[idx+1]
	return p.Segment(idx), (s - s0) / (s1 - s0)
}

// Pos implements [Positioner]. Outside of the domain it extrapolates along
// the first or last segment.
func (p *Polyline) Pos(s float64) Point {
	l, t := p.local(s)
	return l.Eval(t)
}

// Tangent implements [Tangenter]. Because the polyline is parametrized by
// arc length, the tangent is the unit tangent.
func (p *Polyline) Tangent(s float64) Vec2 {
	return p.UnitTangent(s)
}

// UnitTangent returns the direction of the segment containing s. At a
// breakpoint, the segment starting there is used.
func (p *Polyline) UnitTangent(s float64) Vec2 {
	l, _ := p.local(s)
	return l.UnitTangent()
}

// PosUnitTangent implements [PosUnitTangenter] with a single segment lookup.
func (p *Polyline) PosUnitTangent(s float64) (Point, Vec2) {
	l, t := p.local(s)
	return l.Eval(t), l.UnitTangent()
}

// Nearest returns the curve parameter of the point on the polyline closest
// to pt, and the squared distance to it. It examines every segment and is
// thus suitable for finding an initial guess for [Polyline.Project].
func (p *Polyline) Nearest(pt Point) (s, distSq float64) {
	distSq = math.Inf(1)
	for i := range p.NumPieces() {
		d, t := p.Segment(i).Nearest(pt)
		if d < distSq {
			distSq = d
			s = p.arclen[i] + t*(p.arclen[i+1]-p.arclen[i])
		}
	}
	return s, distSq
}

// Project is like [Project], but reports a NaN curve parameter if the
// iteration didn't converge. The offset is computed from the last iterate
// either way.
func (p *Polyline) Project(q Point, guess float64, opts *ProjectOptions) Frenet {
	f := Project(p, q, guess, opts)
	if !f.Converged {
		f.S = math.NaN()
	}
	return f
}
