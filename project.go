package planar

import (
	"context"
	"log/slog"
	"math"
)

const (
	// DefaultMaxIter is the iteration limit used when ProjectOptions.MaxIter
	// is zero.
	DefaultMaxIter = 5
	// DefaultTolerance is the convergence tolerance, in units of the curve
	// parameter, used when ProjectOptions.Tolerance is zero.
	DefaultTolerance = 0.001
)

// ProjectOptions configures [Project] and [ProjectNewton]. A nil
// *ProjectOptions selects the defaults.
type ProjectOptions struct {
	// MaxIter bounds the number of iterations. Zero selects DefaultMaxIter.
	MaxIter int
	// Tolerance is the step size below which the iteration is considered
	// converged. Zero selects DefaultTolerance.
	Tolerance float64
	// Logger, if not nil, receives a debug record per iteration.
	Logger *slog.Logger
}

func (opts *ProjectOptions) resolve() (maxIter int, tol float64, logger *slog.Logger) {
	maxIter, tol = DefaultMaxIter, DefaultTolerance
	if opts == nil {
		return maxIter, tol, nil
	}
	if opts.MaxIter > 0 {
		maxIter = opts.MaxIter
	}
	if opts.Tolerance > 0 {
		tol = opts.Tolerance
	}
	return maxIter, tol, opts.Logger
}

// Frenet is the result of projecting a point onto a curve.
type Frenet struct {
	// S is the curve parameter of the projected point.
	S float64
	// Offset is the signed lateral distance along the left-pointing unit
	// normal. It is positive when the point lies to the left of the curve's
	// direction of travel.
	Offset float64
	// Iterations is the number of iterations that were carried out.
	Iterations int
	// Converged reports whether the last step was smaller than the
	// tolerance.
	Converged bool
}

// Project computes the Frenet coordinates of q relative to c by successive
// curve linearization, starting at the curve parameter guess.
//
// Each iteration linearizes the curve at the current iterate s and advances s
// by the component of q − c(s) along the unit tangent. This is exact for
// unit-speed curves such as a [Polyline] and approximate for splines, whose
// chord-length parameterization is only close to unit speed.
//
// If the iteration limit is reached first, the last iterate is returned with
// Converged set to false. Callers are responsible for validating the result:
//
//   - Extrapolation is always allowed. A result outside of the curve's domain
//     is finite but may be meaningless; check it with [Domain.IsInterior].
//   - Near high-curvature regions with a large offset there can be several
//     local solutions. The iteration converges to one close to guess, which
//     must therefore already be reasonably close.
func Project(c PosUnitTangenter, q Point, guess float64, opts *ProjectOptions) Frenet {
	maxIter, tol, logger := opts.resolve()
	s := guess
	var (
		delta     Vec2
		tangent   Vec2
		converged bool
		i         int
	)
	for i < maxIter && !converged {
		var p Point
		p, tangent = c.PosUnitTangent(s)
		delta = q.Sub(p)
		inc := delta.Dot(tangent)
		s += inc
		converged = math.Abs(inc) < tol
		i++
		if logger != nil {
			logger.LogAttrs(context.Background(), slog.LevelDebug, "projection step",
				slog.Int("iteration", i),
				slog.Float64("s", s),
				slog.Float64("increment", inc))
		}
	}
	return Frenet{
		S:          s,
		Offset:     delta.Dot(tangent.Rot90()),
		Iterations: i,
		Converged:  converged,
	}
}

// ProjectNewton computes the Frenet coordinates of q relative to c with
// Newton's method applied to f(s) = (c(s) − q)·c′(s), the derivative of half
// the squared distance.
//
// Locally it converges faster than [Project], but it requires second
// derivatives and is less robust: where f′(s) vanishes (a flat plateau of the
// distance function) the iteration stops without converging. Results are
// reported with the same policy as Project.
func ProjectNewton(c SmoothCurve, q Point, guess float64, opts *ProjectOptions) Frenet {
	maxIter, tol, logger := opts.resolve()
	s := guess
	var (
		converged bool
		i         int
	)
	eval := derivsOf(c)
	for i < maxIter && !converged {
		p, dp, ddp := eval(s)
		d := q.Sub(p)
		f := -d.Dot(dp)
		df := dp.Hypot2() - d.Dot(ddp)
		i++
		if df == 0 || math.IsNaN(df) {
			if logger != nil {
				logger.Debug("projection stalled on flat plateau", slog.Int("iteration", i), slog.Float64("s", s))
			}
			break
		}
		inc := -f / df
		s += inc
		converged = math.Abs(inc) < tol
		if logger != nil {
			logger.LogAttrs(context.Background(), slog.LevelDebug, "newton step",
				slog.Int("iteration", i),
				slog.Float64("s", s),
				slog.Float64("increment", inc))
		}
	}
	p, t := c.PosUnitTangent(s)
	return Frenet{
		S:          s,
		Offset:     q.Sub(p).Dot(t.Rot90()),
		Iterations: i,
		Converged:  converged,
	}
}

// derivEvaluator is implemented by curves that compute the position and the
// first two derivatives with a single piece lookup.
type derivEvaluator interface {
	derivs(s float64) (Point, Vec2, Vec2)
}

func derivsOf(c SmoothCurve) func(s float64) (Point, Vec2, Vec2) {
	if de, ok := c.(derivEvaluator); ok {
		return de.derivs
	}
	return func(s float64) (Point, Vec2, Vec2) {
		return c.Pos(s), c.Tangent(s), c.SecondDeriv(s)
	}
}
