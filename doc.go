// Package planar provides 2D curves over an arc-length-like parameter and the
// projection of points onto them. It is the geometric backbone for path
// following and path planning: controllers and planners express the robot's
// position relative to a path as Frenet coordinates, that is, progress along
// the path and signed lateral offset.
//
// # Curves
//
// All curves are built from waypoints and are parametrized by the chord
// length of those waypoints, which is exact for polylines and close to unit
// speed for splines. The following curves are provided:
//
//   - [Polyline], linear interpolation. It is the only curve that can be
//     extended after construction.
//   - [CubicSpline], an open cubic spline with natural end conditions.
//   - [PeriodicSpline], a closed cubic spline whose domain wraps around.
//   - [CubicSegment], a single cubic polynomial fitted to boundary positions
//     and velocities, parametrized by time.
//
// Curves are evaluated for any real parameter. Outside of their domain they
// extrapolate from the first or last piece; use [Domain.Clip] to prevent
// that, and [Domain.IsInterior] to check a parameter.
//
// # Capabilities
//
// Not every curve supports every query. Rather than a single interface whose
// methods fail at runtime, capabilities are expressed by small interfaces:
// [Positioner], [Tangenter], [UnitTangenter] and [PosUnitTangenter] for
// evaluation, [Curve] for all curves, [SmoothCurve] for curves with
// curvature, [Extender] for curves that can grow, and [Wrapper] for periodic
// curves. Polylines don't have a well-defined second derivative and thus don't
// implement SmoothCurve; use [AsSmooth] to check.
//
// # Projection
//
// [Project] maps a query point to [Frenet] coordinates by successive curve
// linearization, starting from an initial guess. It works with any
// [PosUnitTangenter]. It only converges locally, so the initial guess should
// be close to the expected result, typically the result of the previous
// control cycle. [ProjectNewton] is an alternative for smooth curves.
//
// Non-convergence is not an error. The generic functions report it via
// [Frenet.Converged]; [Polyline.Project] additionally replaces the curve
// parameter with NaN.
//
// # Errors
//
// Constructors reject fewer than two waypoints, non-finite coordinates, and
// coincident consecutive waypoints with an error wrapping [ErrInvalidCurve].
//
// # Concurrency
//
// Curves are immutable after construction, except for [Polyline.Add], and may
// be read concurrently. Calls to Add must not overlap with any other use of
// the same polyline.
package planar
