package waypoints

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"honnef.co/go/planar"
)

// SnapshotExt is the conventional file extension of snapshots.
const SnapshotExt = ".msgpack.zst"

// Snapshot describes a curve in enough detail to rebuild it.
type Snapshot struct {
	Kind      string         `msgpack:"kind"`
	Waypoints []planar.Point `msgpack:"waypoints,omitempty"`

	// Breakpoints are only stored for polylines, as the splines derive
	// theirs from the waypoints.
	Breakpoints []float64 `msgpack:"breakpoints,omitempty"`

	// The time domain and coefficients of a cubic segment.
	T0     float64        `msgpack:"t0,omitempty"`
	T1     float64        `msgpack:"t1,omitempty"`
	Coeffs []planar.Vec2 `msgpack:"coeffs,omitempty"`
}

// SnapshotOf returns the snapshot of c, which must be one of the curves of
// package planar.
func SnapshotOf(c planar.Curve) (Snapshot, error) {
	s := Snapshot{Kind: c.Kind().String()}
	switch c := c.(type) {
	case *planar.Polyline:
		s.Waypoints = c.Waypoints()
		s.Breakpoints = c.Breakpoints()
	case *planar.CubicSpline:
		s.Waypoints = c.Waypoints()
	case *planar.PeriodicSpline:
		s.Waypoints = c.Waypoints()
	case planar.CubicSegment:
		k := c.Coeffs()
		s.T0, s.T1 = c.T0(), c.T1()
		s.Coeffs = k[:]
	default:
		return Snapshot{}, fmt.Errorf("can't snapshot curve of type %T", c)
	}
	return s, nil
}

// Curve rebuilds the curve described by s.
func (s Snapshot) Curve() (planar.Curve, error) {
	kind, err := planar.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case planar.PolylineKind:
		if s.Breakpoints == nil {
			return planar.NewPolyline(s.Waypoints)
		}
		return planar.NewPolylineWithBreakpoints(s.Waypoints, s.Breakpoints)
	case planar.CubicSplineKind:
		return planar.NewCubicSpline(s.Waypoints)
	case planar.PeriodicSplineKind:
		return planar.NewPeriodicSpline(s.Waypoints)
	case planar.CubicSegmentKind:
		if len(s.Coeffs) != 4 {
			return nil, fmt.Errorf("%w: cubic segment has %d coefficients, want 4", planar.ErrInvalidCurve, len(s.Coeffs))
		}
		return planar.NewCubicSegment(s.T0, s.T1, [4]planar.Vec2(s.Coeffs))
	default:
		panic("unreachable")
	}
}

// EncodeSnapshot writes s to w, msgpack encoded and zstd compressed.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	if err := msgpack.NewEncoder(zw).Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}

	return nil
}

// DecodeSnapshot reads a snapshot written by [EncodeSnapshot].
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var s Snapshot
	if err := msgpack.NewDecoder(zr).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}
