package main

import (
	"fmt"
	"os"
	"strings"

	"honnef.co/go/planar"
	"honnef.co/go/planar/waypoints"
)

// loadCurve loads the curve described by cfg. Snapshots are rebuilt as is.
// Raw waypoint files are read as a polyline and refitted for the configured
// kind.
func loadCurve(cfg Config) (planar.Curve, error) {
	if strings.HasSuffix(cfg.Waypoints, waypoints.SnapshotExt) {
		f, err := os.Open(cfg.Waypoints)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		snap, err := waypoints.DecodeSnapshot(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Waypoints, err)
		}
		return snap.Curve()
	}

	p, err := waypoints.LoadFile(cfg.Waypoints, cfg.KeepBreakpoints)
	if err != nil {
		return nil, err
	}
	kind, err := planar.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case planar.PolylineKind:
		return p, nil
	case planar.CubicSplineKind:
		return planar.NewCubicSpline(p.Waypoints())
	case planar.PeriodicSplineKind:
		pts := p.Waypoints()
		// Files of closed paths usually repeat the first waypoint.
		if len(pts) > 2 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		return planar.NewPeriodicSpline(pts)
	default:
		return nil, fmt.Errorf("can't build a %s from a waypoint file", kind)
	}
}
