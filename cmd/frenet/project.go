package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/planar"
	"honnef.co/go/planar/internal/log"
)

type query struct {
	line  int
	q     planar.Point
	guess float64
}

type result struct {
	planar.Frenet
	Heading float64
}

// readQueries parses one query per line, as "x y [guess]". Empty lines and
// lines starting with # are skipped. A missing guess defaults to the start of
// the curve's domain.
func readQueries(r io.Reader, c planar.Curve) ([]query, error) {
	var out []query
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 2 or 3 fields, got %d", n, len(fields))
		}
		var vals [3]float64
		vals[2] = c.SMin()
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			vals[i] = v
		}
		out = append(out, query{line: n, q: planar.Pt(vals[0], vals[1]), guess: vals[2]})
	}
	return out, sc.Err()
}

type projector struct {
	curve  planar.Curve
	smooth planar.SmoothCurve
	cfg    Config
	opts   planar.ProjectOptions
}

func newProjector(c planar.Curve, cfg Config, lg *log.Logger) (*projector, error) {
	p := &projector{
		curve: c,
		cfg:   cfg,
		opts: planar.ProjectOptions{
			MaxIter:   cfg.MaxIter,
			Tolerance: cfg.Tolerance,
			Logger:    lg.Slog(),
		},
	}
	if cfg.Method == MethodNewton {
		sc, ok := planar.AsSmooth(c)
		if !ok {
			return nil, fmt.Errorf("%s method needs a smooth curve, got a %s", MethodNewton, c.Kind())
		}
		p.smooth = sc
	}
	return p, nil
}

func (p *projector) project(q query) result {
	var f planar.Frenet
	switch {
	case p.smooth != nil:
		f = planar.ProjectNewton(p.smooth, q.q, q.guess, &p.opts)
	default:
		if pl, ok := p.curve.(*planar.Polyline); ok {
			f = pl.Project(q.q, q.guess, &p.opts)
		} else {
			f = planar.Project(p.curve, q.q, q.guess, &p.opts)
		}
	}
	if math.IsNaN(f.S) {
		return result{Frenet: f, Heading: math.NaN()}
	}
	if p.cfg.Clip && !p.curve.IsInterior(f.S) {
		f.S = p.curve.Clip(f.S)
		pos, tan := p.curve.PosUnitTangent(f.S)
		f.Offset = q.q.Sub(pos).Dot(tan.Rot90())
	}
	return result{
		Frenet:  f,
		Heading: planar.WrapAngle(p.curve.UnitTangent(f.S).Angle()),
	}
}

// projectAll projects all queries, using up to workers goroutines. Curves
// are only read here, so sharing them between goroutines is safe.
func projectAll(ctx context.Context, p *projector, qs []query, workers int, lg *log.Logger) ([]result, error) {
	out := make([]result, len(qs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range qs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = p.project(q)
			if !out[i].Converged {
				lg.Warnf("line %d: projection did not converge after %d iterations, s=%g",
					q.line, out[i].Iterations, out[i].S)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func writeResults(w io.Writer, rs []result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# s\toffset\theading\tconverged\titerations")
	for _, r := range rs {
		fmt.Fprintf(bw, "%.6f\t%.6f\t%.6f\t%t\t%d\n", r.S, r.Offset, r.Heading, r.Converged, r.Iterations)
	}
	return bw.Flush()
}
