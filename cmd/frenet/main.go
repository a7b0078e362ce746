// Command frenet projects points onto a planar curve.
//
// It reads the curve's waypoints from a raw waypoint file or a snapshot, then
// reads one query per line from standard input, as "x y [guess]", and writes
// the curve parameter, lateral offset, heading and convergence state of each
// projection to standard output.
//
// Usage:
//
//	frenet [flags] < queries.txt
//
// Settings can be loaded from a TOML or YAML file with -config; flags
// override the file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"honnef.co/go/planar/internal/log"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	lg, err := log.New(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, os.Stdin, os.Stdout, lg); err != nil {
		lg.Error("frenet failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("frenet", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML or YAML configuration `file`")
		kind       = fs.String("kind", "", "curve kind: polyline, spline or loop")
		wpts       = fs.String("waypoints", "", "raw waypoint `file` or snapshot (.msgpack.zst)")
		keep       = fs.Bool("keep-breakpoints", false, "use the breakpoints stored in the waypoint file")
		method     = fs.String("method", "", "projection method: linearize or newton")
		maxIter    = fs.Int("max-iter", 0, "maximum number of projection iterations")
		tol        = fs.Float64("tol", 0, "convergence tolerance on the parameter increment")
		clip       = fs.Bool("clip", false, "clamp results to the curve's domain")
		workers    = fs.Int("workers", 0, "number of concurrent projections")
		logLevel   = fs.String("log-level", "", "log level: debug, info, warn or error")
		logDir     = fs.String("log-dir", "", "write logs to this `directory` instead of stderr")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "kind":
			cfg.Kind = *kind
		case "waypoints":
			cfg.Waypoints = *wpts
		case "keep-breakpoints":
			cfg.KeepBreakpoints = *keep
		case "method":
			cfg.Method = *method
		case "max-iter":
			cfg.MaxIter = *maxIter
		case "tol":
			cfg.Tolerance = *tol
		case "clip":
			cfg.Clip = *clip
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-dir":
			cfg.LogDir = *logDir
		}
	})
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, lg *log.Logger) error {
	c, err := loadCurve(cfg)
	if err != nil {
		return err
	}
	lg.Info("loaded curve",
		"kind", c.Kind().String(),
		"smin", c.SMin(),
		"smax", c.SMax())

	p, err := newProjector(c, cfg, lg)
	if err != nil {
		return err
	}
	qs, err := readQueries(in, c)
	if err != nil {
		return err
	}
	rs, err := projectAll(ctx, p, qs, cfg.Workers, lg)
	if err != nil {
		return err
	}
	lg.Infof("projected %d points", len(rs))
	return writeResults(out, rs)
}
