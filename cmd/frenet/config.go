package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/planar"
	"honnef.co/go/planar/internal/log"
)

// Projection methods.
const (
	MethodLinearize = "linearize"
	MethodNewton    = "newton"
)

type Config struct {
	// Kind of curve to fit through the waypoints. Ignored for snapshots,
	// which carry their own kind.
	Kind string `toml:"kind" yaml:"kind"`
	// Waypoints is the path of a raw waypoint file or a snapshot.
	Waypoints string `toml:"waypoints" yaml:"waypoints"`
	// KeepBreakpoints uses the breakpoints stored in a raw waypoint file
	// instead of the chord length.
	KeepBreakpoints bool `toml:"keep_breakpoints" yaml:"keep_breakpoints"`

	Method    string  `toml:"method" yaml:"method"`
	MaxIter   int     `toml:"max_iter" yaml:"max_iter"`
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
	// Clip clamps the projected parameter to the curve's domain.
	Clip    bool `toml:"clip" yaml:"clip"`
	Workers int  `toml:"workers" yaml:"workers"`

	LogLevel string `toml:"log_level" yaml:"log_level"`
	LogDir   string `toml:"log_dir" yaml:"log_dir"`
}

func DefaultConfig() Config {
	return Config{
		Kind:      planar.PolylineKind.String(),
		Method:    MethodLinearize,
		MaxIter:   planar.DefaultMaxIter,
		Tolerance: planar.DefaultTolerance,
		Workers:   runtime.GOMAXPROCS(0),
		LogLevel:  "info",
	}
}

// LoadConfig reads a TOML or YAML file, chosen by its extension, on top of
// the default configuration. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	default:
		return cfg, fmt.Errorf("%s: unsupported config format %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	kind, err := planar.ParseKind(c.Kind)
	if err != nil {
		errs = append(errs, err)
	}
	if kind == planar.CubicSegmentKind {
		errs = append(errs, errors.New("cubic segments can only be loaded from snapshots"))
	}
	if c.Waypoints == "" {
		errs = append(errs, errors.New("no waypoint file given"))
	}
	switch c.Method {
	case MethodLinearize, MethodNewton:
	default:
		errs = append(errs, fmt.Errorf("unknown projection method %q", c.Method))
	}
	if c.MaxIter < 1 {
		errs = append(errs, fmt.Errorf("max_iter must be positive, got %d", c.MaxIter))
	}
	if !(c.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("tolerance must be positive, got %g", c.Tolerance))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
