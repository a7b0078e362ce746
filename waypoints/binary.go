package waypoints

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"honnef.co/go/planar"
)

// RecordSize is the size in bytes of one record of the raw format.
const RecordSize = 24

// ErrCorrupt is returned when a file's size doesn't match the format.
var ErrCorrupt = errors.New("corrupt waypoint file")

// Record is one waypoint along with its breakpoint.
type Record struct {
	S float64
	X float64
	Y float64
}

func (r Record) Point() planar.Point { return planar.Pt(r.X, r.Y) }

// Records returns the waypoints and breakpoints of p.
func Records(p *planar.Polyline) []Record {
	pts := p.Waypoints()
	bk := p.Breakpoints()
	out := make([]Record, len(pts))
	for i, pt := range pts {
		out[i] = Record{S: bk[i], X: pt.X, Y: pt.Y}
	}
	return out
}

// Write writes recs in the raw format.
func Write(w io.Writer, recs []Record) error {
	buf := make([]byte, 0, len(recs)*RecordSize)
	for _, r := range recs {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(r.S))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(r.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(r.Y))
	}
	_, err := w.Write(buf)
	return err
}

// Read reads all records from r.
func Read(r io.Reader) ([]Record, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(b)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: size %d is not a multiple of %d", ErrCorrupt, len(b), RecordSize)
	}
	out := make([]Record, len(b)/RecordSize)
	for i := range out {
		rec := b[i*RecordSize:]
		out[i] = Record{
			S: math.Float64frombits(binary.LittleEndian.Uint64(rec[0:])),
			X: math.Float64frombits(binary.LittleEndian.Uint64(rec[8:])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(rec[16:])),
		}
	}
	return out, nil
}

// WritePolyline writes the waypoints and breakpoints of p in the raw format.
func WritePolyline(w io.Writer, p *planar.Polyline) error {
	return Write(w, Records(p))
}

// ReadPolyline reads a polyline in the raw format. If keepBreakpoints is
// false, the stored breakpoints are discarded and the chord length of the
// waypoints, starting at zero, is used instead. Otherwise the stored
// breakpoints are used as is and must be strictly increasing.
func ReadPolyline(r io.Reader, keepBreakpoints bool) (*planar.Polyline, error) {
	recs, err := Read(r)
	if err != nil {
		return nil, err
	}
	pts := make([]planar.Point, len(recs))
	for i, rec := range recs {
		pts[i] = rec.Point()
	}
	if !keepBreakpoints {
		return planar.NewPolyline(pts)
	}
	bk := make([]float64, len(recs))
	for i, rec := range recs {
		bk[i] = rec.S
	}
	return planar.NewPolylineWithBreakpoints(pts, bk)
}

// SaveFile writes p to the file at path, truncating it if it exists.
func SaveFile(path string, p *planar.Polyline) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePolyline(f, p)
}

// LoadFile reads a polyline from the file at path. See [ReadPolyline] for
// the meaning of keepBreakpoints.
func LoadFile(path string, keepBreakpoints bool) (*planar.Polyline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := ReadPolyline(f, keepBreakpoints)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return p, nil
}
