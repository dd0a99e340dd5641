package casefile

import (
	"errors"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/units"
)

// ErrMissingField indicates a required field or table is absent from the
// case file. The wrapped message names the field, e.g. "[units].length".
var ErrMissingField = errors.New("casefile: missing required field")

// ErrUnknownKind indicates a [pattern].kind outside circle/rectangle/points.
var ErrUnknownKind = errors.New("casefile: unknown pattern kind")

// ErrBadPoint indicates an explicit point that is not an [x, y] pair of
// finite numbers.
var ErrBadPoint = errors.New("casefile: malformed point")

// ErrBadVector indicates a force or moment that is not an [x, y, z] triple.
var ErrBadVector = errors.New("casefile: malformed load vector")

// ErrBadNumber indicates a non-finite numeric value (TOML permits inf/nan
// literals; analysis input may not carry them).
var ErrBadNumber = errors.New("casefile: non-finite number")

// ErrAreaConflict indicates an [areas] table carrying both uniform and
// per_fastener; exactly one may be set.
var ErrAreaConflict = errors.New("casefile: uniform and per_fastener both set")

// ErrNoCases indicates a file without a single [[cases]] entry.
var ErrNoCases = errors.New("casefile: no load cases")

// Supported [pattern].kind values.
const (
	KindCircle    = "circle"
	KindRectangle = "rectangle"
	KindPoints    = "points"
)

// Document is a decoded, validated case file. Obtain one via Load or
// Parse; the accessor methods are then infallible.
type Document struct {
	// Title labels tables, plots, and reports. Optional.
	Title string `toml:"title"`

	Units   UnitsSection   `toml:"units"`
	Pattern PatternSection `toml:"pattern"`
	Areas   AreasSection   `toml:"areas"`
	// Pivot, when present, overrides the computed centroid.
	Pivot *PivotSection `toml:"pivot"`
	Cases []Case        `toml:"cases"`

	// Resolved during validation.
	sys  units.System
	pts  []geom.Point
	opts []group.Option
}

// UnitsSection declares the unit symbols the file's magnitudes use.
type UnitsSection struct {
	Length string `toml:"length"`
	Force  string `toml:"force"`
}

// PatternSection selects a layout generator or carries explicit points.
// Only the fields of the selected kind are consulted.
type PatternSection struct {
	Kind string `toml:"kind"`

	// kind = "circle"
	Radius     float64 `toml:"radius"`
	Count      int     `toml:"count"`
	StartAngle float64 `toml:"start_angle"`

	// kind = "rectangle"
	XSpan float64 `toml:"x_span"`
	YSpan float64 `toml:"y_span"`
	NX    int     `toml:"nx"`
	NY    int     `toml:"ny"`

	// kind = "points"
	Points [][]float64 `toml:"points"`
}

// AreasSection assigns load-sharing areas: one scalar for all fasteners or
// an explicit per-fastener list. Both absent means uniform area 1.
type AreasSection struct {
	Uniform     float64   `toml:"uniform"`
	PerFastener []float64 `toml:"per_fastener"`
}

// PivotSection is an explicit pivot override.
type PivotSection struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Case is one named loading applied at the pivot. Omitted vectors are zero.
type Case struct {
	Name   string    `toml:"name"`
	Force  []float64 `toml:"force"`
	Moment []float64 `toml:"moment"`
}

// Resultant converts the case's vectors to the engine's type. Vectors are
// validated to length 3 at load time; missing ones stay zero.
func (c Case) Resultant() group.Resultant {
	return group.Resultant{Force: vec3(c.Force), Moment: vec3(c.Moment)}
}

// vec3 reads up to three components, leaving the rest zero.
func vec3(v []float64) geom.Vec3 {
	var out geom.Vec3
	if len(v) > 0 {
		out.X = v[0]
	}
	if len(v) > 1 {
		out.Y = v[1]
	}
	if len(v) > 2 {
		out.Z = v[2]
	}
	return out
}
