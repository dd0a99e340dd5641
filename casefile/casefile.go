package casefile

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/pattern"
	"github.com/katalvlaran/boltgroup/units"
)

// Load reads and validates the case file at path.
func Load(path string) (*Document, error) {
	var doc Document
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("casefile: %s: %w", path, err)
	}
	if err := doc.resolve(meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &doc, nil
}

// Parse decodes and validates a case file from r.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("casefile: parse: %w", err)
	}
	if err := doc.resolve(meta); err != nil {
		return nil, err
	}
	return &doc, nil
}

// System returns the unit system the file declares.
func (d *Document) System() units.System { return d.sys }

// Points returns the fastener layout: generated from the [pattern] section
// or taken from its explicit point list. The slice is an owned copy.
func (d *Document) Points() []geom.Point {
	return append([]geom.Point(nil), d.pts...)
}

// GroupOptions returns the engine options the file declares: unit system,
// area assignment, and pivot override.
func (d *Document) GroupOptions() []group.Option {
	return append([]group.Option(nil), d.opts...)
}

// Geometry runs the engine's geometry stage on the file's layout and
// options. Value-level problems (bad areas, for instance) surface here
// with the group package's sentinels.
func (d *Document) Geometry() (group.Geometry, error) {
	return group.ComputeGeometry(d.pts, d.opts...)
}

// resolve validates the decoded document against the TOML metadata and
// caches the derived system, points, and options. Field presence is
// checked via meta so misspelled keys fail instead of defaulting to zero.
func (d *Document) resolve(meta toml.MetaData) error {
	if err := d.resolveUnits(meta); err != nil {
		return err
	}
	if err := d.resolvePoints(meta); err != nil {
		return err
	}
	if err := d.resolveOptions(meta); err != nil {
		return err
	}
	return d.validateCases()
}

func (d *Document) resolveUnits(meta toml.MetaData) error {
	if !meta.IsDefined("units") {
		return fmt.Errorf("[units]: %w", ErrMissingField)
	}
	if !meta.IsDefined("units", "length") {
		return fmt.Errorf("[units].length: %w", ErrMissingField)
	}
	if !meta.IsDefined("units", "force") {
		return fmt.Errorf("[units].force: %w", ErrMissingField)
	}

	sys, err := units.Parse(d.Units.Length, d.Units.Force)
	if err != nil {
		return fmt.Errorf("[units]: %w", err)
	}
	d.sys = sys
	return nil
}

func (d *Document) resolvePoints(meta toml.MetaData) error {
	if !meta.IsDefined("pattern") {
		return fmt.Errorf("[pattern]: %w", ErrMissingField)
	}
	if !meta.IsDefined("pattern", "kind") {
		return fmt.Errorf("[pattern].kind: %w", ErrMissingField)
	}

	switch d.Pattern.Kind {
	case KindCircle:
		for _, key := range []string{"radius", "count"} {
			if !meta.IsDefined("pattern", key) {
				return fmt.Errorf("[pattern].%s: %w", key, ErrMissingField)
			}
		}
		var opts []pattern.Option
		if meta.IsDefined("pattern", "start_angle") {
			if nonFinite(d.Pattern.StartAngle) {
				return fmt.Errorf("[pattern].start_angle: %w", ErrBadNumber)
			}
			opts = append(opts, pattern.WithStartAngle(d.Pattern.StartAngle))
		}
		pts, err := pattern.Circle(d.Pattern.Radius, d.Pattern.Count, opts...)
		if err != nil {
			return fmt.Errorf("[pattern]: %w", err)
		}
		d.pts = pts

	case KindRectangle:
		for _, key := range []string{"x_span", "y_span", "nx", "ny"} {
			if !meta.IsDefined("pattern", key) {
				return fmt.Errorf("[pattern].%s: %w", key, ErrMissingField)
			}
		}
		pts, err := pattern.Rectangle(d.Pattern.XSpan, d.Pattern.YSpan, d.Pattern.NX, d.Pattern.NY)
		if err != nil {
			return fmt.Errorf("[pattern]: %w", err)
		}
		d.pts = pts

	case KindPoints:
		if !meta.IsDefined("pattern", "points") || len(d.Pattern.Points) == 0 {
			return fmt.Errorf("[pattern].points: %w", ErrMissingField)
		}
		pts := make([]geom.Point, len(d.Pattern.Points))
		for i, pair := range d.Pattern.Points {
			if len(pair) != 2 {
				return fmt.Errorf("[pattern].points[%d]: %d components (want 2): %w",
					i, len(pair), ErrBadPoint)
			}
			if nonFinite(pair[0]) || nonFinite(pair[1]) {
				return fmt.Errorf("[pattern].points[%d]: %w", i, ErrBadNumber)
			}
			pts[i] = geom.Pt(pair[0], pair[1])
		}
		d.pts = pts

	default:
		return fmt.Errorf("[pattern].kind=%q: %w", d.Pattern.Kind, ErrUnknownKind)
	}
	return nil
}

func (d *Document) resolveOptions(meta toml.MetaData) error {
	opts := []group.Option{group.WithUnits(d.sys)}

	if meta.IsDefined("areas") {
		hasUniform := meta.IsDefined("areas", "uniform")
		hasPer := meta.IsDefined("areas", "per_fastener")
		switch {
		case hasUniform && hasPer:
			return fmt.Errorf("[areas]: %w", ErrAreaConflict)
		case hasUniform:
			if nonFinite(d.Areas.Uniform) {
				return fmt.Errorf("[areas].uniform: %w", ErrBadNumber)
			}
			opts = append(opts, group.WithUniformArea(d.Areas.Uniform))
		case hasPer:
			for i, a := range d.Areas.PerFastener {
				if nonFinite(a) {
					return fmt.Errorf("[areas].per_fastener[%d]: %w", i, ErrBadNumber)
				}
			}
			opts = append(opts, group.WithAreas(d.Areas.PerFastener))
		default:
			return fmt.Errorf("[areas].uniform or per_fastener: %w", ErrMissingField)
		}
	}

	if d.Pivot != nil {
		if !meta.IsDefined("pivot", "x") || !meta.IsDefined("pivot", "y") {
			return fmt.Errorf("[pivot].x and .y: %w", ErrMissingField)
		}
		if nonFinite(d.Pivot.X) || nonFinite(d.Pivot.Y) {
			return fmt.Errorf("[pivot]: %w", ErrBadNumber)
		}
		opts = append(opts, group.WithPivot(geom.Pt(d.Pivot.X, d.Pivot.Y)))
	}

	d.opts = opts
	return nil
}

func (d *Document) validateCases() error {
	if len(d.Cases) == 0 {
		return fmt.Errorf("[[cases]]: %w", ErrNoCases)
	}
	for i, c := range d.Cases {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("[[cases]][%d].name: %w", i, ErrMissingField)
		}
		if err := checkVector(i, "force", c.Force); err != nil {
			return err
		}
		if err := checkVector(i, "moment", c.Moment); err != nil {
			return err
		}
	}
	return nil
}

// checkVector accepts an absent vector (zero loading) or a finite triple.
func checkVector(i int, field string, v []float64) error {
	if v == nil {
		return nil
	}
	if len(v) != 3 {
		return fmt.Errorf("[[cases]][%d].%s: %d components (want 3): %w",
			i, field, len(v), ErrBadVector)
	}
	for _, x := range v {
		if nonFinite(x) {
			return fmt.Errorf("[[cases]][%d].%s: %w", i, field, ErrBadNumber)
		}
	}
	return nil
}

func nonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
