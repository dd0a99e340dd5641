package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/units"
)

// SchemaVersion tags every bundle written by Save. Open rejects any other
// version instead of guessing at field layouts; bump it whenever Bundle
// or BundleCase changes shape.
const SchemaVersion uint16 = 1

// Bundle is the on-disk form of a Result: engine types flattened to plain
// numbers and unit symbols, so the persisted layout stays stable across
// engine refactors. Decode one with Open, then rebuild engine values via
// Geometry, Case and LoadSet.
type Bundle struct {
	Schema uint16
	Title  string

	// Unit symbols in the form accepted by units.Parse.
	LengthUnit string
	ForceUnit  string

	// Fastener layout, index-aligned slices of NumFasteners entries.
	NumFasteners uint32
	PointX       []float64
	PointY       []float64
	Area         []float64
	TotalArea    float64
	PivotX       float64
	PivotY       float64
	Icx          float64
	Icy          float64
	Icp          float64

	// Resolved load cases, NumCases entries.
	NumCases uint32
	Cases    []BundleCase

	sys units.System // parsed from the symbols by Open
}

// BundleCase is one resolved load case. The per-fastener slices align with
// the geometry arrays of the enclosing Bundle.
type BundleCase struct {
	Name   string
	Force  [3]float64
	Moment [3]float64

	Axial    []float64
	ShearX   []float64
	ShearY   []float64
	ShearMag []float64
	MaxShear float64
}

// Save writes res to path as a msgpack bundle. The file appears atomically:
// the payload is encoded into a temp file in the target directory and
// renamed over path only once fully written. Parent directories are created
// as needed.
func Save(path, title string, res *Result) error {
	if err := save(path, title, res); err != nil {
		return fmt.Errorf("batch: save %s: %w", path, err)
	}
	return nil
}

func save(path, title string, res *Result) error {
	payload, err := resultToBundle(title, res)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	// Once the rename lands this is a no-op on a vanished file.
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Open reads a bundle written by Save and validates it: schema version,
// unit symbols, and that every per-fastener slice agrees with the recorded
// counts. It fails with ErrSchemaMismatch or ErrBadBundle respectively.
func Open(path string) (*Bundle, error) {
	b, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: open %s: %w", path, err)
	}
	return b, nil
}

func open(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var b Bundle
	if err := msgpack.NewDecoder(f).Decode(&b); err != nil {
		return nil, err
	}
	if b.Schema != SchemaVersion {
		return nil, fmt.Errorf("schema %d (want %d): %w", b.Schema, SchemaVersion, ErrSchemaMismatch)
	}
	sys, err := units.Parse(b.LengthUnit, b.ForceUnit)
	if err != nil {
		return nil, err
	}
	b.sys = sys
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Bundle) validate() error {
	n := int(b.NumFasteners)
	if n == 0 {
		return fmt.Errorf("no fasteners recorded: %w", ErrBadBundle)
	}
	if len(b.PointX) != n || len(b.PointY) != n || len(b.Area) != n {
		return fmt.Errorf("geometry arrays disagree with %d fasteners: %w", n, ErrBadBundle)
	}
	if int(b.NumCases) != len(b.Cases) {
		return fmt.Errorf("%d cases recorded, %d present: %w", b.NumCases, len(b.Cases), ErrBadBundle)
	}
	for i := range b.Cases {
		c := &b.Cases[i]
		if len(c.Axial) != n || len(c.ShearX) != n || len(c.ShearY) != n || len(c.ShearMag) != n {
			return fmt.Errorf("case %q arrays disagree with %d fasteners: %w", c.Name, n, ErrBadBundle)
		}
	}
	return nil
}

// System reports the unit system recorded in the bundle.
func (b *Bundle) System() units.System { return b.sys }

// Len reports the number of load cases in the bundle.
func (b *Bundle) Len() int { return len(b.Cases) }

// Geometry rebuilds the fastener layout persisted by Save. Offsets are
// recomputed from the stored points and pivot.
func (b *Bundle) Geometry() group.Geometry {
	n := len(b.PointX)
	pivot := geom.Pt(b.PivotX, b.PivotY)
	pts := make([]geom.Point, n)
	offs := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(b.PointX[i], b.PointY[i])
		offs[i] = pts[i].Sub(pivot)
	}
	return group.Geometry{
		Points:    pts,
		Areas:     append([]float64(nil), b.Area...),
		TotalArea: b.TotalArea,
		Pivot:     pivot,
		Offsets:   offs,
		Icx:       b.Icx,
		Icy:       b.Icy,
		Icp:       b.Icp,
		Units:     b.sys,
	}
}

// Case rebuilds the i'th load case header. The index must be in [0, Len).
func (b *Bundle) Case(i int) Case {
	c := &b.Cases[i]
	return Case{
		Name: c.Name,
		Resultant: group.Resultant{
			Force:  geom.V3(c.Force[0], c.Force[1], c.Force[2]),
			Moment: geom.V3(c.Moment[0], c.Moment[1], c.Moment[2]),
		},
	}
}

// LoadSet rebuilds the i'th per-fastener result exactly as Distribute
// produced it, shear magnitudes included. The index must be in [0, Len).
func (b *Bundle) LoadSet(i int) group.LoadSet {
	geo := b.Geometry()
	c := &b.Cases[i]
	fasteners := make([]group.Fastener, len(c.Axial))
	for j := range fasteners {
		fasteners[j] = group.Fastener{
			Position: geo.Points[j],
			Axial:    c.Axial[j],
			Shear:    geom.Pt(c.ShearX[j], c.ShearY[j]),
			ShearMag: c.ShearMag[j],
		}
	}
	return group.LoadSet{
		Geometry:  geo,
		Resultant: b.Case(i).Resultant,
		Fasteners: fasteners,
		MaxShear:  c.MaxShear,
	}
}

// resultToBundle flattens a Result into the persisted payload shape.
func resultToBundle(title string, res *Result) (*Bundle, error) {
	if res == nil || len(res.Cases) != len(res.Sets) {
		return nil, fmt.Errorf("result cases and sets disagree: %w", ErrBadBundle)
	}
	geo := &res.Geometry
	nf, err := safecast.Conv[uint32](len(geo.Points))
	if err != nil {
		return nil, err
	}
	nc, err := safecast.Conv[uint32](len(res.Cases))
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		Schema:       SchemaVersion,
		Title:        title,
		LengthUnit:   geo.Units.Length.Symbol(),
		ForceUnit:    geo.Units.Force.Symbol(),
		NumFasteners: nf,
		PointX:       make([]float64, len(geo.Points)),
		PointY:       make([]float64, len(geo.Points)),
		Area:         append([]float64(nil), geo.Areas...),
		TotalArea:    geo.TotalArea,
		PivotX:       geo.Pivot.X,
		PivotY:       geo.Pivot.Y,
		Icx:          geo.Icx,
		Icy:          geo.Icy,
		Icp:          geo.Icp,
		NumCases:     nc,
		Cases:        make([]BundleCase, len(res.Cases)),
	}
	for i, p := range geo.Points {
		b.PointX[i] = p.X
		b.PointY[i] = p.Y
	}

	for i := range res.Cases {
		c := &res.Cases[i]
		set := &res.Sets[i]
		bc := BundleCase{
			Name:     c.Name,
			Force:    [3]float64{c.Resultant.Force.X, c.Resultant.Force.Y, c.Resultant.Force.Z},
			Moment:   [3]float64{c.Resultant.Moment.X, c.Resultant.Moment.Y, c.Resultant.Moment.Z},
			Axial:    make([]float64, len(set.Fasteners)),
			ShearX:   make([]float64, len(set.Fasteners)),
			ShearY:   make([]float64, len(set.Fasteners)),
			ShearMag: make([]float64, len(set.Fasteners)),
			MaxShear: set.MaxShear,
		}
		for j := range set.Fasteners {
			f := &set.Fasteners[j]
			bc.Axial[j] = f.Axial
			bc.ShearX[j] = f.Shear.X
			bc.ShearY[j] = f.Shear.Y
			bc.ShearMag[j] = f.ShearMag
		}
		b.Cases[i] = bc
	}
	return b, nil
}
