package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/boltgroup/batch"
	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/pattern"
	"github.com/katalvlaran/boltgroup/units"
)

// flangeResult computes a small two-case batch worth persisting.
func flangeResult(t *testing.T) *batch.Result {
	t.Helper()
	pts, err := pattern.Circle(100, 6)
	require.NoError(t, err, "circle pattern must generate")
	geo, err := group.ComputeGeometry(pts, group.WithUniformArea(2), group.WithUnits(units.US()))
	require.NoError(t, err, "circle geometry must resolve")

	cases := []batch.Case{
		{Name: "thrust", Resultant: group.Resultant{Force: geom.V3(0, 0, 5000)}},
		{Name: "torque", Resultant: group.Resultant{Moment: geom.V3(0, 0, 90000)}},
	}
	res, err := batch.Run(context.Background(), geo, cases)
	require.NoError(t, err, "both cases are well posed")
	return res
}

// writeBundle persists a raw bundle, bypassing Save's validation.
func writeBundle(t *testing.T, path string, b *batch.Bundle) {
	t.Helper()
	raw, err := msgpack.Marshal(b)
	require.NoError(t, err, "bundle must marshal")
	require.NoError(t, os.WriteFile(path, raw, 0o644), "bundle must write")
}

func TestBundle_RoundTrip(t *testing.T) {
	res := flangeResult(t)
	path := filepath.Join(t.TempDir(), "flange.bgb")

	require.NoError(t, batch.Save(path, "pump flange", res), "save must succeed")

	b, err := batch.Open(path)
	require.NoError(t, err, "open must succeed")

	assert.Equal(t, "pump flange", b.Title, "title survives")
	assert.Equal(t, units.US(), b.System(), "unit system survives")
	require.Equal(t, 2, b.Len(), "both cases survive")

	got, want := b.Geometry(), res.Geometry
	require.Len(t, got.Points, len(want.Points), "fastener count survives")
	for i := range want.Points {
		assert.InDelta(t, want.Points[i].X, got.Points[i].X, eps, "point %d x", i)
		assert.InDelta(t, want.Points[i].Y, got.Points[i].Y, eps, "point %d y", i)
		assert.InDelta(t, want.Offsets[i].X, got.Offsets[i].X, eps, "offset %d x", i)
		assert.InDelta(t, want.Offsets[i].Y, got.Offsets[i].Y, eps, "offset %d y", i)
		assert.InDelta(t, want.Areas[i], got.Areas[i], eps, "area %d", i)
	}
	assert.InDelta(t, want.TotalArea, got.TotalArea, eps, "total area survives")
	assert.InDelta(t, want.Pivot.X, got.Pivot.X, eps, "pivot x survives")
	assert.InDelta(t, want.Pivot.Y, got.Pivot.Y, eps, "pivot y survives")
	assert.InDelta(t, want.Icx, got.Icx, eps, "Icx survives")
	assert.InDelta(t, want.Icy, got.Icy, eps, "Icy survives")
	assert.InDelta(t, want.Icp, got.Icp, eps, "Icp survives")
	assert.Equal(t, want.Units, got.Units, "units survive")

	for i := 0; i < b.Len(); i++ {
		assert.Equal(t, res.Cases[i], b.Case(i), "case %d header survives", i)

		gotSet, wantSet := b.LoadSet(i), res.Sets[i]
		require.Len(t, gotSet.Fasteners, len(wantSet.Fasteners), "case %d fastener count", i)
		for j := range wantSet.Fasteners {
			assert.InDelta(t, wantSet.Fasteners[j].Axial, gotSet.Fasteners[j].Axial, eps, "case %d axial %d", i, j)
			assert.InDelta(t, wantSet.Fasteners[j].Shear.X, gotSet.Fasteners[j].Shear.X, eps, "case %d shear x %d", i, j)
			assert.InDelta(t, wantSet.Fasteners[j].Shear.Y, gotSet.Fasteners[j].Shear.Y, eps, "case %d shear y %d", i, j)
			assert.InDelta(t, wantSet.Fasteners[j].ShearMag, gotSet.Fasteners[j].ShearMag, eps, "case %d shear mag %d", i, j)
		}
		assert.InDelta(t, wantSet.MaxShear, gotSet.MaxShear, eps, "case %d max shear", i)
	}
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	res := flangeResult(t)
	path := filepath.Join(t.TempDir(), "runs", "2026", "flange.bgb")

	require.NoError(t, batch.Save(path, "nested", res), "parents must be created")
	_, err := os.Stat(path)
	assert.NoError(t, err, "bundle file must exist")
}

func TestSave_RejectsMisalignedResult(t *testing.T) {
	res := flangeResult(t)
	res.Sets = res.Sets[:1] // one set short of the case list

	err := batch.Save(filepath.Join(t.TempDir(), "bad.bgb"), "bad", res)
	require.Error(t, err, "misaligned result must not persist")
	assert.ErrorIs(t, err, batch.ErrBadBundle)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := batch.Open(filepath.Join(t.TempDir(), "absent.bgb"))
	require.Error(t, err, "missing file must not open")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.bgb")
	writeBundle(t, path, &batch.Bundle{Schema: batch.SchemaVersion + 1})

	_, err := batch.Open(path)
	require.Error(t, err, "foreign schema must not open")
	assert.ErrorIs(t, err, batch.ErrSchemaMismatch)
}

func TestOpen_MalformedBundles(t *testing.T) {
	base := batch.Bundle{
		Schema:       batch.SchemaVersion,
		LengthUnit:   "mm",
		ForceUnit:    "N",
		NumFasteners: 2,
		PointX:       []float64{-50, 50},
		PointY:       []float64{0, 0},
		Area:         []float64{1, 1},
		TotalArea:    2,
	}

	tests := []struct {
		name    string
		mutate  func(b *batch.Bundle)
		wantErr error
	}{
		{
			name:    "no fasteners",
			mutate:  func(b *batch.Bundle) { b.NumFasteners = 0 },
			wantErr: batch.ErrBadBundle,
		},
		{
			name:    "short point array",
			mutate:  func(b *batch.Bundle) { b.PointX = b.PointX[:1] },
			wantErr: batch.ErrBadBundle,
		},
		{
			name:    "case count disagrees",
			mutate:  func(b *batch.Bundle) { b.NumCases = 3 },
			wantErr: batch.ErrBadBundle,
		},
		{
			name: "case arrays short",
			mutate: func(b *batch.Bundle) {
				b.NumCases = 1
				b.Cases = []batch.BundleCase{{Name: "stub", Axial: []float64{1}}}
			},
			wantErr: batch.ErrBadBundle,
		},
		{
			name:    "unknown unit symbol",
			mutate:  func(b *batch.Bundle) { b.ForceUnit = "dyn" },
			wantErr: units.ErrUnknownUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base // copy; mutations replace slice headers, never shared cells
			tt.mutate(&b)
			path := filepath.Join(t.TempDir(), "bad.bgb")
			writeBundle(t, path, &b)

			_, err := batch.Open(path)
			require.Error(t, err, "malformed bundle must not open")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpen_TruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "torn.bgb")
	require.NoError(t, os.WriteFile(path, []byte{0x92, 0x01}, 0o644))

	_, err := batch.Open(path)
	assert.Error(t, err, "garbage must not decode")
}
