package plot_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/pattern"
	"github.com/katalvlaran/boltgroup/plot"
)

// Palette pins. Shape interiors render these exact values; changing the
// package palette is a deliberate, test-visible act.
var (
	white       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	steelBlue   = color.RGBA{R: 176, G: 196, B: 222, A: 255}
	firebrick   = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	arrowGreen  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	inkBlack    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	tensionRed  = color.RGBA{R: 203, G: 67, B: 53, A: 255}
	neutralGray = color.RGBA{R: 190, G: 190, B: 190, A: 255}
)

func countColor(img *image.RGBA, want color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func squarePoints() []geom.Point {
	return []geom.Point{geom.Pt(-50, 50), geom.Pt(50, 50), geom.Pt(50, -50), geom.Pt(-50, -50)}
}

func TestPattern_CanvasSize(t *testing.T) {
	img := plot.Pattern(squarePoints(), geom.Pt(0, 0))
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds(), "default canvas is 800×600")

	img = plot.Pattern(squarePoints(), geom.Pt(0, 0), plot.WithSize(320, 240))
	assert.Equal(t, image.Rect(0, 0, 320, 240), img.Bounds(), "WithSize must resize the canvas")
}

func TestPattern_DrawsBoltsAndPivot(t *testing.T) {
	img := plot.Pattern(squarePoints(), geom.Pt(0, 0))

	assert.Equal(t, white, img.RGBAAt(2, 2), "corners stay background")
	assert.Positive(t, countColor(img, steelBlue), "bolt discs must render")
	assert.Positive(t, countColor(img, firebrick), "pivot cross must render")
	assert.Positive(t, countColor(img, inkBlack), "index labels must render")
}

func TestPattern_SingleFastenerCentered(t *testing.T) {
	img := plot.Pattern([]geom.Point{geom.Pt(0, 0)}, geom.Pt(0, 0), plot.WithoutLabels())

	// A lone fastener maps to the canvas center; the pivot cross sits on
	// top of it there, the disc shows beside the cross arms.
	assert.Equal(t, firebrick, img.RGBAAt(400, 300), "pivot cross at the center")
	assert.Equal(t, steelBlue, img.RGBAAt(405, 295), "disc interior beside the cross")
}

func TestPattern_WithoutLabels(t *testing.T) {
	img := plot.Pattern(squarePoints(), geom.Pt(0, 0), plot.WithoutLabels())
	assert.Zero(t, countColor(img, inkBlack), "no label pixels when suppressed")
}

func TestLoads_AxialColors(t *testing.T) {
	pts := squarePoints()

	tension, err := group.AnalyzeLoads(pts, group.Resultant{Force: geom.V3(0, 0, 400)})
	require.NoError(t, err, "thrust case must resolve")
	img := plot.Loads(tension)
	assert.Positive(t, countColor(img, tensionRed), "positive axial renders full tension red")
	assert.Zero(t, countColor(img, neutralGray), "no neutral discs in a pure-tension case")

	compression, err := group.AnalyzeLoads(pts, group.Resultant{Force: geom.V3(0, 0, -400)})
	require.NoError(t, err, "bearing case must resolve")
	img = plot.Loads(compression)
	assert.Positive(t, countColor(img, neutralGray), "compressive axial clamps to the neutral gray")
	assert.Zero(t, countColor(img, tensionRed), "no tension color in a pure-compression case")
}

func TestLoads_BendingClampsCompressedSide(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 100), geom.Pt(0, -100)}
	set, err := group.AnalyzeLoads(pts, group.Resultant{Moment: geom.V3(1000, 0, 0)})
	require.NoError(t, err, "overturning case must resolve")

	img := plot.Loads(set)
	assert.Positive(t, countColor(img, tensionRed), "the tension side must render red")
	assert.Positive(t, countColor(img, neutralGray), "the compressed side clamps to neutral")
}

func TestLoads_ShearArrows(t *testing.T) {
	pts := squarePoints()

	drag, err := group.AnalyzeLoads(pts, group.Resultant{Force: geom.V3(400, 0, 0)})
	require.NoError(t, err, "drag case must resolve")
	img := plot.Loads(drag)
	assert.Positive(t, countColor(img, arrowGreen), "in-plane shear draws arrows")
	assert.Positive(t, countColor(img, neutralGray), "zero axial renders neutral discs")

	thrust, err := group.AnalyzeLoads(pts, group.Resultant{Force: geom.V3(0, 0, 400)})
	require.NoError(t, err, "thrust case must resolve")
	img = plot.Loads(thrust)
	assert.Zero(t, countColor(img, arrowGreen), "no arrows without in-plane shear")
}

func TestLoads_ZeroValueSet(t *testing.T) {
	img := plot.Loads(group.LoadSet{})

	require.NotNil(t, img, "an empty set still renders a canvas")
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds(), "default canvas size")
	assert.Positive(t, countColor(img, firebrick), "the pivot cross still renders")
}

func TestLoads_CirclePattern(t *testing.T) {
	pts, err := pattern.Circle(100, 6)
	require.NoError(t, err, "circle must generate")
	set, err := group.AnalyzeLoads(pts, group.Resultant{
		Force:  geom.V3(0, 0, 5000),
		Moment: geom.V3(0, 0, 30000),
	})
	require.NoError(t, err, "combined case must resolve")

	img := plot.Loads(set)
	assert.Positive(t, countColor(img, tensionRed), "thrust tints every bolt red")
	assert.Positive(t, countColor(img, arrowGreen), "torsion draws tangential arrows")
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.png")
	img := plot.Pattern(squarePoints(), geom.Pt(0, 0))

	require.NoError(t, plot.WritePNG(path, img), "write must succeed")

	f, err := os.Open(path)
	require.NoError(t, err, "file must exist")
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err, "file must hold a valid PNG")
	assert.Equal(t, img.Bounds(), decoded.Bounds(), "dimensions survive the round trip")
}

func TestWritePNG_BadPath(t *testing.T) {
	img := plot.Pattern(squarePoints(), geom.Pt(0, 0), plot.WithSize(64, 64))
	err := plot.WritePNG(filepath.Join(t.TempDir(), "no", "such", "dir", "x.png"), img)
	assert.Error(t, err, "missing parent directories must fail")
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	img := plot.Pattern(squarePoints(), geom.Pt(0, 0), plot.WithSize(100, 100))

	require.NoError(t, plot.EncodePNG(&buf, img), "encode must succeed")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "PNG signature expected")
}

func TestWithSize_NonPositivePanics(t *testing.T) {
	assert.Panics(t, func() { plot.WithSize(0, 100) }, "zero width is a programmer error")
	assert.Panics(t, func() { plot.WithSize(100, -1) }, "negative height is a programmer error")
}
