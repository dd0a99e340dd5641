package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
)

const baseBoltRadius = 9.0 // pixels, for the largest fastener

// Pattern renders a layout preview: fasteners as uniform discs, axes and a
// cross through the pivot, and 1-based index labels.
func Pattern(points []geom.Point, pivot geom.Point, opts ...Option) *image.RGBA {
	cfg := newOptions(opts...)
	c := newCanvas(cfg, points, pivot)

	px, py := c.at(pivot)
	c.axes(px, py)

	for i, p := range points {
		x, y := c.at(p)
		c.disc(x, y, baseBoltRadius+1.5, outlineColor)
		c.disc(x, y, baseBoltRadius, boltColor)
		c.label(int(x+baseBoltRadius)+4, int(y)+5, strconv.Itoa(i+1), labelColor)
	}
	c.cross(px, py, pivotColor)

	return c.img
}

// Loads renders one distributed load case: disc area tracks fastener area,
// disc color tracks tensile axial intensity (compressive values clamp to
// the neutral gray), and shear arrows are scaled so the set's largest
// shear spans 12% of the short canvas side.
func Loads(set group.LoadSet, opts ...Option) *image.RGBA {
	cfg := newOptions(opts...)
	geo := set.Geometry
	c := newCanvas(cfg, geo.Points, geo.Pivot)

	px, py := c.at(geo.Pivot)
	c.axes(px, py)

	maxArea, maxAxial := 0.0, 0.0
	for i, f := range set.Fasteners {
		if i < len(geo.Areas) {
			maxArea = math.Max(maxArea, geo.Areas[i])
		}
		maxAxial = math.Max(maxAxial, math.Abs(f.Axial))
	}

	for i, f := range set.Fasteners {
		x, y := c.at(f.Position)
		r := baseBoltRadius
		if i < len(geo.Areas) && maxArea > 0 {
			r = math.Max(baseBoltRadius*math.Sqrt(geo.Areas[i]/maxArea), 4)
		}
		c.disc(x, y, r+1.5, outlineColor)
		c.disc(x, y, r, axialColor(f.Axial, maxAxial))
		c.label(int(x+r)+4, int(y)+5, strconv.Itoa(i+1), labelColor)
	}
	c.cross(px, py, pivotColor)

	arrowMax := 0.12 * float64(min(cfg.width, cfg.height))
	for _, f := range set.Fasteners {
		if set.MaxShear <= 0 || f.ShearMag <= 0 {
			continue
		}
		x, y := c.at(f.Position)
		length := f.ShearMag / set.MaxShear * arrowMax
		// y flips: world shear up is canvas up.
		c.arrow(x, y, x+f.Shear.X/f.ShearMag*length, y-f.Shear.Y/f.ShearMag*length, shearColor)
	}

	return c.img
}

// axialColor grades from the neutral gray to full tension red with
// axial / maxAxial. Compressive values clamp to zero intensity and render
// neutral.
func axialColor(axial, maxAxial float64) color.RGBA {
	if maxAxial <= 0 || axial <= 0 {
		return neutralColor
	}

	return lerpRGBA(neutralColor, tensionColor, axial/maxAxial)
}

// lerpRGBA interpolates channel-wise from a to b; t=1 yields exactly b.
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}

	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: 255}
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("plot: encode png: %w", err)
	}

	return nil
}

// WritePNG writes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("plot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	return nil
}
