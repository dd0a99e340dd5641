package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/boltgroup/geom"
)

// Palette. Shape interiors render these values exactly; edges antialias
// toward the background.
var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	axisColor       = color.RGBA{R: 205, G: 205, B: 205, A: 255}
	outlineColor    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	boltColor       = color.RGBA{R: 176, G: 196, B: 222, A: 255}
	pivotColor      = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	shearColor      = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	labelColor      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	tensionColor    = color.RGBA{R: 203, G: 67, B: 53, A: 255}
	neutralColor    = color.RGBA{R: 190, G: 190, B: 190, A: 255}
)

// canvas maps world coordinates (y up) onto an RGBA image (y down) with a
// uniform, centered, aspect-preserving scale.
type canvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	labels bool

	scale      float64
	minX, minY float64
	ox, oy     float64 // pixel insets after centering
}

// newCanvas allocates the image, fills the background, and fits the world
// box of points ∪ {pivot} inside the margins. A box with zero extent on an
// axis is widened to a unit halo so a lone fastener still renders centered.
func newCanvas(cfg Options, points []geom.Point, pivot geom.Point) *canvas {
	minP, maxP := pivot, pivot
	for _, p := range points {
		minP.X = math.Min(minP.X, p.X)
		minP.Y = math.Min(minP.Y, p.Y)
		maxP.X = math.Max(maxP.X, p.X)
		maxP.Y = math.Max(maxP.Y, p.Y)
	}
	bw, bh := maxP.X-minP.X, maxP.Y-minP.Y
	if bw <= 0 {
		bw = 2
		minP.X -= 1
	}
	if bh <= 0 {
		bh = 2
		minP.Y -= 1
	}

	w, h, m := float64(cfg.width), float64(cfg.height), cfg.margin()
	scale := math.Min((w-2*m)/bw, (h-2*m)/bh)

	c := &canvas{
		img:    image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height)),
		z:      vector.NewRasterizer(cfg.width, cfg.height),
		labels: cfg.labels,
		scale:  scale,
		minX:   minP.X,
		minY:   minP.Y,
		ox:     m + ((w-2*m)-bw*scale)/2,
		oy:     m + ((h-2*m)-bh*scale)/2,
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	return c
}

// at maps a world point to pixel coordinates, flipping the y axis.
func (c *canvas) at(p geom.Point) (x, y float64) {
	x = c.ox + (p.X-c.minX)*c.scale
	y = float64(c.img.Bounds().Dy()) - c.oy - (p.Y-c.minY)*c.scale

	return x, y
}

// fill rasterizes one path built by build and composites it over the image.
func (c *canvas) fill(col color.RGBA, build func(z *vector.Rasterizer)) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	build(c.z)
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// disc draws a filled circle of radius r pixels at pixel (cx, cy).
func (c *canvas) disc(cx, cy, r float64, col color.RGBA) {
	c.fill(col, func(z *vector.Rasterizer) {
		circlePath(z, float32(cx), float32(cy), float32(r))
	})
}

// line draws a stroked segment of the given pixel width.
func (c *canvas) line(x0, y0, x1, y1, width float64, col color.RGBA) {
	c.fill(col, func(z *vector.Rasterizer) {
		linePath(z, float32(x0), float32(y0), float32(x1), float32(y1), float32(width))
	})
}

// arrow draws a shaft plus triangular head pointing at (toX, toY). Arrows
// shorter than two pixels are dropped; the head shrinks with short shafts.
func (c *canvas) arrow(fromX, fromY, toX, toY float64, col color.RGBA) {
	dx, dy := toX-fromX, toY-fromY
	length := math.Hypot(dx, dy)
	if length < 2 {
		return
	}
	ux, uy := dx/length, dy/length
	head := math.Min(12, 0.4*length)
	bx, by := toX-ux*head, toY-uy*head // where the head begins

	c.line(fromX, fromY, bx, by, 2.5, col)

	hw := 0.42 * head
	c.fill(col, func(z *vector.Rasterizer) {
		z.MoveTo(float32(toX), float32(toY))
		z.LineTo(float32(bx-uy*hw), float32(by+ux*hw))
		z.LineTo(float32(bx+uy*hw), float32(by-ux*hw))
		z.ClosePath()
	})
}

// cross marks pixel (cx, cy) with a plus sign.
func (c *canvas) cross(cx, cy float64, col color.RGBA) {
	const arm = 9
	c.line(cx-arm, cy, cx+arm, cy, 3, col)
	c.line(cx, cy-arm, cx, cy+arm, 3, col)
}

// axes draws edge-to-edge gray rules through the pixel (px, py).
func (c *canvas) axes(px, py float64) {
	b := c.img.Bounds()
	c.line(0, py, float64(b.Dx()), py, 1, axisColor)
	c.line(px, 0, px, float64(b.Dy()), 1, axisColor)

	c.label(b.Dx()-14, int(py)-5, "x", labelColor)
	c.label(int(px)+6, 16, "y", labelColor)
}

// label draws s with its baseline starting at pixel (x, y). A no-op when
// labels are disabled.
func (c *canvas) label(x, y int, s string, col color.RGBA) {
	if !c.labels {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// circlePath appends a circle as four cubic Béziers.
func circlePath(z *vector.Rasterizer, cx, cy, r float32) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	o := r * k

	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+o, cx+o, cy+r, cx, cy+r)
	z.CubeTo(cx-o, cy+r, cx-r, cy+o, cx-r, cy)
	z.CubeTo(cx-r, cy-o, cx-o, cy-r, cx, cy-r)
	z.CubeTo(cx+o, cy-r, cx+r, cy-o, cx+r, cy)
	z.ClosePath()
}

// linePath appends a segment as a filled quad offset half a width to each
// side. Degenerate segments append nothing.
func linePath(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	px := -dy / length * width / 2
	py := dx / length * width / 2

	z.MoveTo(x0+px, y0+py)
	z.LineTo(x1+px, y1+py)
	z.LineTo(x1-px, y1-py)
	z.LineTo(x0-px, y0-py)
	z.ClosePath()
}
