// Package raster implements rendering.Surface in software, drawing into an
// *image.RGBA. It backs headless rendering in the yalem command and in
// tests; production windows draw through the platform's GPU surface.
//
// Paths are filled with golang.org/x/image/vector. Strokes are expanded to
// one quad per segment and filled the same way. Text is drawn with the
// fixed 7x13 face from golang.org/x/image/font/basicfont, so Font.Size is
// ignored.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Canvas is a software surface.
type Canvas struct {
	img  *image.RGBA
	face font.Face
}

// New creates a transparent canvas of width x height pixels.
func New(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		face: basicfont.Face7x13,
	}
}

// NewForSize creates a canvas covering size, rounding up to whole pixels.
// It can be passed directly as an engine.SurfaceFactory.
func NewForSize(size rendering.Size) rendering.Surface {
	return New(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) Size() rendering.Size {
	b := c.img.Bounds()
	return rendering.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *Canvas) Clear(color rendering.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) FillPath(path *rendering.Path, color rendering.Color) {
	if path.IsEmpty() || c.img.Bounds().Empty() {
		return
	}
	r := c.rasterizer()
	for _, sub := range path.Subpaths() {
		addPolygon(r, sub)
	}
	c.paint(r, color)
}

func (c *Canvas) StrokePath(path *rendering.Path, color rendering.Color, width float64) {
	if path.IsEmpty() || width <= 0 || c.img.Bounds().Empty() {
		return
	}
	half := width / 2
	r := c.rasterizer()
	for _, sub := range path.Subpaths() {
		for i := 1; i < len(sub); i++ {
			if quad, ok := segmentQuad(sub[i-1], sub[i], half); ok {
				addPolygon(r, quad)
			}
		}
	}
	c.paint(r, color)
}

func (c *Canvas) DrawText(text string, position rendering.Offset, _ rendering.Font, color rendering.Color, align rendering.TextAlign) {
	if text == "" {
		return
	}
	advance := font.MeasureString(c.face, text)
	x := align.Anchor(position.X, fixedToFloat(advance))
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.NRGBA()),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(position.Y),
		},
	}
	d.DrawString(text)
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return r
}

func (c *Canvas) paint(r *vector.Rasterizer, color rendering.Color) {
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{})
}

func addPolygon(r *vector.Rasterizer, points []rendering.Offset) {
	if len(points) < 2 {
		return
	}
	r.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}

// segmentQuad returns the rectangle covering the segment a-b widened by
// half on each side. Every quad winds the same way relative to its
// segment, so overlapping quads never cancel out.
func segmentQuad(a, b rendering.Offset, half float64) ([]rendering.Offset, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, false
	}
	nx, ny := -dy/length*half, dx/length*half
	return []rendering.Offset{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, true
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
