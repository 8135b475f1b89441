package widgets

import (
	"math"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

const (
	triangleTopMargin   = 10
	triangleStrokeWidth = 1.0
)

// Triangle strokes a decorative equilateral triangle pointing up.
//
// The triangle is centered on (ctx.X, ctx.Y+10) with a radius of about a
// quarter of the smaller box dimension. It has no intrinsic size and
// measures as the whole incoming box.
type Triangle struct {
	color rendering.Color
}

// TriangleBuilder configures a Triangle.
type TriangleBuilder struct {
	color rendering.Color
}

// NewTriangle starts a black Triangle.
func NewTriangle() *TriangleBuilder {
	return &TriangleBuilder{color: rendering.ColorBlack}
}

// Background sets the stroke color.
func (b *TriangleBuilder) Background(color rendering.Color) *TriangleBuilder {
	b.color = color
	return b
}

// Build returns the configured Triangle.
func (b *TriangleBuilder) Build() *Triangle {
	return &Triangle{color: b.color}
}

// Path returns the outline drawn for ctx, or nil when the box is too small
// to hold a triangle.
func (t *Triangle) Path(ctx core.Context) *rendering.Path {
	ctx = ctx.Sanitize()
	size := min(int(ctx.Width), int(ctx.Height)-triangleTopMargin)
	radius := size / 2 * 53 / 100
	if radius <= 0 {
		return nil
	}

	cx, cy := ctx.X, ctx.Y+triangleTopMargin
	r := float64(radius)
	delta := 120 * math.Pi / 180
	alpha := 90 * math.Pi / 180

	path := rendering.NewPath()
	for i := 0; i < 3; i++ {
		x := cx + r*math.Cos(alpha)
		y := cy - r*math.Sin(alpha)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
		alpha += delta
	}
	path.Close()
	return path
}

func (t *Triangle) Measure(ctx core.Context) rendering.Size {
	return ctx.Sanitize().Size()
}

func (t *Triangle) Draw(surface rendering.Surface, ctx core.Context) {
	if path := t.Path(ctx); path != nil {
		surface.StrokePath(path, t.color, triangleStrokeWidth)
	}
}

func (t *Triangle) Dispatch(core.Event) {}
