package core

import (
	"math"

	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Context is the box constraint handed to a widget for one Measure or Draw
// call: the draw origin (X, Y) and the available Width and Height.
//
// Context is a value. Containers never modify the Context they receive;
// they build a new one for each child.
type Context struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ContextFromSize returns a Context at the origin covering size.
func ContextFromSize(size rendering.Size) Context {
	return Context{Width: size.Width, Height: size.Height}.Sanitize()
}

// Sanitize returns ctx with non-finite coordinates replaced by zero and
// NaN or negative sizes clamped to zero.
func (c Context) Sanitize() Context {
	return Context{
		X:      finite(c.X),
		Y:      finite(c.Y),
		Width:  nonNegative(c.Width),
		Height: nonNegative(c.Height),
	}
}

// Deflate returns the context left after consuming the given insets: the
// origin moves right by left and down by top, and the size shrinks by the
// insets on each axis, clamped to [0, original size].
func (c Context) Deflate(left, right, top, bottom float64) Context {
	return Context{
		X:      c.X + left,
		Y:      c.Y + top,
		Width:  Clamp(c.Width-left-right, 0, c.Width),
		Height: Clamp(c.Height-top-bottom, 0, c.Height),
	}.Sanitize()
}

// WithSize returns a copy of ctx with a different width and height.
func (c Context) WithSize(width, height float64) Context {
	return Context{X: c.X, Y: c.Y, Width: width, Height: height}.Sanitize()
}

// Origin returns the draw origin.
func (c Context) Origin() rendering.Offset {
	return rendering.Offset{X: c.X, Y: c.Y}
}

// Size returns the available box size.
func (c Context) Size() rendering.Size {
	return rendering.Size{Width: c.Width, Height: c.Height}
}

// Rect returns the box as a rectangle.
func (c Context) Rect() rendering.Rect {
	return rendering.RectFromLTWH(c.X, c.Y, c.Width, c.Height)
}

// Clamp limits v to [lo, hi]. NaN clamps to lo. When hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		if hi < lo {
			return lo
		}
		return hi
	}
	return v
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
