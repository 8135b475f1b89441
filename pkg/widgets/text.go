package widgets

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Text metrics used for measurement. Text is measured with a fixed cell
// per character rather than real glyph advances.
const (
	CharWidth      = 6.0
	CharHeight     = 12.5
	BaselineOffset = 9.0
)

// Text draws a single run of text.
//
// Measure reports CharWidth per byte of the string and CharHeight. When
// the text is wider than the box, the width is clamped to the box and the
// height doubled to leave room for one line break; no wrapping is
// performed.
//
// Draw places the baseline anchor at (ctx.X, ctx.Y+BaselineOffset); the
// alignment decides whether the anchor is the start, middle or end of
// the run.
type Text struct {
	text  string
	color rendering.Color
	align rendering.TextAlign
	font  rendering.Font
}

// TextBuilder configures a Text.
type TextBuilder struct {
	text Text
}

// NewText starts a black, left-aligned Text.
func NewText(text string) *TextBuilder {
	return &TextBuilder{text: Text{
		text:  text,
		color: rendering.ColorBlack,
		align: rendering.AlignLeft,
		font:  rendering.DefaultFont(),
	}}
}

// Color sets the text color.
func (b *TextBuilder) Color(color rendering.Color) *TextBuilder {
	b.text.color = color
	return b
}

// Align sets the horizontal alignment.
func (b *TextBuilder) Align(align rendering.TextAlign) *TextBuilder {
	b.text.align = align
	return b
}

// Font sets the font handed to the surface. It does not affect Measure.
func (b *TextBuilder) Font(font rendering.Font) *TextBuilder {
	b.text.font = font
	return b
}

// Build returns the configured Text.
func (b *TextBuilder) Build() *Text {
	text := b.text
	return &text
}

// Content returns the text string.
func (t *Text) Content() string {
	return t.text
}

func (t *Text) Measure(ctx core.Context) rendering.Size {
	ctx = ctx.Sanitize()
	width := float64(len(t.text)) * CharWidth
	height := CharHeight
	if width > ctx.Width {
		width = ctx.Width
		height *= 2
	}
	return rendering.Size{Width: width, Height: height}
}

func (t *Text) Draw(surface rendering.Surface, ctx core.Context) {
	ctx = ctx.Sanitize()
	position := rendering.Offset{X: ctx.X, Y: ctx.Y + BaselineOffset}
	surface.DrawText(t.text, position, t.font, t.color, t.align)
}

func (t *Text) Dispatch(core.Event) {}
