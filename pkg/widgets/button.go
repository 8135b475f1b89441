package widgets

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Button fills a rectangle with its background color, draws an optional
// child on top and invokes a callback when a left press lands inside the
// rectangle.
//
// Sizing precedence, per axis: a configured Width or Height, else the
// child's measured size, else zero.
//
// The hit rectangle is recorded by Draw. Presses are tested against the
// rectangle from the most recent Draw, so a press that arrives after the
// layout changed but before the next redraw is tested against the old
// geometry. Presses before the first Draw never match.
//
//	widgets.NewButton().
//	    Width(80).Height(20).
//	    Background(rendering.ColorBlack).
//	    OnClick(func() { count++ }).
//	    Build()
type Button struct {
	background rendering.Color
	child      core.Widget
	width      float64
	height     float64
	hasWidth   bool
	hasHeight  bool
	onClick    func()

	hit   rendering.Rect
	drawn bool
}

// ButtonBuilder configures a Button.
type ButtonBuilder struct {
	button Button
}

// NewButton starts a Button with a transparent background.
func NewButton() *ButtonBuilder {
	return &ButtonBuilder{button: Button{background: rendering.ColorTransparent}}
}

// Child sets the widget drawn on top of the background.
func (b *ButtonBuilder) Child(child core.Widget) *ButtonBuilder {
	b.button.child = child
	return b
}

// Width fixes the button width, overriding the child's width.
func (b *ButtonBuilder) Width(width float64) *ButtonBuilder {
	b.button.width = width
	b.button.hasWidth = true
	return b
}

// Height fixes the button height, overriding the child's height.
func (b *ButtonBuilder) Height(height float64) *ButtonBuilder {
	b.button.height = height
	b.button.hasHeight = true
	return b
}

// Background sets the fill color.
func (b *ButtonBuilder) Background(color rendering.Color) *ButtonBuilder {
	b.button.background = color
	return b
}

// OnClick sets the callback invoked once per matching left press.
func (b *ButtonBuilder) OnClick(fn func()) *ButtonBuilder {
	b.button.onClick = fn
	return b
}

// Build returns the configured Button.
func (b *ButtonBuilder) Build() *Button {
	button := b.button
	return &button
}

// HitRect returns the rectangle recorded by the most recent Draw. The
// second result is false until the button has been drawn.
func (b *Button) HitRect() (rendering.Rect, bool) {
	return b.hit, b.drawn
}

func (b *Button) size(ctx core.Context) rendering.Size {
	size := core.MeasureChild(b.child, ctx)
	if b.hasWidth {
		size.Width = b.width
	}
	if b.hasHeight {
		size.Height = b.height
	}
	return rendering.Size{
		Width:  core.Clamp(size.Width, 0, size.Width),
		Height: core.Clamp(size.Height, 0, size.Height),
	}
}

func (b *Button) Measure(ctx core.Context) rendering.Size {
	return b.size(ctx.Sanitize())
}

func (b *Button) Draw(surface rendering.Surface, ctx core.Context) {
	ctx = ctx.Sanitize()
	size := b.size(ctx)
	b.hit = rendering.RectFromLTWH(ctx.X, ctx.Y, size.Width, size.Height)
	b.drawn = true
	surface.FillPath(rendering.RectPath(b.hit), b.background)
	core.DrawChild(b.child, surface, ctx)
}

func (b *Button) Dispatch(event core.Event) {
	core.DispatchChild(b.child, event)

	press, ok := event.(core.MousePressed)
	if !ok || press.Button != core.MouseLeft {
		return
	}
	if b.onClick == nil || !b.drawn {
		return
	}
	if b.hit.Contains(press.Position) {
		b.onClick()
	}
}
