package widgets

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/errors"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Padding insets its child by a fixed amount on each side.
//
// The insets consume space: the child is drawn at the incoming origin
// moved by (left, top) with the incoming size shrunk by the insets,
// never below zero. Padding itself draws nothing.
//
//	widgets.NewPadding(10, 10, 10, 10).Child(text).Build()
type Padding struct {
	padding EdgeInsets
	child   core.Widget
}

// PaddingBuilder configures a Padding.
type PaddingBuilder struct {
	padding EdgeInsets
	child   core.Widget
}

// NewPadding starts a Padding with the given insets.
func NewPadding(left, right, top, bottom float64) *PaddingBuilder {
	return &PaddingBuilder{padding: EdgeInsets{Left: left, Right: right, Top: top, Bottom: bottom}}
}

// NewPaddingInsets starts a Padding from an EdgeInsets value.
func NewPaddingInsets(insets EdgeInsets) *PaddingBuilder {
	return &PaddingBuilder{padding: insets}
}

// Child sets the padded widget.
func (b *PaddingBuilder) Child(child core.Widget) *PaddingBuilder {
	b.child = child
	return b
}

// Build returns the configured Padding. It panics with a
// *errors.RequiredChildError if no child was set.
func (b *PaddingBuilder) Build() *Padding {
	if b.child == nil {
		panic(&errors.RequiredChildError{Widget: "Padding"})
	}
	return &Padding{padding: b.padding, child: b.child}
}

// Insets returns the configured insets.
func (p *Padding) Insets() EdgeInsets {
	return p.padding
}

// ChildContext returns the context the child is measured and drawn with.
func (p *Padding) ChildContext(ctx core.Context) core.Context {
	return ctx.Sanitize().Deflate(p.padding.Left, p.padding.Right, p.padding.Top, p.padding.Bottom)
}

func (p *Padding) Measure(ctx core.Context) rendering.Size {
	childSize := core.MeasureChild(p.child, p.ChildContext(ctx))
	return rendering.Size{
		Width:  childSize.Width + p.padding.Horizontal(),
		Height: childSize.Height + p.padding.Vertical(),
	}
}

func (p *Padding) Draw(surface rendering.Surface, ctx core.Context) {
	core.DrawChild(p.child, surface, p.ChildContext(ctx))
}

func (p *Padding) Dispatch(event core.Event) {
	core.DispatchChild(p.child, event)
}
