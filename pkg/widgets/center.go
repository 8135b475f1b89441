package widgets

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/errors"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Center moves its child to the midpoint of the incoming box along the
// configured direction.
//
// Center wraps the child in a Padding whose insets are half the incoming
// size on each affected axis: left = right = width/2 for Horizontal,
// top = bottom = height/2 for Vertical, all four for Both. The child is
// therefore drawn with its origin at the midpoint and a zero-sized box on
// the affected axes, which suits anchor-aligned content such as centered
// Text.
//
// Draw stores the insets it used (see Insets). Measure derives the same
// insets from its own context without storing anything, so measuring is a
// pure function of the context.
type Center struct {
	direction core.Direction
	inner     *Padding
}

// CenterBuilder configures a Center.
type CenterBuilder struct {
	direction core.Direction
	child     core.Widget
}

// NewCenter starts a Center. The default direction is Horizontal.
func NewCenter() *CenterBuilder {
	return &CenterBuilder{direction: core.Horizontal}
}

// Child sets the centered widget.
func (b *CenterBuilder) Child(child core.Widget) *CenterBuilder {
	b.child = child
	return b
}

// Direction selects the axes to center on.
func (b *CenterBuilder) Direction(direction core.Direction) *CenterBuilder {
	b.direction = direction
	return b
}

// Build returns the configured Center. It panics with a
// *errors.RequiredChildError if no child was set.
func (b *CenterBuilder) Build() *Center {
	if b.child == nil {
		panic(&errors.RequiredChildError{Widget: "Center"})
	}
	return &Center{
		direction: b.direction,
		inner:     &Padding{child: b.child},
	}
}

// Insets returns the insets applied by the most recent Draw. Before the
// first Draw they are all zero.
func (c *Center) Insets() EdgeInsets {
	return c.inner.padding
}

// insetsFor returns the midpoint insets for ctx, starting from the current
// ones so axes outside the direction keep their value.
func (c *Center) insetsFor(ctx core.Context) EdgeInsets {
	insets := c.inner.padding
	if c.direction.AffectsX() {
		insets.Left = ctx.Width / 2
		insets.Right = ctx.Width / 2
	}
	if c.direction.AffectsY() {
		insets.Top = ctx.Height / 2
		insets.Bottom = ctx.Height / 2
	}
	return insets
}

func (c *Center) Measure(ctx core.Context) rendering.Size {
	ctx = ctx.Sanitize()
	probe := Padding{padding: c.insetsFor(ctx), child: c.inner.child}
	return probe.Measure(ctx)
}

func (c *Center) Draw(surface rendering.Surface, ctx core.Context) {
	ctx = ctx.Sanitize()
	c.inner.padding = c.insetsFor(ctx)
	c.inner.Draw(surface, ctx)
}

func (c *Center) Dispatch(event core.Event) {
	c.inner.Dispatch(event)
}
