package widgets

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Expand stretches its child to the edge of the incoming box along the
// configured direction.
//
// For Horizontal the child gets width ctx.Width - ctx.X and its own
// measured height. Vertical is the mirror image: height ctx.Height - ctx.Y
// and the child's own width. Both passes the context through unchanged.
// A negative fill length clamps to zero.
//
// Without a child, Expand measures as the whole incoming box and draws
// nothing.
type Expand struct {
	direction core.Direction
	child     core.Widget
}

// ExpandBuilder configures an Expand.
type ExpandBuilder struct {
	direction core.Direction
	child     core.Widget
}

// NewExpand starts an Expand. The default direction is Horizontal.
func NewExpand() *ExpandBuilder {
	return &ExpandBuilder{direction: core.Horizontal}
}

// Child sets the expanded widget.
func (b *ExpandBuilder) Child(child core.Widget) *ExpandBuilder {
	b.child = child
	return b
}

// Direction selects the axes to fill.
func (b *ExpandBuilder) Direction(direction core.Direction) *ExpandBuilder {
	b.direction = direction
	return b
}

// Build returns the configured Expand.
func (b *ExpandBuilder) Build() *Expand {
	return &Expand{direction: b.direction, child: b.child}
}

// ChildContext returns the context the child is drawn with.
func (e *Expand) ChildContext(ctx core.Context) core.Context {
	ctx = ctx.Sanitize()
	switch e.direction {
	case core.Horizontal:
		size := core.MeasureChild(e.child, ctx)
		return ctx.WithSize(ctx.Width-ctx.X, size.Height)
	case core.Vertical:
		size := core.MeasureChild(e.child, ctx)
		return ctx.WithSize(size.Width, ctx.Height-ctx.Y)
	default:
		return ctx
	}
}

func (e *Expand) Measure(ctx core.Context) rendering.Size {
	if e.child == nil {
		return ctx.Sanitize().Size()
	}
	return e.ChildContext(ctx).Size()
}

func (e *Expand) Draw(surface rendering.Surface, ctx core.Context) {
	if e.child == nil {
		return
	}
	core.DrawChild(e.child, surface, e.ChildContext(ctx))
}

func (e *Expand) Dispatch(event core.Event) {
	core.DispatchChild(e.child, event)
}
