package widgets

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// List stacks its children vertically in insertion order.
//
// Each child gets the full incoming width and whatever height is left
// between its own top edge and the bottom of the incoming box, so later
// children are offered less room. A child's measured height decides where
// the next one starts; List never overrides a child's own size.
//
// Measure reports the bottom edge of the last child as its height: the
// final y offset, not the height consumed below ctx.Y.
type List struct {
	children []core.Widget
}

// ListBuilder configures a List.
type ListBuilder struct {
	children []core.Widget
}

// NewList starts an empty List.
func NewList() *ListBuilder {
	return &ListBuilder{}
}

// Child appends a child. Nil children are ignored.
func (b *ListBuilder) Child(child core.Widget) *ListBuilder {
	if child != nil {
		b.children = append(b.children, child)
	}
	return b
}

// Children appends several children in order.
func (b *ListBuilder) Children(children ...core.Widget) *ListBuilder {
	for _, child := range children {
		b.Child(child)
	}
	return b
}

// Build returns the configured List.
func (b *ListBuilder) Build() *List {
	children := make([]core.Widget, len(b.children))
	copy(children, b.children)
	return &List{children: children}
}

// Len returns the number of children.
func (l *List) Len() int {
	return len(l.children)
}

// layout walks the children top to bottom, handing each one its context
// and measured size, and returns the final y offset.
func (l *List) layout(ctx core.Context, visit func(child core.Widget, childCtx core.Context)) float64 {
	ctx = ctx.Sanitize()
	bottom := ctx.Y + ctx.Height
	y := ctx.Y
	for _, child := range l.children {
		childCtx := core.Context{
			X:      ctx.X,
			Y:      y,
			Width:  ctx.Width,
			Height: bottom - y,
		}.Sanitize()
		size := child.Measure(childCtx)
		if visit != nil {
			visit(child, childCtx)
		}
		y += size.Height
	}
	return y
}

// ChildContexts returns the context each child is drawn with.
func (l *List) ChildContexts(ctx core.Context) []core.Context {
	out := make([]core.Context, 0, len(l.children))
	l.layout(ctx, func(_ core.Widget, childCtx core.Context) {
		out = append(out, childCtx)
	})
	return out
}

func (l *List) Measure(ctx core.Context) rendering.Size {
	return rendering.Size{Width: ctx.Sanitize().Width, Height: l.layout(ctx, nil)}
}

func (l *List) Draw(surface rendering.Surface, ctx core.Context) {
	l.layout(ctx, func(child core.Widget, childCtx core.Context) {
		child.Draw(surface, childCtx)
	})
}

func (l *List) Dispatch(event core.Event) {
	for _, child := range l.children {
		child.Dispatch(event)
	}
}
