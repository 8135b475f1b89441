package core

import "github.com/yalem-ui/yalem/pkg/rendering"

// Widget is the capability every node in a tree implements.
type Widget interface {
	// Measure reports the size the widget would occupy given ctx.
	// It must not draw, record state or call back into user code other
	// than a Stateful rebuild function.
	Measure(ctx Context) rendering.Size

	// Draw renders the widget into ctx and draws its children.
	Draw(surface rendering.Surface, ctx Context)

	// Dispatch delivers event to every child, then lets the widget react.
	Dispatch(event Event)
}

// MeasureChild measures child, treating a nil child as zero-sized.
func MeasureChild(child Widget, ctx Context) rendering.Size {
	if child == nil {
		return rendering.Size{}
	}
	return child.Measure(ctx.Sanitize())
}

// DrawChild draws child if it is non-nil.
func DrawChild(child Widget, surface rendering.Surface, ctx Context) {
	if child == nil {
		return
	}
	child.Draw(surface, ctx.Sanitize())
}

// DispatchChild forwards event to child if it is non-nil.
func DispatchChild(child Widget, event Event) {
	if child == nil {
		return
	}
	child.Dispatch(event)
}
