package engine

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/errors"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// DefaultTitle is the title of a window built without one.
const DefaultTitle = "yalem"

// Window is the top-level owner of a widget tree.
type Window struct {
	title string
	root  core.Widget
	clear rendering.Color
}

// WindowBuilder configures a Window.
type WindowBuilder struct {
	window Window
}

// NewWindow starts a Window with a white clear color and no root.
func NewWindow() *WindowBuilder {
	return &WindowBuilder{window: Window{title: DefaultTitle, clear: rendering.ColorWhite}}
}

// Title sets the window title.
func (b *WindowBuilder) Title(title string) *WindowBuilder {
	b.window.title = title
	return b
}

// Root sets the root widget.
func (b *WindowBuilder) Root(root core.Widget) *WindowBuilder {
	b.window.root = root
	return b
}

// Clear sets the color the surface is cleared to before each draw.
func (b *WindowBuilder) Clear(color rendering.Color) *WindowBuilder {
	b.window.clear = color
	return b
}

// Build returns the configured Window.
func (b *WindowBuilder) Build() *Window {
	w := b.window
	return &w
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// Root returns the root widget, or nil.
func (w *Window) Root() core.Widget {
	return w.root
}

// ClearColor returns the color the surface is cleared to.
func (w *Window) ClearColor() rendering.Color {
	return w.clear
}

// Context returns the root context for a surface of the given size.
func (w *Window) Context(size rendering.Size) core.Context {
	return core.ContextFromSize(size)
}

// Draw clears surface and draws the root widget over the whole surface.
//
// A panic raised anywhere in the pass is recovered, reported through
// errors.ReportPanic and returned as a *errors.PanicError. The surface
// may hold a partial frame in that case.
func (w *Window) Draw(surface rendering.Surface) (err error) {
	defer errors.RecoverInto("engine.Window.Draw", &err)

	surface.Clear(w.clear)
	if w.root == nil {
		return nil
	}
	w.root.Draw(surface, w.Context(surface.Size()))
	return nil
}

// Dispatch delivers event to the root widget. Panics are handled as in Draw.
func (w *Window) Dispatch(event core.Event) (err error) {
	defer errors.RecoverInto("engine.Window.Dispatch", &err)

	if w.root == nil {
		return nil
	}
	w.root.Dispatch(event)
	return nil
}
