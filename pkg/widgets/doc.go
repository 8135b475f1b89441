// Package widgets provides the concrete yalem widgets.
//
// Leaves draw content: [Text] and [Triangle]. Structural containers derive
// child contexts: [Padding], [Center], [Expand], [List] and [Button].
// [Stateful] regenerates its subtree from caller-owned state on every pass.
//
// # Construction
//
// Widgets are built with fluent builders and finalized with Build:
//
//	counter := &Counter{}
//	tree := widgets.NewList().
//	    Child(widgets.NewButton().
//	        Background(rendering.ColorBlack).
//	        Height(50).
//	        OnClick(counter.Increment).
//	        Child(widgets.NewStateful(counter).
//	            Rebuild(func(c *Counter) core.Widget {
//	                return widgets.NewText(fmt.Sprintf("Click -> %d", c.Value)).
//	                    Color(rendering.ColorYellow).
//	                    Build()
//	            }).
//	            Build()).
//	        Build()).
//	    Build()
//
// Build freezes the configuration. Widget fields are unexported; the
// builders are the only way to create a widget.
//
// # Misconfiguration
//
// Containers that need a child ([Padding], [Center]) panic with an
// [errors.RequiredChildError] when built without one. A panic during a
// frame is recovered by engine.Window and returned as an error.
//
// [errors.RequiredChildError]: github.com/yalem-ui/yalem/pkg/errors.RequiredChildError
package widgets
