// Package demos holds the widget trees the yalem CLI can render.
package demos

import (
	"fmt"
	"sort"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
	"github.com/yalem-ui/yalem/pkg/widgets"
)

// Counter is the state shared by the counter demos. The caller owns it;
// button callbacks mutate it and Stateful subtrees read it on every pass.
type Counter struct {
	Value int
}

// NewCounter returns a counter starting at 1.
func NewCounter() *Counter {
	return &Counter{Value: 1}
}

// Increment adds one.
func (c *Counter) Increment() {
	c.Value++
}

// Demo is a named widget tree. Build returns a fresh tree each call, so
// every window gets its own widgets while sharing the counter.
type Demo struct {
	Name  string
	Short string
	Build func(counter *Counter) core.Widget
}

var registry = map[string]Demo{}

func register(d Demo) {
	registry[d.Name] = d
}

func init() {
	register(Demo{Name: "counter", Short: "button with a click counter", Build: CounterTree})
	register(Demo{Name: "fancy_counter", Short: "counter label and a separate increment button", Build: FancyCounterTree})
	register(Demo{Name: "layouts", Short: "tour of Padding, Expand, Center, List and Triangle", Build: func(*Counter) core.Widget { return LayoutsTree() }})
}

// Lookup returns the demo with the given name.
func Lookup(name string) (Demo, bool) {
	d, ok := registry[name]
	return d, ok
}

// All returns every demo sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CounterTree is a black button whose label shows the counter.
func CounterTree(counter *Counter) core.Widget {
	label := widgets.NewStateful(counter).Rebuild(func(c *Counter) core.Widget {
		return widgets.NewText(fmt.Sprintf("Click -> %d", c.Value)).
			Color(rendering.ColorYellow).
			Build()
	}).Build()

	return widgets.Column(
		widgets.NewButton().
			Child(label).
			Background(rendering.ColorBlack).
			OnClick(counter.Increment).
			Build(),
	)
}

// FancyCounterTree shows the counter in a full-width bar above a separate
// increment button.
func FancyCounterTree(counter *Counter) core.Widget {
	display := widgets.NewStateful(counter).Rebuild(func(c *Counter) core.Widget {
		text := widgets.NewText(fmt.Sprintf("Counter -> %d", c.Value)).
			Align(rendering.AlignCenter).
			Color(rendering.ColorBlack).
			Build()
		return widgets.NewButton().
			Child(widgets.NewExpand().
				Child(widgets.NewCenter().
					Child(widgets.NewPadding(0, 0, 10, 0).Child(text).Build()).
					Direction(core.Both).
					Build()).
				Direction(core.Horizontal).
				Build()).
			Height(50).
			Build()
	}).Build()

	increment := widgets.NewButton().
		Child(widgets.NewExpand().
			Child(widgets.NewCenter().
				Child(widgets.NewPadding(0, 0, 20, 0).
					Child(widgets.NewText("Click me").
						Color(rendering.ColorYellow).
						Align(rendering.AlignCenter).
						Build()).
					Build()).
				Build()).
			Build()).
		Background(rendering.ColorBlack).
		OnClick(counter.Increment).
		Height(50).
		Build()

	return widgets.Column(display, increment)
}

// LayoutsTree exercises every structural widget.
func LayoutsTree() core.Widget {
	light := rendering.RGB(240, 240, 240)

	expanded := widgets.NewButton().
		Background(rendering.ColorRed).
		Child(widgets.NewExpand().Child(widgets.NewText("Expanded").Color(light).Build()).Build()).
		Build()

	fixed := widgets.NewButton().
		Background(rendering.ColorBlue).
		Child(widgets.NewText("Fixed width and height").Color(light).Build()).
		Width(200).
		Height(50).
		Build()

	paddings := widgets.NewPadding(0, 0, 0, 0).
		Child(widgets.NewButton().
			Background(rendering.ColorBlack).
			Child(widgets.NewPadding(50, 50, 25, 25).
				Child(widgets.NewText("Fixed paddings").Color(rendering.ColorYellow).Build()).
				Build()).
			Build()).
		Build()

	centered := widgets.Padded(widgets.EdgeInsetsAll(10),
		widgets.NewButton().
			Background(rendering.ColorGreen).
			Child(widgets.NewExpand().
				Child(widgets.NewCenter().
					Child(widgets.NewText("Expanded horizontally + centered + paddings").
						Color(rendering.ColorBlack).
						Align(rendering.AlignCenter).
						Build()).
					Build()).
				Build()).
			Build())

	both := widgets.NewButton().
		Background(rendering.ColorMagenta).
		Child(widgets.NewExpand().
			Child(widgets.Centered(widgets.Column(
				widgets.NewText("Expanded both sides and centered").
					Color(rendering.ColorBlack).
					Align(rendering.AlignCenter).
					Build(),
				widgets.NewTriangle().Build(),
			))).
			Direction(core.Both).
			Build()).
		Build()

	return widgets.NewPadding(0, 0, 0, 0).
		Child(widgets.Column(
			widgets.NewText("yalem Demo").Color(rendering.ColorBlack).Build(),
			expanded,
			fixed,
			paddings,
			centered,
			both,
		)).
		Build()
}
