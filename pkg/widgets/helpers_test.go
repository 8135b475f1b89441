package widgets_test

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// record draws w with ctx onto a recording surface and returns the ops.
func record(w core.Widget, ctx core.Context) []rendering.Op {
	recorder := &rendering.PictureRecorder{}
	surface := recorder.BeginRecording(rendering.Size{Width: ctx.X + ctx.Width, Height: ctx.Y + ctx.Height})
	w.Draw(surface, ctx)
	return recorder.EndRecording().Ops()
}

func box(x, y, w, h float64) core.Context {
	return core.Context{X: x, Y: y, Width: w, Height: h}
}

func press(x, y float64) core.MousePressed {
	return core.MousePressed{Button: core.MouseLeft, Position: rendering.Offset{X: x, Y: y}}
}
