package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/engine"
	"github.com/yalem-ui/yalem/pkg/errors"
	"github.com/yalem-ui/yalem/pkg/rendering"
	yalemtest "github.com/yalem-ui/yalem/pkg/testing"
)

type captured struct {
	errs   []*errors.YalemError
	panics []*errors.PanicError
}

func (c *captured) HandleError(err *errors.YalemError) { c.errs = append(c.errs, err) }
func (c *captured) HandlePanic(err *errors.PanicError) { c.panics = append(c.panics, err) }

func captureErrors(t *testing.T) *captured {
	t.Helper()
	c := &captured{}
	prev := errors.DefaultHandler
	errors.SetHandler(c)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return c
}

func TestWindow_Defaults(t *testing.T) {
	w := engine.NewWindow().Build()
	assert.Equal(t, engine.DefaultTitle, w.Title())
	assert.Nil(t, w.Root())
	assert.Equal(t, rendering.ColorWhite, w.ClearColor())
}

func TestWindow_DrawClearsThenDrawsRootOverSurface(t *testing.T) {
	probe := yalemtest.NewProbe(0, 0)
	w := engine.NewWindow().Title("demo").Root(probe).Clear(rendering.ColorBlue).Build()
	surface := newCountingSurface(rendering.Size{Width: 320, Height: 240})

	require.NoError(t, w.Draw(surface))

	assert.Equal(t, []rendering.Color{rendering.ColorBlue}, surface.clears)
	drawn, ok := probe.LastDrawn()
	require.True(t, ok)
	assert.Equal(t, core.Context{Width: 320, Height: 240}, drawn)
}

func TestWindow_WithoutRoot(t *testing.T) {
	w := engine.NewWindow().Build()
	surface := newCountingSurface(rendering.Size{Width: 10, Height: 10})

	require.NoError(t, w.Draw(surface))
	require.NoError(t, w.Dispatch(core.MousePressed{}))
	assert.Equal(t, 1, surface.clearCount())
}

func TestWindow_DispatchReachesRoot(t *testing.T) {
	probe := yalemtest.NewProbe(0, 0)
	w := engine.NewWindow().Root(probe).Build()

	ev := core.MousePressed{Button: core.MouseLeft, Position: rendering.Offset{X: 1, Y: 2}}
	require.NoError(t, w.Dispatch(ev))
	assert.Equal(t, []core.Event{ev}, probe.Events)
}

func TestWindow_DrawRecoversPanic(t *testing.T) {
	c := captureErrors(t)
	w := engine.NewWindow().Root(panicky{onDraw: true, value: "boom"}).Build()

	err := w.Draw(newCountingSurface(rendering.Size{Width: 10, Height: 10}))
	require.Error(t, err)

	var perr *errors.PanicError
	require.True(t, stderrors.As(err, &perr))
	assert.Equal(t, "engine.Window.Draw", perr.Op)
	assert.Equal(t, "boom", perr.Value)
	require.Len(t, c.panics, 1)
	assert.Same(t, perr, c.panics[0])
}

func TestWindow_DispatchRecoversRequiredChild(t *testing.T) {
	captureErrors(t)
	value := &errors.RequiredChildError{Widget: "Padding"}
	w := engine.NewWindow().Root(panicky{onDispatch: true, value: value}).Build()

	err := w.Dispatch(core.MousePressed{})
	require.Error(t, err)

	var rerr *errors.RequiredChildError
	require.True(t, stderrors.As(err, &rerr))
	assert.Equal(t, "Padding", rerr.Widget)
}

func TestApp_Windows(t *testing.T) {
	a := engine.NewWindow().Title("a").Build()
	b := engine.NewWindow().Title("b").Build()
	app := engine.New().WithWindow(a).WithWindow(nil).WithWindow(b)

	windows := app.Windows()
	require.Len(t, windows, 2)
	assert.Same(t, a, windows[0])
	assert.Same(t, b, windows[1])

	windows[0] = nil
	assert.Same(t, a, app.Windows()[0])
}
