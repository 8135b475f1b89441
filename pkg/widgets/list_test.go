package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
	yalemtest "github.com/yalem-ui/yalem/pkg/testing"
	"github.com/yalem-ui/yalem/pkg/widgets"
)

func probes(heights ...float64) ([]*yalemtest.Probe, []core.Widget) {
	ps := make([]*yalemtest.Probe, len(heights))
	ws := make([]core.Widget, len(heights))
	for i, h := range heights {
		ps[i] = yalemtest.NewProbe(10, h)
		ws[i] = ps[i]
	}
	return ps, ws
}

func TestList_StacksChildren(t *testing.T) {
	ps, ws := probes(20, 30, 40)
	l := widgets.Column(ws...)
	ctx := box(0, 0, 100, 200)

	record(l, ctx)

	want := []core.Context{
		box(0, 0, 100, 200),
		box(0, 20, 100, 180),
		box(0, 50, 100, 150),
	}
	for i, p := range ps {
		drawn, ok := p.LastDrawn()
		require.True(t, ok, "child %d not drawn", i)
		assert.Equal(t, want[i], drawn, "child %d", i)
	}
	assert.Equal(t, want, l.ChildContexts(ctx))
	assert.Equal(t, rendering.Size{Width: 100, Height: 90}, l.Measure(ctx))
}

func TestList_MeasureReportsFinalOffset(t *testing.T) {
	_, ws := probes(20, 30)
	l := widgets.NewList().Children(ws...).Build()
	assert.Equal(t, rendering.Size{Width: 100, Height: 90}, l.Measure(box(0, 40, 100, 200)))

	_, ws = probes(20, 30, 40)
	assert.Equal(t, rendering.Size{Width: 100, Height: 100}, widgets.Column(ws...).Measure(box(0, 10, 100, 200)))
}

func TestList_LaterChildrenGetLessRoom(t *testing.T) {
	_, ws := probes(150, 100, 10)
	l := widgets.Column(ws...)

	got := l.ChildContexts(box(0, 0, 100, 200))
	require.Len(t, got, 3)
	assert.Equal(t, 50.0, got[1].Height)
	assert.Equal(t, 250.0, got[2].Y)
	assert.Equal(t, 0.0, got[2].Height)
}

func TestList_MeasureIsIdempotent(t *testing.T) {
	_, ws := probes(20, 30, 40)
	l := widgets.Column(ws...)
	ctx := box(5, 5, 100, 200)
	assert.Equal(t, l.Measure(ctx), l.Measure(ctx))
}

func TestList_DispatchReachesEveryChild(t *testing.T) {
	ps, ws := probes(20, 30, 40)
	l := widgets.Column(ws...)

	l.Dispatch(press(1, 1))
	for i, p := range ps {
		assert.Len(t, p.Events, 1, "child %d", i)
	}
}

func TestList_IgnoresNilChildren(t *testing.T) {
	l := widgets.NewList().Child(nil).Child(yalemtest.NewProbe(1, 1)).Children(nil).Build()
	assert.Equal(t, 1, l.Len())
}

func TestList_Empty(t *testing.T) {
	l := widgets.NewList().Build()
	assert.Equal(t, rendering.Size{Width: 100}, l.Measure(box(0, 0, 100, 100)))
	assert.Equal(t, rendering.Size{Width: 100, Height: 30}, l.Measure(box(0, 30, 100, 100)))
	assert.Empty(t, record(l, box(0, 0, 100, 100)))
}
