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

func TestExpand_ChildContext(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Direction
		ctx       core.Context
		want      core.Context
	}{
		{"horizontal", core.Horizontal, box(20, 0, 200, 100), box(20, 0, 180, 40)},
		{"vertical", core.Vertical, box(0, 10, 200, 100), box(0, 10, 30, 90)},
		{"both", core.Both, box(5, 6, 70, 80), box(5, 6, 70, 80)},
		{"horizontal past the edge", core.Horizontal, box(300, 0, 200, 100), box(300, 0, 0, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := yalemtest.NewProbe(30, 40)
			e := widgets.NewExpand().Direction(tt.direction).Child(probe).Build()

			assert.Equal(t, tt.want, e.ChildContext(tt.ctx))
			assert.Equal(t, tt.want.Size(), e.Measure(tt.ctx))

			record(e, tt.ctx)
			drawn, ok := probe.LastDrawn()
			require.True(t, ok)
			assert.Equal(t, tt.want, drawn)
		})
	}
}

func TestExpand_HorizontalKeepsChildHeight(t *testing.T) {
	text := widgets.NewText("Expanded").Build()
	e := widgets.NewExpand().Child(text).Build()

	size := e.Measure(box(0, 0, 300, 300))
	assert.Equal(t, rendering.Size{Width: 300, Height: widgets.CharHeight}, size)
}

func TestExpand_WithoutChild(t *testing.T) {
	e := widgets.NewExpand().Direction(core.Vertical).Build()

	assert.Equal(t, rendering.Size{Width: 120, Height: 80}, e.Measure(box(10, 10, 120, 80)))
	assert.Empty(t, record(e, box(10, 10, 120, 80)))
	assert.NotPanics(t, func() { e.Dispatch(press(0, 0)) })
}
