package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalem-ui/yalem/pkg/rendering"
	"github.com/yalem-ui/yalem/pkg/widgets"
)

func TestTriangle_Path(t *testing.T) {
	tri := widgets.NewTriangle().Build()

	// size = min(100, 90) = 90, radius = 45*53/100 = 23
	path := tri.Path(box(0, 0, 100, 100))
	require.NotNil(t, path)

	sub := path.Subpaths()
	require.Len(t, sub, 1)
	require.Len(t, sub[0], 4)

	assert.InDelta(t, 0, sub[0][0].X, 1e-9)
	assert.InDelta(t, -13, sub[0][0].Y, 1e-9)
	assert.InDelta(t, -19.9186, sub[0][1].X, 1e-3)
	assert.InDelta(t, 21.5, sub[0][1].Y, 1e-9)
	assert.InDelta(t, 19.9186, sub[0][2].X, 1e-3)
	assert.InDelta(t, 21.5, sub[0][2].Y, 1e-9)
	assert.Equal(t, sub[0][0], sub[0][3])
}

func TestTriangle_DrawsStroke(t *testing.T) {
	tri := widgets.NewTriangle().Background(rendering.ColorBlue).Build()
	ops := record(tri, box(0, 0, 100, 100))
	require.Len(t, ops, 1)
	assert.Equal(t, rendering.OpStrokePath, ops[0].Kind)
	assert.Equal(t, rendering.ColorBlue, ops[0].Color)
	assert.Equal(t, 1.0, ops[0].StrokeWidth)
}

func TestTriangle_TooSmall(t *testing.T) {
	tri := widgets.NewTriangle().Build()
	assert.Nil(t, tri.Path(box(0, 0, 100, 10)))
	assert.Empty(t, record(tri, box(0, 0, 100, 10)))
}

func TestTriangle_MeasureFillsBox(t *testing.T) {
	tri := widgets.NewTriangle().Build()
	assert.Equal(t, rendering.Size{Width: 40, Height: 70}, tri.Measure(box(3, 3, 40, 70)))
}
