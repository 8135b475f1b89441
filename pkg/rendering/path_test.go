package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectPath(t *testing.T) {
	p := RectPath(RectFromLTWH(1, 2, 3, 4))

	require.Len(t, p.Commands, 5)
	assert.Equal(t, PathOpMoveTo, p.Commands[0].Op)
	assert.Equal(t, PathOpClose, p.Commands[4].Op)
	assert.Equal(t, RectFromLTWH(1, 2, 3, 4), p.Bounds())

	sub := p.Subpaths()
	require.Len(t, sub, 1)
	assert.Equal(t, []Offset{{1, 2}, {4, 2}, {4, 6}, {1, 6}, {1, 2}}, sub[0])
}

func TestPath_Subpaths(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(5, 5)
	p.LineTo(6, 6)
	p.Close()

	sub := p.Subpaths()
	require.Len(t, sub, 2)
	assert.Equal(t, []Offset{{0, 0}, {10, 0}}, sub[0])
	assert.Equal(t, []Offset{{5, 5}, {6, 6}, {5, 5}}, sub[1])
}

func TestPath_Empty(t *testing.T) {
	var nilPath *Path
	assert.True(t, nilPath.IsEmpty())
	assert.True(t, NewPath().IsEmpty())
	assert.Equal(t, Rect{}, NewPath().Bounds())
	assert.Nil(t, NewPath().Subpaths())
	assert.Equal(t, "line_to", PathOpLineTo.String())
}
