package rendering

// Surface is the drawing target widgets render onto. It is implemented by
// the platform layer (GPU-backed in production), by the software
// rasterizer in pkg/raster and by the recording surface returned from
// PictureRecorder.BeginRecording.
type Surface interface {
	// Clear fills the entire surface with the given color.
	Clear(color Color)

	// FillPath fills the interior of path with color.
	FillPath(path *Path, color Color)

	// StrokePath draws the outline of path with color and stroke width.
	StrokePath(path *Path, color Color, width float64)

	// DrawText draws text with its anchor at position. The anchor is the
	// left end, center or right end of the baseline depending on align.
	DrawText(text string, position Offset, font Font, color Color, align TextAlign)

	// Size returns the current size of the surface in pixels.
	Size() Size
}
