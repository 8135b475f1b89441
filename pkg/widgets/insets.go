package widgets

// EdgeInsets holds the space consumed on each side of a box.
type EdgeInsets struct {
	Left, Right, Top, Bottom float64
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Right: v, Top: v, Bottom: v}
}

// EdgeInsetsSymmetric returns insets with horizontal on left and right and
// vertical on top and bottom.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Horizontal returns the total horizontal inset.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical inset.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}
