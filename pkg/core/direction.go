package core

import "fmt"

// Direction selects the axis or axes a directional container affects.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Both
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// AffectsX reports whether d includes the horizontal axis.
func (d Direction) AffectsX() bool {
	return d == Horizontal || d == Both
}

// AffectsY reports whether d includes the vertical axis.
func (d Direction) AffectsY() bool {
	return d == Vertical || d == Both
}
