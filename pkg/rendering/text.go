package rendering

import "fmt"

// defaultFontSize is used when no font size is specified.
const defaultFontSize = 12

// TextAlign selects which point of a text run sits on the draw position.
type TextAlign int

const (
	// AlignLeft anchors the start of the text at the position.
	AlignLeft TextAlign = iota
	// AlignCenter anchors the horizontal middle of the text at the position.
	AlignCenter
	// AlignRight anchors the end of the text at the position.
	AlignRight
)

// String returns a human-readable representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// Anchor returns the x coordinate where a run of the given advance width
// starts when its anchor is placed at x.
func (a TextAlign) Anchor(x, advance float64) float64 {
	switch a {
	case AlignCenter:
		return x - advance/2
	case AlignRight:
		return x - advance
	default:
		return x
	}
}

// Font describes the face used for a text run.
type Font struct {
	Family string
	Size   float64
}

// DefaultFont returns the font used when a widget does not specify one.
func DefaultFont() Font {
	return Font{Size: defaultFontSize}
}
