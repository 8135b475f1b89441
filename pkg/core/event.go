package core

import (
	"fmt"

	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Event is an input event delivered through Widget.Dispatch.
type Event interface {
	isEvent()
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	case MouseOther:
		return "other"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// MousePressed is sent when a pointer button goes down. Position is in
// window pixels, the same space widget contexts use.
type MousePressed struct {
	Button   MouseButton
	Position rendering.Offset
}

func (MousePressed) isEvent() {}

// PlatformEvent carries any other platform input through the tree
// unchanged. No built-in widget reacts to it.
type PlatformEvent struct {
	Name    string
	Payload any
}

func (PlatformEvent) isEvent() {}
