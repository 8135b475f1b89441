package testing

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Dispatch delivers event to the mounted window without redrawing.
func (t *Tester) Dispatch(event core.Event) error {
	if t.window == nil {
		return nil
	}
	return t.window.Dispatch(event)
}

// PressAt dispatches a press of button at pos, then redraws. This is the
// order the platform loop uses, so the frame recorded afterwards reflects
// any state the press changed.
func (t *Tester) PressAt(button core.MouseButton, pos rendering.Offset) error {
	if err := t.Dispatch(core.MousePressed{Button: button, Position: pos}); err != nil {
		return err
	}
	return t.Redraw()
}

// TapAt simulates a left press at pos followed by a redraw.
func (t *Tester) TapAt(pos rendering.Offset) error {
	return t.PressAt(core.MouseLeft, pos)
}

// TapRect taps the center of r.
func (t *Tester) TapRect(r rendering.Rect) error {
	return t.TapAt(r.Center())
}
