package widgets

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/errors"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Stateful regenerates its subtree from caller-owned state on every call.
//
// Measure, Draw and Dispatch each call the rebuild function with the state
// handle and forward to the subtree it returns. Nothing is cached: every
// pass pays for a full rebuild, and a subtree must not be retained across
// calls. Interactive widgets inside the subtree, such as a Button, are
// recreated each time, so their hit rectangle only exists within the pass
// that drew them.
//
// The state handle belongs to the caller. Mutate it from outside the tree
// (for example from a Button callback) and the next pass reflects it.
type Stateful[S any] struct {
	state   *S
	rebuild func(state *S) core.Widget
}

// StatefulBuilder configures a Stateful.
type StatefulBuilder[S any] struct {
	state   *S
	rebuild func(state *S) core.Widget
}

// NewStateful starts a Stateful bound to state. state may be nil when the
// rebuild function reads nothing.
func NewStateful[S any](state *S) *StatefulBuilder[S] {
	return &StatefulBuilder[S]{state: state}
}

// Rebuild sets the function producing the subtree. It should depend only
// on its argument.
func (b *StatefulBuilder[S]) Rebuild(fn func(state *S) core.Widget) *StatefulBuilder[S] {
	b.rebuild = fn
	return b
}

// Build returns the configured Stateful. It panics with a
// *errors.RequiredChildError if no rebuild function was set.
func (b *StatefulBuilder[S]) Build() *Stateful[S] {
	if b.rebuild == nil {
		panic(&errors.RequiredChildError{Widget: "Stateful", Field: "rebuild function"})
	}
	return &Stateful[S]{state: b.state, rebuild: b.rebuild}
}

// State returns the bound state handle.
func (s *Stateful[S]) State() *S {
	return s.state
}

func (s *Stateful[S]) subtree() core.Widget {
	return s.rebuild(s.state)
}

func (s *Stateful[S]) Measure(ctx core.Context) rendering.Size {
	return core.MeasureChild(s.subtree(), ctx)
}

func (s *Stateful[S]) Draw(surface rendering.Surface, ctx core.Context) {
	core.DrawChild(s.subtree(), surface, ctx)
}

func (s *Stateful[S]) Dispatch(event core.Event) {
	core.DispatchChild(s.subtree(), event)
}
