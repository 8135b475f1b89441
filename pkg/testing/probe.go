package testing

import (
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Probe is a leaf widget with a fixed size that records every call it
// receives. Recording makes Measure impure, which is the point: tests use
// it to see exactly which contexts a container derives.
type Probe struct {
	size rendering.Size

	Measured []core.Context
	Drawn    []core.Context
	Events   []core.Event
}

// NewProbe creates a probe that measures as width x height.
func NewProbe(width, height float64) *Probe {
	return &Probe{size: rendering.Size{Width: width, Height: height}}
}

func (p *Probe) Measure(ctx core.Context) rendering.Size {
	p.Measured = append(p.Measured, ctx)
	return p.size
}

func (p *Probe) Draw(_ rendering.Surface, ctx core.Context) {
	p.Drawn = append(p.Drawn, ctx)
}

func (p *Probe) Dispatch(event core.Event) {
	p.Events = append(p.Events, event)
}

// LastDrawn returns the context of the most recent Draw, or false if the
// probe was never drawn.
func (p *Probe) LastDrawn() (core.Context, bool) {
	if len(p.Drawn) == 0 {
		return core.Context{}, false
	}
	return p.Drawn[len(p.Drawn)-1], true
}

// Reset forgets all recorded calls.
func (p *Probe) Reset() {
	p.Measured = nil
	p.Drawn = nil
	p.Events = nil
}
