package engine_test

import (
	"sync"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// countingSurface records clears and text draws.
type countingSurface struct {
	mu     sync.Mutex
	size   rendering.Size
	clears []rendering.Color
	texts  []string
}

func newCountingSurface(size rendering.Size) *countingSurface {
	return &countingSurface{size: size}
}

func (s *countingSurface) Clear(color rendering.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears = append(s.clears, color)
}

func (s *countingSurface) FillPath(*rendering.Path, rendering.Color)            {}
func (s *countingSurface) StrokePath(*rendering.Path, rendering.Color, float64) {}

func (s *countingSurface) DrawText(text string, _ rendering.Offset, _ rendering.Font, _ rendering.Color, _ rendering.TextAlign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
}

func (s *countingSurface) Size() rendering.Size { return s.size }

func (s *countingSurface) clearCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clears)
}

// panicky panics in the pass selected by the flags.
type panicky struct {
	onDraw     bool
	onDispatch bool
	value      any
}

func (p panicky) Measure(core.Context) rendering.Size { return rendering.Size{} }

func (p panicky) Draw(rendering.Surface, core.Context) {
	if p.onDraw {
		panic(p.value)
	}
}

func (p panicky) Dispatch(core.Event) {
	if p.onDispatch {
		panic(p.value)
	}
}
