package engine

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// ErrUnknownWindow is returned for a WindowID the registry does not hold.
var ErrUnknownWindow = stderrors.New("unknown window")

// WindowID identifies a window inside a Registry.
type WindowID uint64

type registryEntry struct {
	window  *Window
	surface rendering.Surface
}

// Registry holds the live windows of an App together with their surfaces.
//
// Lookups and whole passes run under one mutex, so a redraw and a dispatch
// never overlap, even when the platform calls in from several threads.
// A click callback must therefore not call back into the same Registry;
// it would block on the mutex held by the dispatch that invoked it.
type Registry struct {
	mu      sync.Mutex
	next    WindowID
	entries map[WindowID]*registryEntry
	order   []WindowID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[WindowID]*registryEntry)}
}

// Add registers window with the surface it draws onto and returns its ID.
func (r *Registry) Add(window *Window, surface rendering.Surface) WindowID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	id := r.next
	r.entries[id] = &registryEntry{window: window, surface: surface}
	r.order = append(r.order, id)
	return id
}

// Remove drops a window. It reports whether the window was present.
func (r *Registry) Remove(id WindowID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of live windows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// IDs returns the live window IDs in registration order.
func (r *Registry) IDs() []WindowID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]WindowID, len(r.order))
	copy(out, r.order)
	return out
}

// Window returns the window registered under id.
func (r *Registry) Window(id WindowID) (*Window, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return entry.window, true
}

// Surface returns the surface registered under id.
func (r *Registry) Surface(id WindowID) (rendering.Surface, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return entry.surface, true
}

// SetSurface replaces the surface of a window, typically after a resize.
func (r *Registry) SetSurface(id WindowID, surface rendering.Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("set surface for window %d: %w", id, ErrUnknownWindow)
	}
	entry.surface = surface
	return nil
}

// Redraw draws a window onto its surface.
func (r *Registry) Redraw(id WindowID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("redraw window %d: %w", id, ErrUnknownWindow)
	}
	if entry.surface == nil {
		return nil
	}
	return entry.window.Draw(entry.surface)
}

// Dispatch delivers event to a window.
func (r *Registry) Dispatch(id WindowID, event core.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("dispatch to window %d: %w", id, ErrUnknownWindow)
	}
	return entry.window.Dispatch(event)
}
