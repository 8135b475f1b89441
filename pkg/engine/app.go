package engine

// App is an ordered collection of windows with independent lifecycles.
type App struct {
	windows []*Window
}

// New creates an App with no windows.
func New() *App {
	return &App{}
}

// WithWindow appends a window and returns the App for chaining.
func (a *App) WithWindow(window *Window) *App {
	if window != nil {
		a.windows = append(a.windows, window)
	}
	return a
}

// Windows returns the windows in insertion order.
func (a *App) Windows() []*Window {
	out := make([]*Window, len(a.windows))
	copy(out, a.windows)
	return out
}
