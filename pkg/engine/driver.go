package engine

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/errors"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Input is a platform notification consumed by Driver.Run.
type Input interface {
	// Target returns the window the input is addressed to.
	Target() WindowID
}

// Press reports a pointer button press in a window.
type Press struct {
	Window   WindowID
	Button   core.MouseButton
	Position rendering.Offset
}

// Resize reports a new window size. The driver replaces the window's
// surface; the platform follows up with a RedrawRequest.
type Resize struct {
	Window WindowID
	Size   rendering.Size
}

// RedrawRequest asks for a window to be drawn.
type RedrawRequest struct {
	Window WindowID
}

// CloseRequest closes a window.
type CloseRequest struct {
	Window WindowID
}

func (p Press) Target() WindowID         { return p.Window }
func (r Resize) Target() WindowID        { return r.Window }
func (r RedrawRequest) Target() WindowID { return r.Window }
func (c CloseRequest) Target() WindowID  { return c.Window }

// SurfaceFactory creates a surface of the given pixel size.
type SurfaceFactory func(size rendering.Size) rendering.Surface

// Driver is a headless run loop. It delivers one Input at a time to the
// windows of a Registry and blocks while no input is pending.
type Driver struct {
	registry *Registry
	surfaces SurfaceFactory
	logger   *slog.Logger

	// OnFrame, if set, is called after every successful redraw with the
	// window and the surface it was drawn onto.
	OnFrame func(id WindowID, surface rendering.Surface)
}

// NewDriver registers every window of app with a fresh surface of the
// given size and returns the driver with the window IDs in app order.
func NewDriver(app *App, surfaces SurfaceFactory, size rendering.Size) (*Driver, []WindowID) {
	d := &Driver{
		registry: NewRegistry(),
		surfaces: surfaces,
		logger:   slog.Default(),
	}
	var ids []WindowID
	for _, w := range app.Windows() {
		ids = append(ids, d.registry.Add(w, surfaces(size)))
	}
	return d, ids
}

// SetLogger replaces the logger used for per-input diagnostics.
func (d *Driver) SetLogger(logger *slog.Logger) {
	if logger != nil {
		d.logger = logger
	}
}

// Registry returns the registry the driver operates on.
func (d *Driver) Registry() *Registry {
	return d.registry
}

// Run draws every window once, then processes inputs until ctx is done,
// inputs is closed, or the last window is closed. A failing pass is
// logged and does not stop the loop. Run returns ctx.Err() when stopped
// by the context and nil otherwise.
func (d *Driver) Run(ctx context.Context, inputs <-chan Input) error {
	for _, id := range d.registry.IDs() {
		d.redraw(id)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputs:
			if !ok {
				return nil
			}
			d.handle(in)
			if d.registry.Len() == 0 {
				d.logger.Debug("last window closed")
				return nil
			}
		}
	}
}

func (d *Driver) handle(in Input) {
	id := in.Target()
	if _, ok := d.registry.Window(id); !ok {
		d.logger.Debug("input for unknown window", slog.Uint64("window", uint64(id)))
		return
	}

	switch in := in.(type) {
	case Press:
		err := d.registry.Dispatch(id, core.MousePressed{Button: in.Button, Position: in.Position})
		if err != nil {
			d.report("engine.Driver.Press", errors.KindDispatch, err)
			return
		}
		d.redraw(id)
	case Resize:
		if err := d.registry.SetSurface(id, d.surfaces(in.Size)); err != nil {
			d.report("engine.Driver.Resize", errors.KindRender, err)
		}
	case RedrawRequest:
		d.redraw(id)
	case CloseRequest:
		d.registry.Remove(id)
	}
}

func (d *Driver) redraw(id WindowID) {
	if err := d.registry.Redraw(id); err != nil {
		d.report("engine.Driver.Redraw", errors.KindRender, err)
		return
	}
	if d.OnFrame != nil {
		if surface, ok := d.registry.Surface(id); ok {
			d.OnFrame(id, surface)
		}
	}
}

func (d *Driver) report(op string, kind errors.ErrorKind, err error) {
	var perr *errors.PanicError
	if stderrors.As(err, &perr) {
		// Already reported by the window when it recovered.
		d.logger.Debug("pass aborted", slog.String("op", op), slog.Any("err", err))
		return
	}
	errors.Report(&errors.YalemError{Op: op, Kind: kind, Err: err})
}
