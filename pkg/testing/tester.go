package testing

import (
	"sync"
	"testing"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/engine"
	"github.com/yalem-ui/yalem/pkg/errors"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
)

// Tester drives a widget tree through an engine.Window onto a recording
// surface.
type Tester struct {
	window   *engine.Window
	size     rendering.Size
	recorder *rendering.PictureRecorder
	last     *rendering.DisplayList

	capture     *captureHandler
	prevHandler errors.ErrorHandler
}

// NewTester creates a tester with the default surface size. Reported
// errors and panics are captured by the tester instead of being logged.
// Call Cleanup when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	t := &Tester{
		size:        rendering.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		recorder:    &rendering.PictureRecorder{},
		last:        &rendering.DisplayList{},
		capture:     &captureHandler{},
		prevHandler: errors.DefaultHandler,
	}
	errors.SetHandler(t.capture)
	return t
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the global error handler.
func (t *Tester) Cleanup() {
	errors.SetHandler(t.prevHandler)
}

// SetSize sets the surface size used by subsequent draws.
func (t *Tester) SetSize(size rendering.Size) {
	t.size = size
}

// Size returns the surface size.
func (t *Tester) Size() rendering.Size {
	return t.size
}

// Pump mounts widget as the root of a fresh window and draws one frame.
func (t *Tester) Pump(widget core.Widget) error {
	t.window = engine.NewWindow().Title("test").Root(widget).Build()
	return t.Redraw()
}

// PumpWindow mounts an existing window and draws one frame.
func (t *Tester) PumpWindow(window *engine.Window) error {
	t.window = window
	return t.Redraw()
}

// Redraw draws the current window again. The recorded display list is
// replaced even when the pass fails.
func (t *Tester) Redraw() error {
	if t.window == nil {
		t.window = engine.NewWindow().Title("test").Build()
	}
	surface := t.recorder.BeginRecording(t.size)
	err := t.window.Draw(surface)
	t.last = t.recorder.EndRecording()
	return err
}

// Window returns the mounted window.
func (t *Tester) Window() *engine.Window {
	return t.window
}

// RootContext returns the context the root widget is drawn with.
func (t *Tester) RootContext() core.Context {
	return core.ContextFromSize(t.size)
}

// DisplayList returns the display list recorded by the last draw.
func (t *Tester) DisplayList() *rendering.DisplayList {
	return t.last
}

// Ops returns the operations recorded by the last draw.
func (t *Tester) Ops() []rendering.Op {
	return t.last.Ops()
}

// OpsOfKind returns the recorded operations of one kind, in draw order.
func (t *Tester) OpsOfKind(kind rendering.OpKind) []rendering.Op {
	var out []rendering.Op
	for _, op := range t.last.Ops() {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings drawn by the last draw, in draw order.
func (t *Tester) Texts() []string {
	var out []string
	for _, op := range t.OpsOfKind(rendering.OpText) {
		out = append(out, op.Text)
	}
	return out
}

// Panics returns the panics reported since the tester was created.
func (t *Tester) Panics() []*errors.PanicError {
	return t.capture.panics()
}

// Errors returns the errors reported since the tester was created.
func (t *Tester) Errors() []*errors.YalemError {
	return t.capture.errs()
}

type captureHandler struct {
	mu        sync.Mutex
	errList   []*errors.YalemError
	panicList []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.YalemError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errList = append(h.errList, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panicList = append(h.panicList, err)
}

func (h *captureHandler) errs() []*errors.YalemError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.YalemError(nil), h.errList...)
}

func (h *captureHandler) panics() []*errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PanicError(nil), h.panicList...)
}
