package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYalemErrorString(t *testing.T) {
	err := &YalemError{
		Op:   "config.Resolve",
		Kind: KindConfig,
		Err:  fmt.Errorf("bad color %q", "#zz"),
	}
	assert.Equal(t, `config.Resolve [config]: bad color "#zz"`, err.Error())
}

func TestYalemErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := fmt.Errorf("outer: %w", &YalemError{Op: "op", Kind: KindRender, Err: inner})
	assert.ErrorIs(t, err, inner)

	var yerr *YalemError
	require.ErrorAs(t, err, &yerr)
	assert.Equal(t, KindRender, yerr.Kind)
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindLayout, "layout"},
		{KindRender, "render"},
		{KindDispatch, "dispatch"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	assert.Equal(t, "panic: test panic", err.Error())

	err.Op = "app.Window.Draw"
	assert.Equal(t, "panic in app.Window.Draw: test panic", err.Error())
}

func TestPanicErrorUnwrapsRequiredChild(t *testing.T) {
	err := &PanicError{Value: &RequiredChildError{Widget: "Padding"}}

	var rc *RequiredChildError
	require.ErrorAs(t, err, &rc)
	assert.Equal(t, "Padding", rc.Widget)
	assert.Equal(t, "Padding requires a child", rc.Error())

	assert.Nil(t, (&PanicError{Value: 42}).Unwrap())
}

func TestRequiredChildErrorField(t *testing.T) {
	err := &RequiredChildError{Widget: "Stateful", Field: "rebuild function"}
	assert.Equal(t, "Stateful requires a rebuild function", err.Error())
}

func TestReport(t *testing.T) {
	var captured *YalemError
	withHandler(t, &testHandler{onError: func(err *YalemError) { captured = err }})

	Report(&YalemError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("x")})

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero(), "expected Timestamp to be set")

	Report(nil)
}

func TestReportPanic(t *testing.T) {
	var captured *PanicError
	withHandler(t, &testHandler{onPanic: func(err *PanicError) { captured = err }})

	ReportPanic(&PanicError{Value: "test panic value"})

	require.NotNil(t, captured)
	assert.Equal(t, "test panic value", captured.Value)
	assert.False(t, captured.Timestamp.IsZero())
}

func TestRecoverInto(t *testing.T) {
	reported := 0
	withHandler(t, &testHandler{onPanic: func(*PanicError) { reported++ }})

	run := func() (err error) {
		defer RecoverInto("test.pass", &err)
		panic(&RequiredChildError{Widget: "Center"})
	}
	err := run()

	var perr *PanicError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "test.pass", perr.Op)
	assert.Contains(t, perr.StackTrace, "TestRecoverInto")
	var rc *RequiredChildError
	assert.ErrorAs(t, err, &rc)
	assert.Equal(t, 1, reported)

	clean := func() (err error) {
		defer RecoverInto("test.clean", &err)
		return nil
	}
	assert.NoError(t, clean())
	assert.Equal(t, 1, reported)
}

func TestSetHandlerNil(t *testing.T) {
	old := DefaultHandler
	t.Cleanup(func() { SetHandler(old) })

	SetHandler(nil)
	require.NotNil(t, DefaultHandler)
	assert.IsType(t, &LogHandler{}, DefaultHandler)
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{
		Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
		Verbose: true,
	}

	h.HandleError(&YalemError{Op: "config.Load", Kind: KindConfig, Err: stderrors.New("missing")})
	h.HandlePanic(&PanicError{Op: "app.Window.Draw", Value: "boom", StackTrace: "main.main"})
	h.HandleError(nil)
	h.HandlePanic(nil)

	out := buf.String()
	assert.Contains(t, out, "op=config.Load")
	assert.Contains(t, out, "kind=config")
	assert.Contains(t, out, "err=missing")
	assert.Contains(t, out, "op=app.Window.Draw")
	assert.Contains(t, out, "value=boom")
	assert.Contains(t, out, "stack=main.main")
}

func withHandler(t *testing.T, h ErrorHandler) {
	t.Helper()
	old := DefaultHandler
	SetHandler(h)
	t.Cleanup(func() { SetHandler(old) })
}

type testHandler struct {
	onError func(*YalemError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *YalemError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
