// Package errors provides structured error handling for yalem.
//
// Layout and drawing have no recoverable error taxonomy: malformed widget
// configuration is a programming error and panics. The types here carry
// those panics, and the failures of the surrounding tooling (config files,
// surfaces), to a single reporting point.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindLayout indicates a measure pass failure.
	KindLayout
	// KindRender indicates a draw pass or surface failure.
	KindRender
	// KindDispatch indicates an event dispatch failure.
	KindDispatch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindRender:
		return "render"
	case KindDispatch:
		return "dispatch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// YalemError represents a structured error.
type YalemError struct {
	// Op is the operation that failed (e.g., "config.Resolve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *YalemError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *YalemError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.Window.Draw").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, so callers
// can match a RequiredChildError with errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RequiredChildError is the panic value raised when a container that needs
// a child is built without one.
type RequiredChildError struct {
	// Widget is the type name of the misconfigured container.
	Widget string
	// Field names the missing piece; "child" unless stated otherwise.
	Field string
}

func (e *RequiredChildError) Error() string {
	field := e.Field
	if field == "" {
		field = "child"
	}
	return fmt.Sprintf("%s requires a %s", e.Widget, field)
}

// ErrorHandler receives errors reported by yalem.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *YalemError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
