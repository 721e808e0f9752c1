// Package errors provides structured error reporting for the widget core.
//
// Failures fall into three tiers. Recoverable misuse and style/data errors are
// reported through [Report] and the operation carries on. Programming contract
// violations panic with a [ContractError] via [Contract] and are never
// recovered by the core.
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
	// KindUsage indicates a recoverable misuse of the widget API.
	KindUsage
	// KindStyle indicates a style declaration that could not be applied.
	KindStyle
	// KindContract indicates a programming contract violation.
	KindContract
	// KindResource indicates an image or font that could not be loaded.
	KindResource
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindStyle:
		return "style"
	case KindContract:
		return "contract"
	case KindResource:
		return "resource"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Severity is the log level an error is reported at.
type Severity int

const (
	// SeverityError is the default severity.
	SeverityError Severity = iota
	// SeverityWarning marks harmless misuse such as adding a child twice.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// UIError represents a structured, recoverable error.
type UIError struct {
	// Op is the operation that failed (e.g., "widget.AddChild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Severity is the level the error is logged at.
	Severity Severity
	// Widget is the id of the widget involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dispatch.Poll").
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

// ContractError is the panic value of a violated programming contract,
// such as assigning a layout twice or inserting at an out-of-range index.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violated in %s: %s", e.Op, e.Msg)
}

// Contract panics with a ContractError. It marks states that are bugs in the
// caller, not conditions to be handled at runtime.
func Contract(op, format string, args ...any) {
	panic(&ContractError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// ErrorHandler receives errors reported by the widget core.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
