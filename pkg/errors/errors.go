// Package errors provides structured error handling for the animator.
//
// Most invariant violations in the editor core are defended against with
// clamping and idempotent guards. The errors that do escape (definition
// compilation, configuration, property application on a bound target) are
// represented as [AnimatorError] values and routed to a pluggable
// [ErrorHandler].
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
	// KindDefinition indicates an animation definition that failed to compile.
	KindDefinition
	// KindBinding indicates a failure applying an animated value to a target.
	KindBinding
	// KindInput indicates malformed input from the host (pointer events, commands).
	KindInput
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindDefinition:
		return "definition"
	case KindBinding:
		return "binding"
	case KindInput:
		return "input"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// AnimatorError represents a structured error reported by the animator.
type AnimatorError struct {
	// Op is the operation that failed (e.g., "animation.Controller.apply").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Property is the animated property involved, if any.
	Property string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AnimatorError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s [%s] property=%s: %v", e.Op, e.Kind, e.Property, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AnimatorError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "timeline.Widget.HandlePointer").
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

// ErrorHandler receives errors reported by the animator.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *AnimatorError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
