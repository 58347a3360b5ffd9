// Package errors provides structured error handling for the pancake engine
// and its renderers.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrInvalidSpecification is matched by every error produced when a shape,
// fill, border or shadow specification is rejected.
var ErrInvalidSpecification = stderrors.New("invalid specification")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindSpec indicates a rejected specification.
	KindSpec
	// KindRender indicates a backend rendering error.
	KindRender
	// KindConfig indicates a configuration or scene file error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindSpec:
		return "spec"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error reported by pancake.
type Error struct {
	// Op is the operation that failed (e.g., "raster.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// SpecError identifies the field of a specification that failed validation.
type SpecError struct {
	// Op is the engine entry point that rejected the input (e.g., "pancake.ResolveBorder").
	Op string
	// Field is the dotted name of the offending field (e.g., "Border.DashPattern").
	Field string
	// Value is the rejected value.
	Value any
	// Reason says what was wrong with Value.
	Reason string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("%s: %s: %s = %v: %s", e.Op, ErrInvalidSpecification, e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidSpecification.
func (e *SpecError) Is(target error) bool {
	return target == ErrInvalidSpecification
}

// InvalidSpec builds a SpecError.
func InvalidSpec(op, field string, value any, reason string) *SpecError {
	return &SpecError{Op: op, Field: field, Value: value, Reason: reason}
}

// IsInvalidSpec reports whether err is or wraps a rejected specification.
func IsInvalidSpec(err error) bool {
	return stderrors.Is(err, ErrInvalidSpecification)
}

// FieldOf returns the offending field name carried by err, or "" if err does
// not wrap a SpecError.
func FieldOf(err error) string {
	var specErr *SpecError
	if stderrors.As(err, &specErr) {
		return specErr.Field
	}
	return ""
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "raster.Render").
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

// ErrorHandler receives errors reported through Report and ReportPanic.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
