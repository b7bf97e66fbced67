// Package errors provides structured error handling for expanding containers.
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
	// KindInvalidArgument indicates a rejected input such as a negative
	// duration or an orientation outside Horizontal/Vertical.
	KindInvalidArgument
	// KindDecode indicates a saved-state blob that could not be decoded.
	KindDecode
	// KindConfig indicates an attribute file that could not be read or parsed.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindDecode:
		return "decode"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinels for use with errors.Is. They match any ExpandError of the same kind.
var (
	ErrInvalidArgument = &ExpandError{Kind: KindInvalidArgument}
	ErrDecode          = &ExpandError{Kind: KindDecode}
	ErrConfig          = &ExpandError{Kind: KindConfig}
)

// ExpandError represents a structured error raised by this module.
type ExpandError struct {
	// Op is the operation that failed (e.g., "expanding.SetDuration").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error was reported. Zero until Report is called.
	Timestamp time.Time
}

func (e *ExpandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ExpandError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a kind sentinel matching e.
func (e *ExpandError) Is(target error) bool {
	t, ok := target.(*ExpandError)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// InvalidArgument builds a KindInvalidArgument error for op.
func InvalidArgument(op, format string, args ...any) *ExpandError {
	return &ExpandError{Op: op, Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.StepTickers").
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

// ErrorHandler receives errors that cannot be returned to a caller, such as
// panics inside frame callbacks.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *ExpandError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
