package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies the failures a codec handle can surface. Every
// failure crosses the boundary as a value; nothing panics across it.
type ErrorCategory int

const (
	// ErrorInitialization indicates the engine could not allocate or set up
	// codec state.
	ErrorInitialization ErrorCategory = iota + 1

	// ErrorArgument indicates an out-of-bounds offset or length on an input
	// or output view. The engine is never touched for such calls.
	ErrorArgument

	// ErrorCorruptStream indicates malformed compressed data. The handle is
	// unusable and must be released.
	ErrorCorruptStream

	// ErrorRelease indicates a call against an already released handle.
	ErrorRelease

	// ErrorEncode indicates the encoder state machine rejected a call.
	// Like a corrupt stream, the handle must be released.
	ErrorEncode
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorInitialization:
		return "initialization"
	case ErrorArgument:
		return "argument"
	case ErrorCorruptStream:
		return "corrupt-stream"
	case ErrorRelease:
		return "use-after-release"
	case ErrorEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// CodecError wraps a boundary failure with its category and the operation
// that produced it.
type CodecError struct {
	Err       error
	Operation string
	Category  ErrorCategory
}

// NewCodecError creates a new CodecError.
func NewCodecError(category ErrorCategory, operation string, err error) *CodecError {
	return &CodecError{
		Err:       err,
		Operation: operation,
		Category:  category,
	}
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// IsRecoverable returns whether the handle stays usable after this error.
// Argument errors leave the codec state untouched; corrupt streams and
// released handles do not recover.
func (e *CodecError) IsRecoverable() bool {
	return e.Category == ErrorArgument
}

// IsCategory checks if err is a CodecError with the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Category == category
	}
	return false
}

// AsCodecError attempts to extract a CodecError from err.
func AsCodecError(err error) *CodecError {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
