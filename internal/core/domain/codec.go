// Package domain defines the value types exchanged across the codec boundary.
package domain

// Status reports how a streaming codec call ended. Every call returns exactly
// one status; callers drive the stream forward based on it.
type Status uint8

const (
	// StatusNeedsMoreInput means the codec consumed everything useful from the
	// input slice and cannot make further progress without more data.
	StatusNeedsMoreInput Status = iota + 1

	// StatusHasMoreOutput means the output slice filled up before all pending
	// output was drained. The caller must call again with fresh output space.
	StatusHasMoreOutput

	// StatusFinished means the logical end of the stream was reached.
	// Trailing input bytes, if any, are the caller's concern.
	StatusFinished

	// StatusError means the stream is malformed. The handle is unusable and
	// must be released.
	StatusError
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNeedsMoreInput:
		return "needs-more-input"
	case StatusHasMoreOutput:
		return "has-more-output"
	case StatusFinished:
		return "finished"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// DecodeResult is the composite value returned by every decompress call.
// It is constructed once per call and never mutated in place.
type DecodeResult struct {
	// BytesConsumed is the number of input bytes the decoder took from the
	// input slice. Consumed bytes must not be supplied again.
	BytesConsumed int

	// BytesProduced is the number of decompressed bytes written into the
	// output slice, starting at its beginning.
	BytesProduced int

	// Status tells the caller how to proceed.
	Status Status
}

// EncodeResult is the composite value returned by every compress call.
type EncodeResult struct {
	BytesConsumed int
	BytesProduced int
	Status        Status
}

// Operation selects the encoder behavior for one compress call.
type Operation uint8

const (
	// OperationProcess feeds input and emits output opportunistically.
	OperationProcess Operation = iota + 1

	// OperationFlush forces out all output decodable from the input so far.
	// Flushing has a negative impact on compression density.
	OperationFlush

	// OperationFinish finalizes the stream. Once a finish operation reports
	// StatusFinished no further input is accepted.
	OperationFinish
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	switch o {
	case OperationProcess:
		return "process"
	case OperationFlush:
		return "flush"
	case OperationFinish:
		return "finish"
	default:
		return "unknown"
	}
}
