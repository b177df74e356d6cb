// Package reporterrors provides structured error types for oasreport.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the two fatal failure
// modes of rendering:
//
//   - EncodeError: the assembled report value could not be serialized
//   - SinkError: the output sink could not be written to or closed
//
// # Usage with errors.Is
//
//	err := report.RenderJSON(diff, sink)
//	if errors.Is(err, reporterrors.ErrSink) {
//	    // The sink failed; the document may be partially written
//	}
//
// # Usage with errors.As
//
//	var sinkErr *reporterrors.SinkError
//	if errors.As(err, &sinkErr) {
//	    log.Printf("sink %s failed: %v", sinkErr.Op, sinkErr.Cause)
//	}
package reporterrors

import "errors"

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrEncode indicates a serialization failure.
	ErrEncode = errors.New("encode error")

	// ErrSink indicates an output sink failure.
	ErrSink = errors.New("sink error")
)

// EncodeError represents a failure to serialize the assembled report value.
// This typically means an unsupported payload was embedded verbatim from an
// oldSchema/newSchema object.
type EncodeError struct {
	// Format is the render format that failed, e.g. "json" or "yaml"
	Format string
	// Message describes the serialization failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *EncodeError) Error() string {
	msg := "encode error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

// SinkError represents a failure to write to or close the output sink.
type SinkError struct {
	// Op is the sink operation that failed: "write" or "close"
	Op string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SinkError) Error() string {
	msg := "sink error"
	if e.Op != "" {
		msg += " during " + e.Op
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SinkError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SinkError) Is(target error) bool {
	return target == ErrSink
}
