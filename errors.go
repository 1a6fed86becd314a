package sandbox

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

var (
	// ErrTerminated reports a call forcibly aborted by its deadline or by
	// Script.Interrupt. Match with errors.Is.
	ErrTerminated = errors.New("execution terminated")
	// ErrClosed reports an operation on a closed Script.
	ErrClosed = errors.New("script is closed")
)

// InitError reports a failure to load script source: a syntax error, a throw
// during top-level evaluation, or an unreadable file.
type InitError struct {
	Err error
}

func (e *InitError) Error() string { return "script init: " + e.Err.Error() }

func (e *InitError) Unwrap() error { return e.Err }

// EncodeError reports a host value that cannot be represented as JSON.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "encode: " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports a JS value whose shape does not match the host type it
// is being decoded into.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// FunctionNotFoundError reports a call to a name that is not a callable
// top-level binding of the context.
type FunctionNotFoundError struct {
	Name string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("%q is not a function", e.Name)
}

// RuntimeError is an uncaught JavaScript exception. Value holds the engine's
// exception text verbatim, e.g. "TypeError: x is not a function". A call
// aborted by its timeout yields a RuntimeError wrapping ErrTerminated, with
// the fixed text "Error: execution terminated".
type RuntimeError struct {
	Value string
	cause error
}

func (e *RuntimeError) Error() string { return "Uncaught " + e.Value }

func (e *RuntimeError) Unwrap() error { return e.cause }

// jsError classifies an engine error into the package taxonomy. Interrupted
// runs become RuntimeError wrapping the interrupt reason, uncaught exceptions
// become RuntimeError carrying the exception text, anything else passes
// through unchanged.
func jsError(err error) error {
	if err == nil {
		return nil
	}
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		if cause, ok := interrupted.Value().(error); ok && errors.Is(cause, ErrTerminated) {
			return &RuntimeError{Value: "Error: " + ErrTerminated.Error(), cause: ErrTerminated}
		}
		return &RuntimeError{Value: fmt.Sprintf("Error: %v", interrupted.Value()), cause: err}
	}
	var exception *goja.Exception
	if errors.As(err, &exception) {
		return &RuntimeError{Value: exception.Value().String(), cause: err}
	}
	var syntax *goja.CompilerSyntaxError
	if errors.As(err, &syntax) {
		return &InitError{Err: err}
	}
	return err
}
