package sandbox

import (
	"os"
	"time"

	"github.com/dop251/goja"
	"github.com/spf13/cast"
)

// Script owns one isolated, stateful JavaScript execution context. The source
// is evaluated once at construction; its top-level function and variable
// declarations become the context's persistent state, and mutations performed
// by one call are visible to the next.
//
// A Script can only be used by a single goroutine at a time: calls are
// synchronous and the context is not safe for concurrent invocation. The only
// operation safe to call from another goroutine is Interrupt.
type Script struct {
	runtime *goja.Runtime
	source  string
}

// FromString creates a Script from JS source text. The source is parsed and
// evaluated once; a syntax error or a throw during top-level evaluation
// returns an InitError.
func FromString(source string) (*Script, error) {
	program, err := goja.Compile("sandbox", source, false)
	if err != nil {
		return nil, &InitError{Err: err}
	}
	runtime := goja.New()
	EnableConsole(runtime)
	if _, err = runtime.RunProgram(program); err != nil {
		return nil, &InitError{Err: jsError(err)}
	}
	return &Script{runtime: runtime, source: source}, nil
}

// FromFile creates a Script from a UTF-8 file of standalone JS declarations.
// File I/O errors surface as InitError.
func FromFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InitError{Err: err}
	}
	return FromString(string(data))
}

// Call invokes the named top-level function with arg and decodes its return
// value into result. arg crosses the boundary as JSON; result must be a
// pointer, or nil to discard the return value. Execution is unbounded.
func (s *Script) Call(name string, arg, result any) error {
	return s.CallTimeout(name, arg, result, 0)
}

// CallTimeout is Call with a wall-clock deadline. If the function does not
// return within timeout the run is forcibly terminated at the engine's next
// interrupt checkpoint and CallTimeout returns a RuntimeError wrapping
// ErrTerminated. A timeout of 0 runs unbounded. The context's state from
// before the failed call stays valid; the call may be reattempted.
func (s *Script) CallTimeout(name string, arg, result any, timeout time.Duration) error {
	ret, err := s.callRaw(name, arg, timeout)
	if err != nil {
		return err
	}
	return Decode(ret, result)
}

// CallRaw invokes the named top-level function and returns its Value without
// decoding into a host type.
func (s *Script) CallRaw(name string, arg Value) (Value, error) {
	ret, err := s.callRaw(name, arg, 0)
	if err != nil {
		return nil, err
	}
	return Encode(ret)
}

func (s *Script) callRaw(name string, arg any, timeout time.Duration) (Value, error) {
	if s.runtime == nil {
		return nil, ErrClosed
	}
	encoded, err := Encode(arg)
	if err != nil {
		return nil, err
	}
	fn, ok := goja.AssertFunction(s.runtime.Get(name))
	if !ok {
		return nil, &FunctionNotFoundError{Name: name}
	}

	// resets any interrupt left over from an idle Interrupt call.
	s.runtime.ClearInterrupt()
	handle := arm(s.runtime, timeout)
	ret, err := fn(goja.Undefined(), s.runtime.ToValue(encoded))
	handle.disarm(s.runtime)
	if err != nil {
		return nil, jsError(err)
	}
	return export(ret), nil
}

// Eval evaluates an expression inside the persistent context and returns its
// Value. State changes made by the expression persist, like any call.
func (s *Script) Eval(expression string) (Value, error) {
	if s.runtime == nil {
		return nil, ErrClosed
	}
	s.runtime.ClearInterrupt()
	ret, err := s.runtime.RunString(expression)
	if err != nil {
		return nil, jsError(err)
	}
	return Encode(export(ret))
}

// Interrupt forces an in-flight call to abort at the engine's next interrupt
// checkpoint; the call returns a RuntimeError wrapping ErrTerminated. Safe to
// call from any goroutine and a no-op when nothing is executing; it never
// corrupts context state for subsequent calls.
func (s *Script) Interrupt() {
	if s.runtime == nil {
		return
	}
	s.runtime.Interrupt(ErrTerminated)
}

// Bindings returns the names of the context's top-level bindings.
func (s *Script) Bindings() []string {
	if s.runtime == nil {
		return nil
	}
	keys, err := s.runtime.RunString("Object.keys(this)")
	if err != nil {
		return nil
	}
	return cast.ToStringSlice(keys.Export())
}

// Source returns the source text the Script was created from.
func (s *Script) Source() string { return s.source }

// Close tears down the execution context. Further calls return ErrClosed.
// Close is idempotent.
func (s *Script) Close() {
	s.runtime = nil
}

// export unwraps a goja value into its Value representation.
func export(v goja.Value) Value {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v.Export()
}
