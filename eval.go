package sandbox

import "github.com/dop251/goja"

// EvalJSON evaluates a standalone expression in a fresh, throwaway execution
// context and returns its Value. No state persists beyond the call; intended
// for quick one-off evaluation, not for repeated invocation.
//
// example:
//
//	value, err := sandbox.EvalJSON(`1 + 1`)
//	if err != nil {
//		panic(err)
//	}
//	fmt.Println(value) // 2
func EvalJSON(expression string) (Value, error) {
	runtime := goja.New()
	EnableConsole(runtime)
	ret, err := runtime.RunString(expression)
	if err != nil {
		return nil, jsError(err)
	}
	return Encode(export(ret))
}
