package sandbox

import (
	"context"
	"log/slog"

	"github.com/dop251/goja"
)

// EnableConsole installs a console object backed by slog on the runtime. The
// optional attrs are attached to every record.
func EnableConsole(rt *goja.Runtime, attr ...slog.Attr) {
	_ = rt.Set("console", console(attr).instantiate(rt))
}

// console implements the js console
type console []slog.Attr

func (c console) instantiate(rt *goja.Runtime) *goja.Object {
	ret := rt.NewObject()
	_ = ret.Set("log", c.log)
	_ = ret.Set("info", c.info)
	_ = ret.Set("warn", c.warn)
	_ = ret.Set("error", c.error)
	_ = ret.Set("debug", c.debug)
	return ret
}

func (c console) output(level slog.Level, call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	var args []goja.Value
	if len(call.Arguments) > 1 {
		args = call.Arguments[1:]
	}
	ctx := context.Background()
	slog.Default().LogAttrs(ctx, level, Format(rt, call.Argument(0), args...).String(), c...)
	return goja.Undefined()
}

// log calls slog.Log.
func (c console) log(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelInfo, call, rt)
}

// info calls slog.Info.
func (c console) info(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelInfo, call, rt)
}

// warn calls slog.Warn.
func (c console) warn(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelWarn, call, rt)
}

// error calls slog.Error.
func (c console) error(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelError, call, rt)
}

// debug calls slog.Debug.
func (c console) debug(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelDebug, call, rt)
}
