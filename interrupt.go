package sandbox

import (
	"time"

	"github.com/dop251/goja"
)

// timeoutHandle is one armed deadline tied to one in-flight call. At most one
// handle is armed per call; it never fires once disarmed.
type timeoutHandle struct {
	timer *time.Timer
	fired chan struct{}
}

// arm starts a watchdog on its own timer goroutine that interrupts rt after d
// elapses. A non-positive d arms nothing and returns nil; disarm on a nil
// handle is a no-op.
func arm(rt *goja.Runtime, d time.Duration) *timeoutHandle {
	if d <= 0 {
		return nil
	}
	h := &timeoutHandle{fired: make(chan struct{})}
	h.timer = time.AfterFunc(d, func() {
		rt.Interrupt(ErrTerminated)
		close(h.fired)
	})
	return h
}

// disarm cancels the deadline. If the timer already fired, or fires
// concurrently with the call returning, the pending interrupt is cleared so
// it cannot leak into the next call on the same runtime.
func (h *timeoutHandle) disarm(rt *goja.Runtime) {
	if h == nil {
		return
	}
	if !h.timer.Stop() {
		<-h.fired
		rt.ClearInterrupt()
	}
}
