package sandbox

import (
	"testing"
	"time"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArmUnbounded(t *testing.T) {
	t.Parallel()
	rt := goja.New()
	assert.Nil(t, arm(rt, 0))
	assert.Nil(t, arm(rt, -time.Second))

	var h *timeoutHandle
	h.disarm(rt) // no-op
}

func TestDisarmBeforeFire(t *testing.T) {
	t.Parallel()
	rt := goja.New()
	h := arm(rt, time.Hour)
	h.disarm(rt)

	_, err := rt.RunString("1")
	assert.NoError(t, err)
}

func TestDisarmAfterFire(t *testing.T) {
	t.Parallel()
	rt := goja.New()
	h := arm(rt, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	h.disarm(rt)

	// the fired interrupt must not be pending anymore
	_, err := rt.RunString("for (let i = 0; i < 1e6; i++) {}")
	require.NoError(t, err)
}
