package sandbox

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole(t *testing.T) {
	vm := goja.New()
	EnableConsole(vm)

	_, err := vm.RunString(`
		console.log("hello %s", "sandbox");
		console.log("json %j", {'foo': 'bar'});
		console.info("int %d", 42);
		console.warn("careful");
		console.error("failed");
		console.debug("details");
	`)
	assert.NoError(t, err)
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	vm := goja.New()
	EnableConsole(vm, slog.String("source", "test"))

	_, err := vm.RunString(`console.log("hello %s", "world")`)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hello world")
	assert.Contains(t, buf.String(), "source=test")
}
