package sandbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		expression string
		want       Value
	}{
		{"2", int64(2)},
		{"1 + 1", int64(2)},
		{"(() => 4)()", int64(4)},
		{"[5]", []any{int64(5)}},
		{"a = {'key':'foo'}; a", map[string]any{"key": "foo"}},
		{"JSON.stringify({'key':7})", `{"key":7}`},
		{"'a' + 'b'", "ab"},
		{"null", nil},
		{"undefined", nil},
	}

	for _, c := range testCases {
		t.Run(c.expression, func(t *testing.T) {
			got, err := EvalJSON(c.expression)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEvalJSONThrow(t *testing.T) {
	t.Parallel()
	var runtimeErr *RuntimeError
	_, err := EvalJSON("throw new Error('boom')")
	require.ErrorAs(t, err, &runtimeErr)
	assert.Equal(t, "Uncaught Error: boom", err.Error())
}

func TestEvalJSONSyntaxError(t *testing.T) {
	t.Parallel()
	var initErr *InitError
	_, err := EvalJSON("function (")
	assert.ErrorAs(t, err, &initErr)
}

func TestEvalJSONStateless(t *testing.T) {
	t.Parallel()
	_, err := EvalJSON("leak = 1")
	require.NoError(t, err)
	_, err = EvalJSON("leak")
	assert.Error(t, err)
}
