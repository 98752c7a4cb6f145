package demangle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	for _, mode := range Modes {
		_, err := Options(mode)
		require.NoError(t, err, mode)
	}
	opts, err := Options("none")
	require.NoError(t, err)
	require.Empty(t, opts)

	_, err = Options("everything")
	require.Error(t, err)
}

func TestName(t *testing.T) {
	require.Equal(t, "_Z3foov", Name("_Z3foov", None))
	require.Equal(t, "foo", Name("_Z3foov", Simplified))
	require.Equal(t, "foo()", Name("_Z3foov", Full))
	require.Equal(t, "main", Name("main", Full))
}
