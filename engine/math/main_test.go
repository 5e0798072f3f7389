package math

import (
	"io"
	"os"
	"testing"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestMain(tm *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(tm.Run())
}

// requireViolation runs fn and checks that it panicked with an error wrapping
// kind.
func requireViolation(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, kind)
	}()
	fn()
}

// withStrictNormalize turns strict normalization on for the rest of the test.
func withStrictNormalize(t *testing.T) {
	t.Helper()
	s := core.CurrentSettings()
	s.StrictNormalize = true
	require.NoError(t, core.ApplySettings(s))
	t.Cleanup(func() {
		require.NoError(t, core.ApplySettings(core.DefaultSettings()))
	})
}
