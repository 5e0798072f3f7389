package core

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

// captureLog redirects the logger into a buffer until the test ends.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() { SetLogOutput(io.Discard) })
	return &buf
}

// resetSettings restores the default settings once the test ends.
func resetSettings(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, ApplySettings(DefaultSettings()))
	})
}
