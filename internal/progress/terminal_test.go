package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	t.Run("unicode terminal", func(t *testing.T) {
		t.Parallel()
		s := SelectSymbols(TerminalCapabilities{SupportsUnicode: true})
		assert.Equal(t, "✓", s.Checkmark)
		assert.Equal(t, "✗", s.Failure)
	})

	t.Run("ascii fallback", func(t *testing.T) {
		t.Parallel()
		s := SelectSymbols(TerminalCapabilities{SupportsUnicode: false})
		assert.Equal(t, "[OK]", s.Checkmark)
		assert.Equal(t, "[FAIL]", s.Failure)
	})
}

func TestDisplay_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	d := NewDisplay(TerminalCapabilities{}, false)
	// None of these may panic or print when disabled.
	d.Start("working")
	d.Succeed("done")
	d.Fail("failed", assert.AnError)
	d.Stop()
}

func TestDetectTerminalCapabilities_NonTTY(t *testing.T) {
	// Test processes run without a TTY on stdout.
	caps := DetectTerminalCapabilities()
	assert.False(t, caps.IsTTY)
	assert.False(t, caps.SupportsColor)
	assert.Zero(t, caps.Width)
}
