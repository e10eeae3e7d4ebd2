package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows a spinner for a single long-running step on a TTY, or
// plain line output otherwise.
type Display struct {
	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
	symbols      Symbols
	enabled      bool
}

// NewDisplay creates a display. When enabled is false every method is a
// no-op, so callers never need to branch on show_progress themselves.
func NewDisplay(caps TerminalCapabilities, enabled bool) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		enabled:      enabled,
	}
}

// Start begins showing progress for a step.
func (d *Display) Start(msg string) {
	if !d.enabled {
		return
	}
	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		d.spinner.Writer = os.Stderr // keep stdout clean for piped output
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
	} else {
		fmt.Println(msg)
	}
}

// Succeed stops the spinner and prints a success line.
func (d *Display) Succeed(msg string) {
	if !d.enabled {
		return
	}
	d.stop()
	fmt.Printf("%s %s\n", d.symbols.Checkmark, msg)
}

// Fail stops the spinner and prints a failure line.
func (d *Display) Fail(msg string, err error) {
	if !d.enabled {
		return
	}
	d.stop()
	fmt.Printf("%s %s: %v\n", d.symbols.Failure, msg, err)
}

// Stop stops the spinner without a completion line.
func (d *Display) Stop() {
	if !d.enabled {
		return
	}
	d.stop()
}

func (d *Display) stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
