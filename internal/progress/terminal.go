package progress

import (
	"os"

	"golang.org/x/term"
)

// DetectTerminalCapabilities detects terminal features for stdout.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("PROTOFORGE_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// SelectSymbols returns the symbol set matching the terminal capabilities.
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return Symbols{
			Checkmark:  "✓",
			Failure:    "✗",
			SpinnerSet: 14, // Unicode dots
		}
	}
	return Symbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		SpinnerSet: 9, // ASCII: | / - \
	}
}
