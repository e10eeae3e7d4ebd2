// Package progress provides terminal progress indicators for long-running
// steps such as provider calls and materialization.
package progress

// TerminalCapabilities encapsulates detected terminal features.
type TerminalCapabilities struct {
	// IsTTY indicates whether stdout is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// Symbols defines the character set for visual indicators.
type Symbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
