package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders a CLIError for terminal display with colors.
// A nil error yields an empty string.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	sb.WriteString(red.Sprintf("%s: ", err.Category))
	sb.WriteString(err.Message)
	sb.WriteString("\n")

	if err.Usage != "" {
		sb.WriteString("\n")
		sb.WriteString(cyan.Sprint("Usage: "))
		sb.WriteString(err.Usage)
		sb.WriteString("\n")
	}

	if len(err.Remediation) > 0 {
		sb.WriteString("\n")
		sb.WriteString(yellow.Sprint("To fix this:"))
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			sb.WriteString(fmt.Sprintf("  - %s\n", step))
		}
	}

	return sb.String()
}

// FormatErrorPlain renders a CLIError without any color codes, for
// non-terminal output.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s\n", err.Category, err.Message))

	if err.Usage != "" {
		sb.WriteString(fmt.Sprintf("\nUsage: %s\n", err.Usage))
	}

	if len(err.Remediation) > 0 {
		sb.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			sb.WriteString(fmt.Sprintf("  - %s\n", step))
		}
	}

	return sb.String()
}

// FormatSimpleError renders any error with a category label. A nil error
// yields an empty string.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}

// PrintError writes a formatted error to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes a formatted error to the given writer. A nil error
// writes nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
