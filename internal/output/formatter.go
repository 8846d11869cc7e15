package output

import (
	"encoding/json"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	hintColor    = color.New(color.FgHiBlack)
)

// JSON writes data as indented JSON to stdout
func JSON(data interface{}) error {
	encoder := json.NewEncoder(color.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(color.Output, "✓ "+format+"\n", args...)
}

// Error prints an error message to stderr
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(color.Error, "✗ "+format+"\n", args...)
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Fprintf(color.Output, "! "+format+"\n", args...)
}

// Info prints a progress message
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(color.Output, "→ "+format+"\n", args...)
}

// Hint prints an indented, dimmed follow-up line such as a URL
func Hint(format string, args ...interface{}) {
	_, _ = hintColor.Fprintf(color.Output, "  "+format+"\n", args...)
}
