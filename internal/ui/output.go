// Package ui provides console output and prompts for fix-templates.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// UI provides user interface methods
type UI struct {
	output         io.Writer
	nonInteractive bool // If true, prompts return their default answer
	// Color functions
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorCyan    *color.Color
}

// New creates a new UI instance writing to stdout
func New() *UI {
	return &UI{
		output:         os.Stdout,
		nonInteractive: false,
		colorInfo:      color.New(color.FgBlue),
		colorSuccess:   color.New(color.FgGreen),
		colorWarning:   color.New(color.FgYellow),
		colorError:     color.New(color.FgRed),
		colorCyan:      color.New(color.FgCyan, color.Bold),
	}
}

// NewWithWriter creates a UI with custom output writer (useful for testing).
// Color is disabled since the writer is not a terminal.
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	ui.SetColor(false)
	return ui
}

// SetColor enables or disables colored output for this UI
func (u *UI) SetColor(enabled bool) {
	for _, c := range []*color.Color{u.colorInfo, u.colorSuccess, u.colorWarning, u.colorError, u.colorCyan} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintf(u.output, "[✓] %s\n", msg)
}

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARNING] %s\n", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// SuccessLinef prints a green line with no prefix.
// Per-file result lines use this so their text stays exact.
func (u *UI) SuccessLinef(format string, args ...interface{}) {
	u.colorSuccess.Fprintf(u.output, format+"\n", args...)
}

// WarningLinef prints a yellow line with no prefix
func (u *UI) WarningLinef(format string, args ...interface{}) {
	u.colorWarning.Fprintf(u.output, format+"\n", args...)
}

// ErrorLinef prints a red line with no prefix
func (u *UI) ErrorLinef(format string, args ...interface{}) {
	u.colorError.Fprintf(u.output, format+"\n", args...)
}

// Separator prints a separator line
func (u *UI) Separator() {
	u.colorCyan.Fprintln(u.output, strings.Repeat("-", 70))
}

// Print prints a plain message without formatting
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.output, msg)
}

// Printf prints a formatted plain message
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.output, format+"\n", args...)
}
