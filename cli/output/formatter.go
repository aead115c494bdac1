package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/yourusername/runx/core/history"
	"github.com/yourusername/runx/core/runner"
)

// Formatter handles output formatting
type Formatter struct {
	colorEnabled bool
	verbose      bool
	successColor *color.Color
	errorColor   *color.Color
	warningColor *color.Color
	infoColor    *color.Color
	dimColor     *color.Color
}

// NewFormatter creates a new output formatter
func NewFormatter(colorEnabled, verbose bool) *Formatter {
	if !colorEnabled {
		color.NoColor = true
	}

	return &Formatter{
		colorEnabled: colorEnabled,
		verbose:      verbose,
		successColor: color.New(color.FgGreen, color.Bold),
		errorColor:   color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		infoColor:    color.New(color.FgCyan),
		dimColor:     color.New(color.FgHiBlack),
	}
}

// Success prints a success message
func (f *Formatter) Success(message string) {
	f.successColor.Println("✓ " + message)
}

// Error prints an error message
func (f *Formatter) Error(message string) {
	f.errorColor.Println("✗ " + message)
}

// Warning prints a warning message
func (f *Formatter) Warning(message string) {
	f.warningColor.Println("⚠ " + message)
}

// Info prints an info message
func (f *Formatter) Info(message string) {
	f.infoColor.Println("ℹ " + message)
}

// Debug prints a debug message (only in verbose mode)
func (f *Formatter) Debug(message string) {
	if f.verbose {
		f.dimColor.Println("» " + message)
	}
}

// ShowResult displays an invocation result. Captured output goes to
// stdout untouched; status decoration only appears in verbose mode so
// `runx exec` output stays pipeable.
func (f *Formatter) ShowResult(res runner.Result) {
	if res.Success {
		if res.Message != "" {
			fmt.Println(res.Message)
		}
		if f.verbose {
			f.Success("command succeeded")
		}
		return
	}

	if res.Message != "" {
		f.Error(res.Message)
	} else {
		f.Error("command failed")
	}
}

// ShowHistory displays history records, oldest first
func (f *Formatter) ShowHistory(records []history.Record) {
	if len(records) == 0 {
		f.Info("No history found")
		return
	}

	for _, rec := range records {
		marker := f.successColor.Sprint("✓")
		if !rec.Success {
			marker = f.errorColor.Sprint("✗")
		}
		fmt.Printf("%s  %s  [%s] %s\n",
			marker,
			rec.When.Format("2006-01-02 15:04:05"),
			rec.Mode,
			rec.Command,
		)
		if f.verbose && rec.Message != "" {
			f.dimColor.Println("    " + rec.Message)
		}
	}
}
