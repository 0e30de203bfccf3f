// Package diag centralizes Noh's fatal-diagnostic reporting: one
// shared, colorized home for the "no structured exception mechanism,
// report and terminate" style used everywhere a fatal condition is
// detected, instead of an inline fmt.Fprintln+os.Exit repeated at
// every call site.
package diag

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Fatal is a panic payload for an unrecoverable evaluation error:
// unknown identifier, type mismatch, arity mismatch, division by
// zero, out-of-range tuple index, and so on. The core panics rather
// than threading an error return through every evaluation routine;
// interp.Interpreter.Run recovers it and returns it as a plain error,
// which the caller reports instead of crashing the process outright.
type Fatal struct {
	Message string
}

func (f *Fatal) Error() string { return f.Message }

// Fatalf panics with a Fatal carrying the formatted message.
func Fatalf(format string, args ...any) {
	panic(&Fatal{Message: fmt.Sprintf(format, args...)})
}

// ParseFailed reports a parse failure to stderr with the underlying
// detail appended for the human reading the terminal.
func ParseFailed(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("parse failed")+": "+err.Error())
}

// Report writes a fatal evaluation error to stderr in red, the same
// severity treatment ParseFailed uses so both kinds of failure read
// consistently in a terminal.
func Report(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error")+": "+err.Error())
}
