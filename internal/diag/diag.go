// Package diag holds user-facing diagnostics and prints them with the
// program-name prefix CI log scrapers expect.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Severity classifies a diagnostic. Only errors affect the exit status.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one line of output produced by an audit.
type Diagnostic struct {
	Message  string
	Severity Severity
}

// Warningf builds a warning diagnostic.
func Warningf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...)}
}

// Errorf builds an error diagnostic.
func Errorf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Message: fmt.Sprintf(format, args...)}
}

// Printer writes diagnostics to the error stream and summaries to the output stream.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	prog    string
	warning *color.Color
	failure *color.Color
}

// NewPrinter creates a Printer prefixing every line with prog.
func NewPrinter(out, errOut io.Writer, prog string, colorize bool) *Printer {
	warning := color.New(color.FgYellow)
	failure := color.New(color.FgRed)
	if colorize {
		warning.EnableColor()
		failure.EnableColor()
	} else {
		warning.DisableColor()
		failure.DisableColor()
	}
	return &Printer{
		out:     out,
		errOut:  errOut,
		prog:    prog,
		warning: warning,
		failure: failure,
	}
}

// Print writes d to the error stream.
func (p *Printer) Print(d Diagnostic) {
	c := p.failure
	if d.Severity == Warning {
		c = p.warning
	}
	_, _ = fmt.Fprintf(p.errOut, "%s: %s\n", p.prog, c.Sprint(d.Message))
}

// PrintAll writes every diagnostic in order.
func (p *Printer) PrintAll(ds []Diagnostic) {
	for _, d := range ds {
		p.Print(d)
	}
}

// Summary writes msg to the output stream.
func (p *Printer) Summary(msg string) {
	_, _ = fmt.Fprintf(p.out, "%s: %s\n", p.prog, msg)
}

// Plural returns word with an "s" appended unless n is one.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
