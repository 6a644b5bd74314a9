// Package report compares counted uncovered lines against the suppressions table.
package report

import (
	"fmt"
	"strings"

	"github.com/wizzomafizzo/gcovaudit/internal/coverage"
	"github.com/wizzomafizzo/gcovaudit/internal/diag"
	"github.com/wizzomafizzo/gcovaudit/internal/suppression"
)

// Outcome is the ordered diagnostics of an audit and its error tally.
type Outcome struct {
	Diagnostics []diag.Diagnostic
	Errors      int
}

// Failed reports whether any file had an unexpected count.
func (o Outcome) Failed() bool {
	return o.Errors != 0
}

// Summary returns the closing line for a failed audit, or "" when nothing failed.
func (o Outcome) Summary() string {
	if o.Errors == 0 {
		return ""
	}
	verb := "contain"
	if o.Errors == 1 {
		verb = "contains"
	}
	return fmt.Sprintf("%d %s %s unexpected uncovered source lines",
		o.Errors, diag.Plural(o.Errors, "file"), verb)
}

// Evaluate checks every result against table. suppressionsPath only names the
// file in redundant-entry warnings.
func Evaluate(table suppression.Table, suppressionsPath string, results []coverage.Result) Outcome {
	var out Outcome
	for _, r := range results {
		name := r.Report.Name
		expected, listed := table.Expected(name)

		if listed && expected == 0 {
			out.Diagnostics = append(out.Diagnostics,
				diag.Warningf("warning: redundant entry in %s: %s 0", suppressionsPath, name))
		}
		if r.Uncovered != expected {
			out.Errors++
			out.Diagnostics = append(out.Diagnostics, diag.Errorf("%s", Mismatch(name, r.Uncovered, expected)))
		}
	}
	return out
}

// Mismatch formats the message for a report whose count differs from expected.
func Mismatch(name string, count, expected int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d uncovered source %s", name, count, diag.Plural(count, "line"))
	if expected != 0 {
		fmt.Fprintf(&b, " (expected %d %s)", expected, diag.Plural(expected, "line"))
	}
	return b.String()
}
