// Package audit runs the coverage-suppression pipeline: load suppressions,
// select reports, count uncovered lines, report discrepancies.
package audit

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gcovaudit/internal/coverage"
	"github.com/wizzomafizzo/gcovaudit/internal/diag"
	"github.com/wizzomafizzo/gcovaudit/internal/logging"
	"github.com/wizzomafizzo/gcovaudit/internal/report"
	"github.com/wizzomafizzo/gcovaudit/internal/selector"
	"github.com/wizzomafizzo/gcovaudit/internal/suppression"
)

// Options names the inputs of one audit.
type Options struct {
	ReportDir    string
	IncludeDir   string
	Suppressions string
}

// Auditor runs audits against a filesystem and prints through a diag.Printer.
type Auditor struct {
	fs       afero.Fs
	printer  *diag.Printer
	selector *selector.Selector
}

// New creates an Auditor. Selector options customise header correlation.
func New(fs afero.Fs, printer *diag.Printer, opts ...selector.Option) *Auditor {
	return &Auditor{
		fs:       fs,
		printer:  printer,
		selector: selector.New(fs, opts...),
	}
}

// Run performs a full audit. A returned error is fatal and has already been
// printed; otherwise the outcome's diagnostics and summary have been printed
// and Outcome.Failed decides the exit status.
func (a *Auditor) Run(ctx context.Context, opts Options) (report.Outcome, error) {
	table, err := suppression.Load(ctx, a.fs, opts.Suppressions, a.printer)
	if err != nil {
		return report.Outcome{}, fmt.Errorf("failed to load suppressions: %w", err)
	}

	results, err := a.collect(ctx, opts)
	if err != nil {
		return report.Outcome{}, err
	}

	outcome := report.Evaluate(table, opts.Suppressions, results)
	a.printer.PrintAll(outcome.Diagnostics)
	if outcome.Failed() {
		a.printer.Summary(outcome.Summary())
	}

	logging.Get(ctx).Info().
		Str("dir", opts.ReportDir).
		Int("reports", len(results)).
		Int("suppressions", len(table)).
		Int("errors", outcome.Errors).
		Msg("audit finished")
	return outcome, nil
}

// Snapshot counts the selected reports without consulting suppressions.
func (a *Auditor) Snapshot(ctx context.Context, opts Options) ([]coverage.Result, error) {
	return a.collect(ctx, opts)
}

// WriteSuppressions renders results with a non-zero count in suppressions file syntax.
func WriteSuppressions(w io.Writer, results []coverage.Result) error {
	for _, r := range results {
		if r.Uncovered == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %d\n", r.Report.Name, r.Uncovered); err != nil {
			return fmt.Errorf("failed to write suppression entry: %w", err)
		}
	}
	return nil
}

func (a *Auditor) collect(ctx context.Context, opts Options) ([]coverage.Result, error) {
	log := logging.Get(ctx)

	reports, err := a.selector.Select(ctx, opts.ReportDir, opts.IncludeDir)
	if err != nil {
		a.printer.Print(diag.Errorf("%s", err.Error()))
		return nil, fmt.Errorf("failed to select reports: %w", err)
	}

	results := make([]coverage.Result, 0, len(reports))
	for _, r := range reports {
		result, err := coverage.Count(a.fs, r)
		if err != nil {
			a.printer.Print(diag.Errorf("%s", err.Error()))
			return nil, fmt.Errorf("failed to count %s: %w", r.Name, err)
		}
		log.Debug().
			Str("report", r.Name).
			Stringer("kind", r.Kind).
			Int("uncovered", result.Uncovered).
			Msg("counted report")
		results = append(results, result)
	}
	return results, nil
}
