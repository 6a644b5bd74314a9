// Package coverage counts uncovered lines in gcov reports.
package coverage

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
	"github.com/wizzomafizzo/gcovaudit/internal/selector"
)

// gcov emits whole source lines, so allow long ones.
const maxLineBytes = 16 << 20

var (
	notExecuted = []byte(constants.NotExecutedMarker)
	excluded    = []byte(constants.ExcludedMarker)
)

// Result is the uncovered line count of one report.
type Result struct {
	Report    selector.ReportFile
	Uncovered int
}

// IOError reports that a report could not be opened or read.
type IOError struct {
	Err  error
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Count opens report and counts its uncovered lines.
func Count(fs afero.Fs, report selector.ReportFile) (Result, error) {
	f, err := fs.Open(report.Path)
	if err != nil {
		return Result{}, &IOError{Path: report.Path, Err: err}
	}
	defer func() { _ = f.Close() }()

	n, err := CountLines(f)
	if err != nil {
		return Result{}, &IOError{Path: report.Path, Err: err}
	}
	return Result{Report: report, Uncovered: n}, nil
}

// CountLines returns the number of lines in r marked as never executed
// ("#####:") or excluded ("=====:"). A line counts once however many
// markers it holds.
func CountLines(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	count := 0
	for scanner.Scan() {
		if IsUncovered(scanner.Bytes()) {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan report: %w", err)
	}
	return count, nil
}

// IsUncovered reports whether a single report line carries an uncovered marker.
func IsUncovered(line []byte) bool {
	return bytes.Contains(line, notExecuted) || bytes.Contains(line, excluded)
}
