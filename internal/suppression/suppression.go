// Package suppression loads the allow-list of expected uncovered-line counts.
//
// Each non-comment line holds a report name and a count separated by
// whitespace, optionally followed by a "#" comment:
//
//	# defensive asserts
//	Daemon.cpp.gcov   3   # fork failure paths
package suppression

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gcovaudit/internal/diag"
	"github.com/wizzomafizzo/gcovaudit/internal/logging"
)

// Table maps a report name to its expected number of uncovered lines.
type Table map[string]int

// Expected returns the expected count for name and whether it is listed.
func (t Table) Expected(name string) (int, bool) {
	n, ok := t[name]
	return n, ok
}

// ParseError reports that a suppressions file contained syntax errors.
// The individual lines have already been printed.
type ParseError struct {
	Path  string
	Count int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %d syntax %s", e.Path, e.Count, diag.Plural(e.Count, "error"))
}

// ReadError reports that the suppressions file could not be read.
type ReadError struct {
	Err  error
	Path string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Load reads the suppressions file at path. An empty path yields an empty table.
func Load(ctx context.Context, fs afero.Fs, path string, printer *diag.Printer) (Table, error) {
	if path == "" {
		return Table{}, nil
	}

	f, err := fs.Open(path)
	if err != nil {
		readErr := &ReadError{Path: path, Err: err}
		printer.Print(diag.Errorf("%s", readErr.Error()))
		return nil, readErr
	}
	defer func() { _ = f.Close() }()

	return Parse(ctx, f, path, printer)
}

// Parse reads suppressions from r. name identifies the source in syntax errors.
// Every bad line is printed before the combined ParseError is returned.
func Parse(ctx context.Context, r io.Reader, name string, printer *diag.Printer) (Table, error) {
	table := Table{}
	errs := 0
	lineNum := 0

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNum++
			entry, count, kind := parseLine(line)
			switch kind {
			case lineEntry:
				// last entry wins on duplicates
				table[entry] = count
			case lineInvalid:
				printer.Print(diag.Errorf("%s:%d: syntax error", name, lineNum))
				errs++
			case lineBlank:
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			readErr := &ReadError{Path: name, Err: err}
			printer.Print(diag.Errorf("%s", readErr.Error()))
			return nil, readErr
		}
	}

	if errs != 0 {
		return nil, &ParseError{Path: name, Count: errs}
	}

	logging.Get(ctx).Debug().
		Str("path", name).
		Int("entries", len(table)).
		Msg("loaded suppressions")
	return table, nil
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineEntry
	lineInvalid
)

// parseLine classifies one line of a suppressions file. The grammar is
// `[ws] name ws count [ws [#comment]]` matched against the whole line.
func parseLine(line string) (name string, count int, kind lineKind) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", 0, lineBlank
	}
	if len(fields) < 2 || !isDigits(fields[1]) {
		return "", 0, lineInvalid
	}
	if len(fields) > 2 && !strings.HasPrefix(fields[2], "#") {
		return "", 0, lineInvalid
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, lineInvalid
	}
	return fields[0], n, lineEntry
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
