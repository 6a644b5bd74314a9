// Package selector picks the gcov reports an audit should look at.
package selector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
	"github.com/wizzomafizzo/gcovaudit/internal/logging"
)

// Kind tells source reports from header reports.
type Kind int

const (
	KindSource Kind = iota
	KindHeader
)

func (k Kind) String() string {
	if k == KindHeader {
		return "header"
	}
	return "source"
}

// ReportFile is one gcov report selected for auditing.
type ReportFile struct {
	// Name is the file name inside the report directory, used as the suppression key.
	Name string
	Path string
	Kind Kind
}

// DirectoryError reports that a directory could not be listed or walked.
type DirectoryError struct {
	Err error
	Dir string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("cannot open %q: %v", e.Dir, reason(e.Err))
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// reason strips the path from *fs.PathError so the message reads like strerror.
func reason(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// Selector lists a report directory and filters it down to auditable reports.
type Selector struct {
	fs        afero.Fs
	correlate Correlator
}

// Option configures a Selector.
type Option func(*Selector)

// WithCorrelator replaces the header to test-harness naming rule.
func WithCorrelator(c Correlator) Option {
	return func(s *Selector) {
		s.correlate = c
	}
}

// New creates a Selector reading from fs.
func New(fs afero.Fs, opts ...Option) *Selector {
	s := &Selector{fs: fs, correlate: DefaultCorrelator}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select returns the source reports followed by the header reports that
// survive the include-root and harness correlation filters, each group in
// directory listing order. An empty includeRoot disables that filter.
func (s *Selector) Select(ctx context.Context, reportDir, includeRoot string) ([]ReportFile, error) {
	log := logging.Get(ctx)

	entries, err := afero.ReadDir(s.fs, reportDir)
	if err != nil {
		return nil, &DirectoryError{Dir: reportDir, Err: err}
	}

	listing := make(map[string]struct{}, len(entries))
	var sources, headers []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		listing[name] = struct{}{}
		switch {
		case IsSourceReport(name):
			sources = append(sources, name)
		case IsHeaderReport(name):
			headers = append(headers, name)
		}
	}

	if includeRoot != "" {
		declared, err := s.declaredHeaders(includeRoot)
		if err != nil {
			return nil, err
		}
		headers = filter(headers, func(name string) bool {
			_, ok := declared[name]
			return ok
		})
		log.Debug().
			Str("include_root", includeRoot).
			Int("declared", len(declared)).
			Int("headers", len(headers)).
			Msg("restricted headers to include root")
	}

	headers = filter(headers, func(name string) bool {
		keep := s.correlate(strings.TrimSuffix(name, constants.HeaderReportSuffix), listing)
		if !keep {
			log.Debug().Str("header", name).Msg("no test harness targets header")
		}
		return keep
	})

	reports := make([]ReportFile, 0, len(sources)+len(headers))
	for _, name := range sources {
		reports = append(reports, ReportFile{Name: name, Path: filepath.Join(reportDir, name), Kind: KindSource})
	}
	for _, name := range headers {
		reports = append(reports, ReportFile{Name: name, Path: filepath.Join(reportDir, name), Kind: KindHeader})
	}

	log.Debug().
		Str("dir", reportDir).
		Int("entries", len(entries)).
		Int("sources", len(sources)).
		Int("headers", len(headers)).
		Msg("selected reports")
	return reports, nil
}

// declaredHeaders walks root for *.h files and returns their report names.
func (s *Selector) declaredHeaders(root string) (map[string]struct{}, error) {
	if _, err := s.fs.Stat(root); err != nil {
		return nil, &DirectoryError{Dir: root, Err: err}
	}

	declared := map[string]struct{}{}
	fsys := afero.NewIOFS(afero.NewBasePathFs(s.fs, root))
	err := doublestar.GlobWalk(fsys, "**/*"+constants.HeaderSuffix, func(p string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		declared[path.Base(p)+constants.ReportSuffix] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, &DirectoryError{Dir: root, Err: err}
	}
	return declared, nil
}

// IsSourceReport reports whether name is a .cpp report that is not a test harness.
func IsSourceReport(name string) bool {
	return hasStemSuffix(name, constants.SourceReportSuffix) &&
		!strings.HasSuffix(name, constants.TestReportSuffix)
}

// IsHeaderReport reports whether name is a .h report.
func IsHeaderReport(name string) bool {
	return hasStemSuffix(name, constants.HeaderReportSuffix)
}

// hasStemSuffix requires at least one character before suffix.
func hasStemSuffix(name, suffix string) bool {
	return len(name) > len(suffix) && strings.HasSuffix(name, suffix)
}

func filter(names []string, keep func(string) bool) []string {
	out := names[:0]
	for _, name := range names {
		if keep(name) {
			out = append(out, name)
		}
	}
	return out
}
