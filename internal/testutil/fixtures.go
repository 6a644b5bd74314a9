package testutil

import (
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// ReportDir builds gcov artifacts inside an in-memory filesystem.
type ReportDir struct {
	t   *testing.T
	Fs  afero.Fs
	Dir string
}

// NewReportDir creates dir on a fresh memory filesystem.
func NewReportDir(t *testing.T, dir string) *ReportDir {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create report dir %s: %v", dir, err)
	}
	return &ReportDir{t: t, Fs: fs, Dir: dir}
}

// Report writes a gcov report named name with the given number of
// unexecuted lines followed by covered lines.
func (r *ReportDir) Report(name string, uncovered, covered int) *ReportDir {
	r.t.Helper()
	return r.File(name, GcovReport(uncovered, covered))
}

// Touch creates an empty artifact, typically a .gcda file.
func (r *ReportDir) Touch(names ...string) *ReportDir {
	r.t.Helper()
	for _, name := range names {
		r.File(name, "")
	}
	return r
}

// File writes content at name relative to the report dir.
func (r *ReportDir) File(name, content string) *ReportDir {
	r.t.Helper()
	WriteFile(r.t, r.Fs, path.Join(r.Dir, name), content)
	return r
}

// WriteFile writes content to fs, creating parent directories.
func WriteFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	if err := fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// GcovReport renders a minimal gcov listing.
func GcovReport(uncovered, covered int) string {
	var b strings.Builder
	b.WriteString("        -:    0:Source:foo.cpp\n")
	line := 1
	for range uncovered {
		fmt.Fprintf(&b, "    #####:%5d:    f();\n", line)
		line++
	}
	for range covered {
		fmt.Fprintf(&b, "        3:%5d:    g();\n", line)
		line++
	}
	return b.String()
}
