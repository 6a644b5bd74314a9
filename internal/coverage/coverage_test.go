package coverage

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/gcovaudit/internal/selector"
	"github.com/wizzomafizzo/gcovaudit/internal/testutil"
)

const sampleReport = `        -:    0:Source:/src/unity/util/FileIO.cpp
        -:    1:#include <unity/util/FileIO.h>
        5:   10:    if (fd == -1)
    #####:   11:        throw FileException(path);
        5:   12:    return read(fd);
    =====:   13:    unreachable();
    #####:   14:    a(); // #####: in a comment too
        -:   15:}
`

func TestCountLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "fully covered", input: "        1:    1:x();\n", want: 0},
		{name: "sample", input: sampleReport, want: 3},
		{name: "no trailing newline", input: "    #####:    1:x();", want: 1},
		{name: "marker without colon", input: "    #####    1:x();\n", want: 0},
		{name: "crlf", input: "    #####:    1:x();\r\n    =====:    2:y();\r\n", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CountLines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountLinesOrderIndependent(t *testing.T) {
	t.Parallel()

	lines := strings.Split(strings.TrimSuffix(sampleReport, "\n"), "\n")
	reversed := make([]string, len(lines))
	for i, l := range lines {
		reversed[len(lines)-1-i] = l
	}

	forward, err := CountLines(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	backward, err := CountLines(strings.NewReader(strings.Join(reversed, "\n")))
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}

func TestCountLinesLongLine(t *testing.T) {
	t.Parallel()

	long := "    #####:    1:" + strings.Repeat("x", 200*1024) + "\n"
	got, err := CountLines(strings.NewReader(long))

	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("io failure") }

func TestCountLinesReadError(t *testing.T) {
	t.Parallel()

	_, err := CountLines(brokenReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "io failure")
}

func TestCount(t *testing.T) {
	t.Parallel()

	dir := testutil.NewReportDir(t, "/build").Report("foo.cpp.gcov", 2, 5)
	report := selector.ReportFile{Name: "foo.cpp.gcov", Path: "/build/foo.cpp.gcov"}

	result, err := Count(dir.Fs, report)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Uncovered)
	assert.Equal(t, report, result.Report)
}

func TestCountMissingReport(t *testing.T) {
	t.Parallel()

	_, err := Count(afero.NewMemMapFs(), selector.ReportFile{Name: "gone.cpp.gcov", Path: "/build/gone.cpp.gcov"})

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "/build/gone.cpp.gcov", ioErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), `cannot read "/build/gone.cpp.gcov"`)
}
