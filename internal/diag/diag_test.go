package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterStreams(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, "gcovaudit", false)

	p.PrintAll([]Diagnostic{
		Warningf("warning: redundant entry in %s: %s 0", "supp", "a.cpp.gcov"),
		Errorf("%s: %d uncovered source lines", "b.cpp.gcov", 2),
	})
	p.Summary("1 file contains unexpected uncovered source lines")

	assert.Equal(t,
		"gcovaudit: warning: redundant entry in supp: a.cpp.gcov 0\n"+
			"gcovaudit: b.cpp.gcov: 2 uncovered source lines\n",
		errOut.String())
	assert.Equal(t, "gcovaudit: 1 file contains unexpected uncovered source lines\n", out.String())
}

func TestPrinterColor(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer
	p := NewPrinter(&bytes.Buffer{}, &errOut, "gcovaudit", true)
	p.Print(Errorf("boom"))

	assert.Contains(t, errOut.String(), "\x1b[31m")
	assert.Contains(t, errOut.String(), "boom")
	assert.True(t, bytes.HasPrefix(errOut.Bytes(), []byte("gcovaudit: ")))
}

func TestPlural(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "lines", Plural(0, "line"))
	assert.Equal(t, "line", Plural(1, "line"))
	assert.Equal(t, "files", Plural(2, "file"))
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}
