package constants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "gcovaudit", AppName)
}

func TestLogFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, AppName+".log", LogFilename)
}

func TestReportSuffixesAreConsistent(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasSuffix(TestReportSuffix, SourceReportSuffix))
	assert.True(t, strings.HasSuffix(SourceReportSuffix, ReportSuffix))
	assert.Equal(t, HeaderSuffix+ReportSuffix, HeaderReportSuffix)
	assert.True(t, strings.HasSuffix(TestDataSuffix, DataSuffix))
}
