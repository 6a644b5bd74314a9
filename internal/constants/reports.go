package constants

// Artifact name suffixes produced by gcov and the instrumented build.
const (
	SourceReportSuffix  = ".cpp.gcov"
	TestReportSuffix    = "_test.cpp.gcov"
	HeaderReportSuffix  = ".h.gcov"
	HeaderSuffix        = ".h"
	ReportSuffix        = ".gcov"
	DataSuffix          = ".cpp.gcda"
	TestDataSuffix      = "_test.cpp.gcda"
	ImplementationTrail = "Impl"
)

// Markers gcov writes in the execution-count column of a report line.
const (
	NotExecutedMarker = "#####:"
	ExcludedMarker    = "=====:"
)
