package selector

import (
	"fmt"
	"strings"

	"github.com/wizzomafizzo/gcovaudit/internal/constants"
)

// Correlator decides whether a header, given without its ".h.gcov" suffix,
// is explicitly targeted by a test harness among the artifacts in listing.
type Correlator func(header string, listing map[string]struct{}) bool

// DefaultCorrelator keeps Foo.h when Foo_test.cpp.gcda or Foo.cpp.gcda exists,
// and FooImpl.h when Foo_test.cpp.gcda exists.
func DefaultCorrelator(header string, listing map[string]struct{}) bool {
	if has(listing, header+constants.TestDataSuffix) || has(listing, header+constants.DataSuffix) {
		return true
	}
	base, ok := strings.CutSuffix(header, constants.ImplementationTrail)
	return ok && has(listing, base+constants.TestDataSuffix)
}

// AnyHarness keeps every header.
func AnyHarness(string, map[string]struct{}) bool {
	return true
}

// Correlation modes accepted by LookupCorrelator.
const (
	CorrelationDefault = "default"
	CorrelationAny     = "any"
)

// LookupCorrelator maps a correlation mode to its Correlator. An empty mode
// selects DefaultCorrelator.
func LookupCorrelator(mode string) (Correlator, error) {
	switch mode {
	case "", CorrelationDefault:
		return DefaultCorrelator, nil
	case CorrelationAny:
		return AnyHarness, nil
	default:
		return nil, fmt.Errorf("unknown correlation mode %q", mode)
	}
}

func has(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
