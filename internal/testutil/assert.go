// Package testutil provides shared test helpers for the rules engine and
// the programs built on it.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "mismatch (-want +got):\n%s", diff)
	}
}

// AssertSameMoves compares two SAN lists ignoring order.
func AssertSameMoves(t *testing.T, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, got, sortStrings, cmpopts.EquateEmpty()); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "move sets differ (-want +got):\n%s", diff)
	}
}

// AssertHasMoves fails for every SAN in want that is missing from got.
func AssertHasMoves(t *testing.T, got []string, want ...string) {
	t.Helper()
	have := toSet(got)
	for _, san := range want {
		if !have[san] {
			t.Errorf("missing move %q in %v", san, got)
		}
	}
}

// AssertLacksMoves fails for every SAN in unwanted that is present in got.
func AssertLacksMoves(t *testing.T, got []string, unwanted ...string) {
	t.Helper()
	have := toSet(got)
	for _, san := range unwanted {
		if have[san] {
			t.Errorf("unexpected move %q in %v", san, got)
		}
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, formatMessage(msgAndArgs...), "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		reportf(t, formatMessage(msgAndArgs...), "error = %v, want %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		reportf(t, formatMessage(msgAndArgs...), "%q does not contain %q", got, substr)
	}
}

func reportf(t *testing.T, msg, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg != "" {
		t.Errorf("%s: %s", msg, text)
		return
	}
	t.Error(text)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
