// Package mockcmdtest provides helpers for tests that exercise mock
// commands generated by mockcmd: invoking an artifact and capturing its
// streams, and a small exact-or-pattern assertion dispatcher.
package mockcmdtest

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

type expectKind int

const (
	expectAbsent expectKind = iota
	expectLiteral
	expectPattern
)

// Expectation is a tagged expected value for IsOrLike: an exact literal,
// a regular expression, or absent. The zero value is Absent, so table
// tests may simply omit the field to skip the assertion.
type Expectation struct {
	kind    expectKind
	literal string
	pattern *regexp.Regexp
}

// Literal expects an exact match.
func Literal(s string) Expectation {
	return Expectation{kind: expectLiteral, literal: s}
}

// Pattern expects a regular-expression match. The expression must compile.
func Pattern(expr string) Expectation {
	return Regexp(regexp.MustCompile(expr))
}

// Regexp expects a match against an already-compiled pattern.
func Regexp(re *regexp.Regexp) Expectation {
	return Expectation{kind: expectPattern, pattern: re}
}

// Absent records no assertion at all, for datasets that intentionally
// omit an expectation.
func Absent() Expectation {
	return Expectation{}
}

// IsOrLike compares actual against expected, recording the comparison as
// a subtest named after the kind of match performed. An Absent
// expectation records nothing.
func IsOrLike(t *testing.T, actual string, expected Expectation, name string) {
	t.Helper()

	switch expected.kind {
	case expectAbsent:
	case expectLiteral:
		t.Run(name+" (exact match)", func(t *testing.T) {
			assert.Equal(t, expected.literal, actual)
		})
	case expectPattern:
		t.Run(name+" (regex match)", func(t *testing.T) {
			assert.Regexp(t, expected.pattern, actual)
		})
	}
}
