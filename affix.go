package restring

import (
	"strings"

	"github.com/charlievieth/strcase"
)

// HasPrefix reports whether s begins with any of cs. Criteria are tried in
// order and the first success wins; with no criteria the result is false.
//
// A pattern succeeds only if it matches at offset 0, not merely somewhere
// in s.
//
// Example:
//
//	restring.HasPrefix(">>> import gorella", restring.Expr(`[><]`), restring.Literal(" "))
//	// true
func HasPrefix(s string, cs ...Criterion) bool {
	for _, c := range cs {
		if hasPrefix(s, c) {
			return true
		}
	}
	return false
}

// HasPrefixIn is HasPrefix applied to s[start:end].
// The region is searched as if it were the whole text, so ^, $ and \b treat
// start and end as text edges.
func HasPrefixIn(s string, start, end int, cs ...Criterion) (bool, error) {
	if err := checkBounds("hasprefix", s, start, end); err != nil {
		return false, err
	}
	return HasPrefix(s[start:end], cs...), nil
}

// HasSuffix reports whether s ends with any of cs, tried in order.
//
// A pattern succeeds if it has a match ending exactly at len(s). End anchors
// already present at the end of the expression are replaced, not doubled.
//
// Example:
//
//	restring.HasSuffix("What's your name?", restring.Expr(`[?!.,:;]`)) // true
func HasSuffix(s string, cs ...Criterion) bool {
	for _, c := range cs {
		if hasSuffix(s, c) {
			return true
		}
	}
	return false
}

// HasSuffixIn is HasSuffix applied to s[start:end].
// The region is searched as if it were the whole text, so ^, $ and \b treat
// start and end as text edges.
func HasSuffixIn(s string, start, end int, cs ...Criterion) (bool, error) {
	if err := checkBounds("hassuffix", s, start, end); err != nil {
		return false, err
	}
	return HasSuffix(s[start:end], cs...), nil
}

func hasPrefix(s string, c Criterion) bool {
	switch {
	case c.kind == KindPattern:
		return c.pat.prefix.FindStringIndex(s) != nil
	case c.fold:
		return strcase.HasPrefix(s, c.lit)
	default:
		return strings.HasPrefix(s, c.lit)
	}
}

func hasSuffix(s string, c Criterion) bool {
	switch {
	case c.kind == KindPattern:
		return c.pat.suffix.FindStringIndex(s) != nil
	case c.fold:
		return strcase.HasSuffix(s, c.lit)
	default:
		return strings.HasSuffix(s, c.lit)
	}
}
