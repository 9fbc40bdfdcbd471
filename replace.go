package restring

import (
	"strings"

	"github.com/charlievieth/strcase"

	"github.com/coregx/restring/backend"
	"github.com/coregx/restring/literal"
)

// Count returns the number of non-overlapping matches of c in s.
//
// A literal counts as strings.Count does, so an empty literal counts
// 1 + the number of UTF-8 sequences. A pattern counts the matches the engine
// iterates over.
//
// Example:
//
//	restring.Count("5 people and 3 apples", restring.Expr(`\d+`)) // 2
func Count(s string, c Criterion) int {
	return count(s, c)
}

// CountIn is Count restricted to s[start:end].
// The region is searched as if it were the whole text, so ^, $ and \b treat
// start and end as text edges.
func CountIn(s string, c Criterion, start, end int) (int, error) {
	if err := checkBounds("count", s, start, end); err != nil {
		return 0, err
	}
	return count(s[start:end], c), nil
}

func count(s string, c Criterion) int {
	switch {
	case c.kind == KindPattern:
		return len(c.pat.re.FindAllStringIndex(s, -1))
	case c.fold:
		return strcase.Count(s, c.lit)
	default:
		return strings.Count(s, c.lit)
	}
}

// Replace returns a copy of s with the first limit matches of c replaced by
// repl. limit <= 0 replaces every match.
//
// For literal criteria the literal is group 0 of each match, so Template("[$0]")
// brackets every occurrence and an empty literal matches between UTF-8
// sequences, as in strings.Replace.
//
// Example:
//
//	restring.Replace("I am 5 years old", restring.Expr(`\d+`), restring.Text("6"), 0)
//	// "I am 6 years old"
func Replace(s string, c Criterion, repl Replacement, limit int) string {
	c = c.spans()
	if c.kind == KindPattern {
		return c.pat.Substitute(s, repl, limit)
	}

	n := -1
	if limit > 0 {
		n = limit
	}
	return backend.SubstituteMatches(s, literal.Indices(s, c.lit, n), nil, repl)
}
