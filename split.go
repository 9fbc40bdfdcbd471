package restring

import (
	"strings"

	"github.com/coregx/restring/literal"
)

// Split slices s into the pieces between matches of c, performing at most
// maxsplit splits (maxsplit <= 0 means all). Separators are dropped.
//
// A literal criterion splits like strings.SplitN(s, sep, maxsplit+1). A
// pattern splits around the whole of each match; its own capture groups do
// not add elements (see SplitGroups for that).
//
// Example:
//
//	restring.Split("I have3apples", restring.Expr(`[^a-zA-Z]`), 1)
//	// ["I" "have3apples"]
func Split(s string, c Criterion, maxsplit int) []string {
	c = c.spans()
	if c.kind == KindLiteral {
		if maxsplit <= 0 {
			return strings.Split(s, c.lit)
		}
		return strings.SplitN(s, c.lit, maxsplit+1)
	}
	return cut(s, c.pat.separators(s, maxsplit), false)
}

// SplitKeep is Split with the matched separators kept in place, so the result
// alternates piece, separator, piece, ... and always ends with a piece.
// strings.Join(SplitKeep(s, c, n), "") == s for every input.
//
// Example:
//
//	restring.SplitKeep("a1b22c", restring.Expr(`\d+`), 0)
//	// ["a" "1" "b" "22" "c"]
func SplitKeep(s string, c Criterion, maxsplit int) []string {
	c = c.spans()
	if c.kind == KindPattern {
		return cut(s, c.pat.separators(s, maxsplit), true)
	}

	pieces := Split(s, c, maxsplit)
	if len(pieces) == 0 {
		return pieces
	}
	out := make([]string, 0, 2*len(pieces)-1)
	for i, piece := range pieces {
		if i > 0 {
			out = append(out, c.lit)
		}
		out = append(out, piece)
	}
	return out
}

// SplitGroups splits s around matches of p and interleaves the text of p's
// own capture groups between the pieces, groups of each match in order.
// Groups that did not take part in a match contribute "". A pattern without
// groups yields the same pieces as Split.
//
// Example:
//
//	p := restring.MustCompile(`(-)|(\+)`)
//	restring.SplitGroups("a-b+c", p, 0)
//	// ["a" "-" "" "b" "" "+" "c"]
func SplitGroups(s string, p *Pattern, maxsplit int) []string {
	n := -1
	if maxsplit > 0 {
		n = maxsplit
	}
	groups := p.NumSubexp()
	matches := p.re.FindAllStringSubmatchIndex(s, n)

	out := make([]string, 0, len(matches)*(groups+1)+1)
	prev := 0
	for _, m := range matches {
		out = append(out, s[prev:m[0]])
		for g := 1; g <= groups; g++ {
			if m[2*g] < 0 {
				out = append(out, "")
				continue
			}
			out = append(out, s[m[2*g]:m[2*g+1]])
		}
		prev = m[1]
	}
	return append(out, s[prev:])
}

// RSplit slices s like Split but keeps only the last maxsplit splits, nearest
// the end of s; everything before them is returned unsplit as the first
// piece. maxsplit <= 0 means all, which is the same as Split.
//
// Example:
//
//	restring.RSplit("I have3apples", restring.Expr(`[^a-zA-Z]`), 1)
//	// ["I have" "apples"]
func RSplit(s string, c Criterion, maxsplit int) []string {
	c = c.spans()
	if c.kind == KindLiteral {
		return literal.RSplit(s, c.lit, maxsplit)
	}

	seps := c.pat.separators(s, 0)
	if maxsplit > 0 && len(seps) > maxsplit {
		seps = seps[len(seps)-maxsplit:]
	}
	return cut(s, seps, false)
}

// SplitFields splits s around runs of white space, ignoring leading and
// trailing white space, performing at most maxsplit splits. When the limit is
// hit the remainder keeps its trailing white space. maxsplit <= 0 gives the
// same result as strings.Fields.
func SplitFields(s string, maxsplit int) []string {
	return literal.Fields(s, maxsplit)
}

// RSplitFields is SplitFields keeping the last maxsplit splits.
func RSplitFields(s string, maxsplit int) []string {
	return literal.RFields(s, maxsplit)
}

// Partition splits s at the first match of c, returning the text before it,
// the matched text and the text after it. If c does not occur in s,
// Partition returns s, "", "".
//
// Example:
//
//	restring.Partition("I have 3 apples", restring.Expr(`\d+`))
//	// "I have ", "3", " apples"
func Partition(s string, c Criterion) (before, sep, after string) {
	c = c.spans()
	if c.kind == KindLiteral {
		before, after, found := strings.Cut(s, c.lit)
		if !found {
			return s, "", ""
		}
		return before, c.lit, after
	}

	loc := c.pat.re.FindStringIndex(s)
	if loc == nil {
		return s, "", ""
	}
	return s[:loc[0]], s[loc[0]:loc[1]], s[loc[1]:]
}

// RPartition splits s at the last match of c. If c does not occur in s,
// RPartition returns "", "", s. For patterns the separator is the match RFind
// reports.
func RPartition(s string, c Criterion) (before, sep, after string) {
	c = c.spans()
	if c.kind == KindLiteral {
		i := strings.LastIndex(s, c.lit)
		if i < 0 {
			return "", "", s
		}
		return s[:i], c.lit, s[i+len(c.lit):]
	}

	locs := c.pat.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return "", "", s
	}
	loc := locs[len(locs)-1]
	return s[:loc[0]], s[loc[0]:loc[1]], s[loc[1]:]
}

// cut slices s around seps, which must be ordered and non-overlapping.
// With keep the separators are interleaved with the pieces.
func cut(s string, seps []Span, keep bool) []string {
	size := len(seps) + 1
	if keep {
		size += len(seps)
	}
	out := make([]string, 0, size)

	prev := 0
	for _, sp := range seps {
		out = append(out, s[prev:sp.Start])
		if keep {
			out = append(out, s[sp.Start:sp.End])
		}
		prev = sp.End
	}
	return append(out, s[prev:])
}
