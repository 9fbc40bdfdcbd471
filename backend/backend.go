// Package backend defines the contract between restring and the regular
// expression engine it delegates matching to.
//
// restring never matches patterns itself. Compiling, searching and iterating
// matches belong to an Engine, and every operation is expressed through the
// small Regexp surface below. Both *coregex.Regex and the standard library's
// *regexp.Regexp satisfy Regexp without adaptation, so the two engines in this
// package are thin constructors:
//
//	var e backend.Engine = backend.Coregex{}
//	re, err := e.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc := re.FindStringIndex("age: 42") // [5 7]
//
// The package also owns the pieces of substitution that sit on top of raw
// match indices: Match, Replacement and Substitute.
package backend

// Engine compiles pattern source into a Regexp.
//
// Implementations must return compile errors unchanged so callers can
// inspect them with errors.As (both provided engines return *syntax.Error).
type Engine interface {
	// Name identifies the engine in diagnostics.
	Name() string

	// Compile compiles expr using Perl syntax as accepted by regexp/syntax.
	Compile(expr string) (Regexp, error)
}

// Regexp is the matching surface restring relies on.
//
// Implementations must be safe for concurrent use by multiple goroutines.
// Index slices follow the regexp package conventions: pairs of byte offsets,
// -1 for groups that did not participate, n < 0 for "all matches".
type Regexp interface {
	// String returns the source text the Regexp was compiled from.
	String() string

	// SubexpNames returns the capture group names; names[0] is always "".
	// len(SubexpNames())-1 is the number of capture groups.
	SubexpNames() []string

	// FindStringIndex returns the leftmost match in s, or nil.
	FindStringIndex(s string) []int

	// FindAllStringIndex returns successive non-overlapping matches in s.
	FindAllStringIndex(s string, n int) [][]int

	// FindAllStringSubmatchIndex returns successive non-overlapping matches
	// in s together with their capture group offsets.
	FindAllStringSubmatchIndex(s string, n int) [][]int
}

// Span is a half-open interval [Start, End) of byte offsets into a subject.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Shift returns the span moved right by off bytes.
func (s Span) Shift(off int) Span {
	return Span{Start: s.Start + off, End: s.End + off}
}

// NumGroups returns the number of capture groups of re, excluding the
// implicit group 0.
//
// Engines disagree on what NumSubexp counts, so this is derived from
// SubexpNames, which both engines define identically.
func NumGroups(re Regexp) int {
	return len(re.SubexpNames()) - 1
}
