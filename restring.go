// Package restring provides substring operations that accept either a literal
// or a compiled regular expression as the matching criterion.
//
// The operations mirror what the strings package offers for literals (find,
// split, partition, count, prefix/suffix tests, replace) and reinterpret each
// one in terms of match spans when the criterion is a pattern, so callers can
// switch between the two without changing the surrounding code:
//
//	words := restring.Split("I have3apples", restring.Expr(`[^a-zA-Z]`), 0)
//	// words = ["I" "have" "apples"]
//
//	before, sep, after := restring.Partition("I have 3 apples", restring.Expr(`\d+`))
//	// before = "I have ", sep = "3", after = " apples"
//
//	restring.HasSuffix("What's your name", restring.Expr(`[?!.,:;]`), restring.Literal("e"))
//	// true
//
// Literal criteria keep Go's native semantics (byte offsets, an empty
// separator matches between UTF-8 sequences). Pattern criteria delegate every
// match to a backend.Engine, github.com/coregx/coregex by default.
//
// All functions are pure: they never modify their inputs and keep no state
// between calls apart from the bounded cache behind Expr and Lookup.
package restring

import (
	"strconv"

	"github.com/coregx/coregex"

	"github.com/coregx/restring/backend"
)

// NotFound is the offset returned by the Find family when nothing matches.
const NotFound = -1

// Span is a half-open interval [Start, End) of byte offsets.
type Span = backend.Span

// Match describes one match passed to computed replacements.
type Match = backend.Match

// Replacement is the substitution used by Replace.
type Replacement = backend.Replacement

// Text returns a Replacement that substitutes s verbatim.
func Text(s string) Replacement {
	return backend.Text(s)
}

// Template returns a Replacement that expands $1, ${name}, $0 and $$ in t.
func Template(t string) Replacement {
	return backend.Template(t)
}

// Func returns a Replacement computed from each match.
func Func(fn func(Match) string) Replacement {
	return backend.Func(fn)
}

// Kind tells which variant a Criterion holds.
type Kind uint8

const (
	// KindLiteral criteria match an exact substring.
	KindLiteral Kind = iota

	// KindPattern criteria match a compiled regular expression.
	KindPattern
)

// String returns "literal" or "pattern".
func (k Kind) String() string {
	if k == KindPattern {
		return "pattern"
	}
	return "literal"
}

// Criterion is what an operation matches: a literal substring or a compiled
// Pattern. It is a small immutable value; copy it freely.
//
// The zero Criterion is Literal("").
type Criterion struct {
	kind Kind
	lit  string
	fold bool
	pat  *Pattern
}

// Literal returns a criterion matching s verbatim.
func Literal(s string) Criterion {
	return Criterion{kind: KindLiteral, lit: s}
}

// FoldLiteral returns a criterion matching s under Unicode simple case
// folding, so FoldLiteral("go") matches "Go" and "GO".
func FoldLiteral(s string) Criterion {
	return Criterion{kind: KindLiteral, lit: s, fold: true}
}

// Regexp returns a criterion matching p. It panics if p is nil.
func Regexp(p *Pattern) Criterion {
	if p == nil {
		panic("restring: Regexp called with nil *Pattern")
	}
	return Criterion{kind: KindPattern, pat: p}
}

// Expr returns a criterion matching the regular expression expr, compiled
// through the package-level cache. It panics if expr is invalid, like
// MustCompile.
func Expr(expr string) Criterion {
	p, err := Lookup(expr, 0)
	if err != nil {
		panic("regexp: Compile(`" + expr + "`): " + err.Error())
	}
	return Regexp(p)
}

// Kind returns the variant held by c.
func (c Criterion) Kind() Kind {
	return c.kind
}

// Pattern returns the pattern of a KindPattern criterion, or nil.
func (c Criterion) Pattern() *Pattern {
	if c.kind != KindPattern {
		return nil
	}
	return c.pat
}

// Value returns the literal text, or the pattern source for KindPattern.
func (c Criterion) Value() string {
	if c.kind == KindPattern {
		return c.pat.String()
	}
	return c.lit
}

// Folded reports whether a literal criterion ignores case.
func (c Criterion) Folded() bool {
	return c.fold
}

// String formats c for diagnostics, e.g. `literal "ab"` or `pattern /\d+/`.
func (c Criterion) String() string {
	switch {
	case c.kind == KindPattern:
		return "pattern /" + c.pat.String() + "/" + c.pat.Flags().String()
	case c.fold:
		return "literal(fold) " + strconv.Quote(c.lit)
	default:
		return "literal " + strconv.Quote(c.lit)
	}
}

// spans returns a criterion able to report match spans. Case-folded
// literals have no fixed match length, so they are turned into an
// equivalent pattern: the one compiled by Cache.FoldLiteral if present,
// else one from the package-level cache. Other criteria are returned
// unchanged.
func (c Criterion) spans() Criterion {
	if c.kind != KindLiteral || !c.fold {
		return c
	}
	if c.lit == "" {
		return Literal("")
	}
	if c.pat != nil {
		return Regexp(c.pat)
	}
	p, err := Lookup(foldExpr(c.lit), IgnoreCase)
	if err != nil {
		// A quoted literal always compiles
		panic("restring: folding " + strconv.Quote(c.lit) + ": " + err.Error())
	}
	return Regexp(p)
}

// foldExpr is the expression matching lit under IgnoreCase.
func foldExpr(lit string) string {
	return coregex.QuoteMeta(lit)
}
