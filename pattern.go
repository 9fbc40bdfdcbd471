package restring

import (
	"iter"
	"regexp/syntax"
	"strings"

	"github.com/coregx/restring/backend"
	"github.com/coregx/restring/internal/rewrite"
)

// Flags modify how a pattern matches. They are applied as inline flags in
// front of the expression, so Compile(`a`, IgnoreCase) behaves like
// Compile(`(?i)a`).
type Flags uint8

const (
	// IgnoreCase matches letters case-insensitively (?i).
	IgnoreCase Flags = 1 << iota

	// Multiline lets ^ and $ match at line boundaries (?m).
	Multiline

	// DotAll lets . match \n (?s).
	DotAll

	// Ungreedy swaps the meaning of x* and x*?, x+ and x+?, ... (?U).
	Ungreedy
)

// String returns the inline flag letters, e.g. "im".
func (f Flags) String() string {
	var b strings.Builder
	if f&IgnoreCase != 0 {
		b.WriteByte('i')
	}
	if f&Multiline != 0 {
		b.WriteByte('m')
	}
	if f&DotAll != 0 {
		b.WriteByte('s')
	}
	if f&Ungreedy != 0 {
		b.WriteByte('U')
	}
	return b.String()
}

// inline returns the flag group prepended to the expression, or "".
func (f Flags) inline() string {
	letters := f.String()
	if letters == "" {
		return ""
	}
	return "(?" + letters + ")"
}

// Pattern is a compiled regular expression used as a matching criterion.
//
// Next to the caller's expression a Pattern holds three derived programs,
// compiled once by Compile:
//   - grouped: the whole match wrapped in a retained capture group, used by
//     the split family
//   - prefix: the expression anchored at the start of the text, used by
//     MatchAt and HasPrefix
//   - suffix: the expression with trailing end anchors replaced by \z, used
//     by HasSuffix
//
// A Pattern is safe to use concurrently from multiple goroutines.
type Pattern struct {
	expr   string
	flags  Flags
	engine string

	re      backend.Regexp
	grouped backend.Regexp
	prefix  backend.Regexp
	suffix  backend.Regexp
}

// Compile compiles a regular expression with the default engine.
//
// Syntax is Perl-compatible (same as Go's stdlib regexp).
//
// Example:
//
//	p, err := restring.Compile(`[^a-zA-Z]`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	restring.Split("I have3apples", restring.Regexp(p), 0) // ["I" "have" "apples"]
func Compile(expr string) (*Pattern, error) {
	return CompileWithConfig(expr, 0, DefaultConfig())
}

// CompileFlags compiles expr with flags using the default engine.
func CompileFlags(expr string, flags Flags) (*Pattern, error) {
	return CompileWithConfig(expr, flags, DefaultConfig())
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
//
// Example:
//
//	var digits = restring.MustCompile(`\d+`)
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic("regexp: Compile(`" + expr + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles expr with flags using cfg.Engine.
//
// Compile errors come back as *PatternError wrapping the engine's error.
func CompileWithConfig(expr string, flags Flags, cfg Config) (*Pattern, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine := cfg.Engine

	src := flags.inline() + expr
	re, err := engine.Compile(src)
	if err != nil {
		return nil, &PatternError{Op: "compile", Expr: expr, Err: err}
	}
	tree, err := rewrite.Parse(src)
	if err != nil {
		return nil, &PatternError{Op: "compile", Expr: expr, Err: err}
	}

	p := &Pattern{
		expr:   expr,
		flags:  flags,
		engine: engine.Name(),
		re:     re,
	}
	if p.grouped, err = derive(engine, "split", expr, rewrite.Group(tree)); err != nil {
		return nil, err
	}
	if p.prefix, err = derive(engine, "hasprefix", expr, rewrite.AnchorStart(tree)); err != nil {
		return nil, err
	}
	if p.suffix, err = derive(engine, "hassuffix", expr, rewrite.AnchorEnd(tree)); err != nil {
		return nil, err
	}
	return p, nil
}

// derive compiles a rewritten program, attributing failures to op.
func derive(engine backend.Engine, op, expr string, tree *syntax.Regexp) (backend.Regexp, error) {
	re, err := engine.Compile(tree.String())
	if err != nil {
		return nil, &PatternError{Op: op, Expr: expr, Err: err}
	}
	return re, nil
}

// String returns the source text used to compile the pattern, without flags.
func (p *Pattern) String() string {
	return p.expr
}

// Flags returns the flags the pattern was compiled with.
func (p *Pattern) Flags() Flags {
	return p.flags
}

// Engine returns the name of the engine that compiled the pattern.
func (p *Pattern) Engine() string {
	return p.engine
}

// NumSubexp returns the number of capture groups in the caller's expression.
// Group 0, the entire match, is not counted, as in stdlib regexp.
func (p *Pattern) NumSubexp() int {
	return backend.NumGroups(p.re)
}

// SubexpNames returns the names of the capture groups; names[0] is always "".
// The slice is shared and must not be modified.
func (p *Pattern) SubexpNames() []string {
	return p.re.SubexpNames()
}

// MatchAt reports the match of p that starts exactly at pos, if any.
// pos must be within [0, len(s)].
//
// Example:
//
//	p := restring.MustCompile(`\d+`)
//	sp, ok := p.MatchAt("ab12", 2) // {2 4} true
func (p *Pattern) MatchAt(s string, pos int) (Span, bool) {
	loc := p.prefix.FindStringIndex(s[pos:])
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: pos + loc[0], End: pos + loc[1]}, true
}

// Search returns the leftmost match of p inside s[start:end].
// The region must satisfy 0 <= start <= end <= len(s); it is searched as if
// it were the whole text, so ^, $ and \b see its edges as text edges.
func (p *Pattern) Search(s string, start, end int) (Span, bool) {
	loc := p.re.FindStringIndex(s[start:end])
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: start + loc[0], End: start + loc[1]}, true
}

// Matches returns the successive non-overlapping matches of p inside
// s[start:end], left to right. The sequence is finite and may be ranged over
// any number of times.
//
// Example:
//
//	p := restring.MustCompile(`\d+`)
//	for sp := range p.Matches("5 people and 3 apples", 0, 21) {
//	    fmt.Println(sp.Start) // 0, then 13
//	}
func (p *Pattern) Matches(s string, start, end int) iter.Seq[Span] {
	region := s[start:end]
	return func(yield func(Span) bool) {
		for _, loc := range p.re.FindAllStringIndex(region, -1) {
			if !yield(Span{Start: start + loc[0], End: start + loc[1]}) {
				return
			}
		}
	}
}

// FindAll returns the text of successive matches of p in s.
// If n > 0, it returns at most n matches. If n <= 0, it returns all matches.
func (p *Pattern) FindAll(s string, n int) []string {
	if n <= 0 {
		n = -1
	}
	locs := p.re.FindAllStringIndex(s, n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// Substitute returns a copy of s with the first limit matches of p replaced
// by repl; limit <= 0 replaces every match.
func (p *Pattern) Substitute(s string, repl Replacement, limit int) string {
	return backend.Substitute(p.re, s, repl, limit)
}

// separators returns the spans of group 1 of the grouped program, which is
// the whole match, for at most n matches (n <= 0 means all).
//
// coregex leaves group 1 unset (-1) for an empty match at the end of the
// text; the whole-match span is used then, which group 1 equals anyway.
func (p *Pattern) separators(s string, n int) []Span {
	if n <= 0 {
		n = -1
	}
	matches := p.grouped.FindAllStringSubmatchIndex(s, n)
	seps := make([]Span, len(matches))
	for i, idx := range matches {
		if len(idx) < 4 || idx[2] < 0 {
			seps[i] = Span{Start: idx[0], End: idx[1]}
			continue
		}
		seps[i] = Span{Start: idx[2], End: idx[3]}
	}
	return seps
}
