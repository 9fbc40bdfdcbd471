// Package rewrite derives pattern variants from a parsed regular expression.
//
// restring compiles up to three programs next to the caller's pattern: one
// with the whole match wrapped in a retained capture group (for splitting),
// one anchored at the start of the text and one anchored at the end. The
// variants are built on the regexp/syntax tree and printed back to source
// with (*syntax.Regexp).String, which preserves flags such as (?i).
//
// Functions never modify their argument; they return new top-level nodes that
// may share subtrees with the input.
package rewrite

import "regexp/syntax"

// Parse parses expr with Perl syntax, the dialect every backend accepts.
func Parse(expr string) (*syntax.Regexp, error) {
	return syntax.Parse(expr, syntax.Perl)
}

// Group wraps re in a single capture group covering the whole match.
//
// A pre-existing outermost unnamed group is unwrapped first, so `(\d+)` and
// `\d+` both become `(\d+)`. The new group is group 1; groups of re follow it.
func Group(re *syntax.Regexp) *syntax.Regexp {
	inner := re
	if re.Op == syntax.OpCapture && re.Name == "" {
		inner = re.Sub[0]
	}
	return &syntax.Regexp{
		Op:  syntax.OpCapture,
		Cap: 1,
		Sub: []*syntax.Regexp{inner},
	}
}

// AnchorStart returns re required to match at the beginning of the text.
func AnchorStart(re *syntax.Regexp) *syntax.Regexp {
	return &syntax.Regexp{
		Op:  syntax.OpConcat,
		Sub: []*syntax.Regexp{{Op: syntax.OpBeginText}, re},
	}
}

// AnchorEnd returns re required to match at the end of the text.
// Trailing end anchors of re are stripped before \z is appended.
func AnchorEnd(re *syntax.Regexp) *syntax.Regexp {
	return &syntax.Regexp{
		Op:  syntax.OpConcat,
		Sub: []*syntax.Regexp{StripEndAnchors(re), {Op: syntax.OpEndText}},
	}
}

// StripEndAnchors removes $ and \z tokens that end re at the top level.
// Anchors nested inside groups or alternations are left alone.
func StripEndAnchors(re *syntax.Regexp) *syntax.Regexp {
	switch {
	case isEndAnchor(re):
		return &syntax.Regexp{Op: syntax.OpEmptyMatch}
	case re.Op == syntax.OpConcat:
		n := len(re.Sub)
		for n > 0 && isEndAnchor(re.Sub[n-1]) {
			n--
		}
		switch n {
		case len(re.Sub):
			return re
		case 0:
			return &syntax.Regexp{Op: syntax.OpEmptyMatch}
		case 1:
			return re.Sub[0]
		}
		stripped := *re
		stripped.Sub = append([]*syntax.Regexp(nil), re.Sub[:n]...)
		return &stripped
	}
	return re
}

func isEndAnchor(re *syntax.Regexp) bool {
	return re.Op == syntax.OpEndText || re.Op == syntax.OpEndLine
}
