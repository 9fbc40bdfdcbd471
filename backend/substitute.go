package backend

import (
	"strconv"
	"strings"
)

type replacementKind uint8

const (
	replaceText replacementKind = iota
	replaceTemplate
	replaceFunc
)

// Replacement is what a match is substituted with: verbatim text, an
// expansion template or the result of a function of the match.
//
// The zero Replacement is Text(""), which deletes every match.
type Replacement struct {
	kind replacementKind
	text string
	fn   func(Match) string
}

// Text returns a Replacement that substitutes s verbatim, without expanding
// $ references.
func Text(s string) Replacement {
	return Replacement{kind: replaceText, text: s}
}

// Template returns a Replacement that expands t for every match.
//
// Inside t, $1 or ${1} is the first capture group, $name or ${name} a named
// group, $0 the whole match and $$ a literal dollar sign, exactly as in
// regexp.Regexp.Expand. References to missing groups expand to "".
func Template(t string) Replacement {
	return Replacement{kind: replaceTemplate, text: t}
}

// Func returns a Replacement computed by fn from each match.
func Func(fn func(Match) string) Replacement {
	return Replacement{kind: replaceFunc, fn: fn}
}

// IsComputed reports whether the replacement is built from a function.
func (r Replacement) IsComputed() bool {
	return r.kind == replaceFunc
}

// appendTo appends the replacement for m to dst.
func (r Replacement) appendTo(dst []byte, m Match) []byte {
	switch r.kind {
	case replaceTemplate:
		return m.Expand(dst, r.text)
	case replaceFunc:
		return append(dst, r.fn(m)...)
	default:
		return append(dst, r.text...)
	}
}

// Substitute returns a copy of s with the first limit matches of re replaced
// by repl. limit <= 0 replaces every match.
func Substitute(re Regexp, s string, repl Replacement, limit int) string {
	n := -1
	if limit > 0 {
		n = limit
	}
	matches := re.FindAllStringSubmatchIndex(s, n)
	if len(matches) == 0 {
		return s
	}
	return SubstituteMatches(s, matches, re.SubexpNames(), repl)
}

// SubstituteMatches rebuilds s with every match in matches replaced by repl.
// matches must be sorted and non-overlapping, as produced by
// FindAllStringSubmatchIndex.
func SubstituteMatches(s string, matches [][]int, names []string, repl Replacement) string {
	if len(matches) == 0 {
		return s
	}

	result := make([]byte, 0, len(s))
	lastEnd := 0
	for _, idx := range matches {
		// Append text before match
		result = append(result, s[lastEnd:idx[0]]...)
		result = repl.appendTo(result, NewMatch(s, idx, names))
		lastEnd = idx[1]
	}

	// Append remaining text
	result = append(result, s[lastEnd:]...)
	return string(result)
}

// Expand appends template to dst with $ references replaced by the groups of
// m, and returns the result.
func (m Match) Expand(dst []byte, template string) []byte {
	for len(template) > 0 {
		i := strings.IndexByte(template, '$')
		if i < 0 {
			break
		}
		dst = append(dst, template[:i]...)
		template = template[i:]

		// $$ -> $
		if len(template) > 1 && template[1] == '$' {
			dst = append(dst, '$')
			template = template[2:]
			continue
		}

		name, rest, ok := extractRef(template[1:])
		if !ok {
			// Malformed reference, keep the dollar sign as text
			dst = append(dst, '$')
			template = template[1:]
			continue
		}
		template = rest

		if num, err := strconv.Atoi(name); err == nil && num >= 0 {
			dst = append(dst, m.Group(num)...)
		} else {
			dst = append(dst, m.Named(name)...)
		}
	}
	return append(dst, template...)
}

// extractRef parses the group reference at the start of s (just after the
// dollar sign): either {name} or the longest run of word characters.
func extractRef(s string) (name, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	brace := false
	if s[0] == '{' {
		brace = true
		s = s[1:]
	}
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	name = s[:i]
	if brace {
		if i >= len(s) || s[i] != '}' {
			return "", "", false
		}
		i++
	}
	return name, s[i:], true
}

func isWordByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
