package literal

import (
	"unicode"
	"unicode/utf8"
)

// Fields splits s around runs of white space, performing at most n splits
// (n <= 0 means all). Leading white space is ignored; when the limit is hit
// the remainder is returned with its leading white space removed and its
// trailing white space kept.
//
// With n <= 0 the result equals strings.Fields(s).
//
// Example:
//
//	literal.Fields("  a b  c  ", 1) // ["a" "b  c  "]
func Fields(s string, n int) []string {
	var out []string
	i := skipSpace(s, 0)
	for i < len(s) {
		if n > 0 && len(out) == n {
			out = append(out, s[i:])
			break
		}
		j := i
		for j < len(s) {
			r, size := utf8.DecodeRuneInString(s[j:])
			if unicode.IsSpace(r) {
				break
			}
			j += size
		}
		out = append(out, s[i:j])
		i = skipSpace(s, j)
	}
	if out == nil {
		return []string{}
	}
	return out
}

// RFields is Fields scanning from the right: the last n fields are split off
// and the remainder, with trailing white space removed, comes first.
//
// Example:
//
//	literal.RFields("  a b  c  ", 1) // ["  a b" "c"]
func RFields(s string, n int) []string {
	if n <= 0 {
		return Fields(s, 0)
	}

	// tail collects fields right to left
	var tail []string
	j := skipSpaceBack(s, len(s))
	for j > 0 {
		if len(tail) == n {
			break
		}
		i := j
		for i > 0 {
			r, size := utf8.DecodeLastRuneInString(s[:i])
			if unicode.IsSpace(r) {
				break
			}
			i -= size
		}
		tail = append(tail, s[i:j])
		j = skipSpaceBack(s, i)
	}

	out := make([]string, 0, len(tail)+1)
	if j > 0 {
		out = append(out, s[:j])
	}
	for k := len(tail) - 1; k >= 0; k-- {
		out = append(out, tail[k])
	}
	return out
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func skipSpaceBack(s string, j int) int {
	for j > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:j])
		if !unicode.IsSpace(r) {
			break
		}
		j -= size
	}
	return j
}
