// Package literal implements the literal-substring algorithms restring needs
// beyond what the strings package offers.
//
// Everything here follows the strings package conventions: offsets are byte
// offsets, an empty separator matches at every UTF-8 sequence boundary, and
// matching is non-overlapping from the left unless the function says
// otherwise.
package literal

import (
	"strings"
	"unicode/utf8"
)

// Indices returns the [start, end) offsets of successive non-overlapping
// occurrences of sep in s, at most n of them (n < 0 means all).
//
// An empty sep occurs at every UTF-8 sequence boundary, including 0 and
// len(s), mirroring strings.Replace.
//
// Example:
//
//	literal.Indices("a,b,c", ",", -1) // [[1 2] [3 4]]
func Indices(s, sep string, n int) [][]int {
	if n == 0 {
		return nil
	}

	var out [][]int
	if sep == "" {
		i := 0
		for n < 0 || len(out) < n {
			out = append(out, []int{i, i})
			if i >= len(s) {
				break
			}
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
		}
		return out
	}

	off := 0
	for n < 0 || len(out) < n {
		i := strings.Index(s[off:], sep)
		if i < 0 {
			break
		}
		start := off + i
		out = append(out, []int{start, start + len(sep)})
		off = start + len(sep)
	}
	return out
}

// RSplit slices s around sep scanning from the right, performing at most n
// splits (n <= 0 means all). The unsplit remainder is the first element.
//
// Scanning from the right matters when occurrences of sep can overlap:
//
//	literal.RSplit("aaa", "aa", 1) // ["a" ""]
//	strings.SplitN("aaa", "aa", 2) // ["" "a"]
func RSplit(s, sep string, n int) []string {
	if n <= 0 {
		return strings.Split(s, sep)
	}

	if sep == "" {
		parts := strings.Split(s, "")
		if len(parts)-1 <= n {
			return parts
		}
		head := len(parts) - n
		out := make([]string, 0, n+1)
		out = append(out, strings.Join(parts[:head], ""))
		return append(out, parts[head:]...)
	}

	// tail collects pieces right to left
	tail := make([]string, 0, n)
	end := len(s)
	for len(tail) < n {
		i := strings.LastIndex(s[:end], sep)
		if i < 0 {
			break
		}
		tail = append(tail, s[i+len(sep):end])
		end = i
	}

	out := make([]string, 0, len(tail)+1)
	out = append(out, s[:end])
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
