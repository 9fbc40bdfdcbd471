package literal

import (
	"errors"

	"github.com/coregx/ahocorasick"
)

// ErrEmptyPattern is returned by NewAutomaton for an empty pattern; an empty
// literal matches everywhere and needs no automaton.
var ErrEmptyPattern = errors.New("literal: empty pattern")

// ErrNoPatterns is returned by NewAutomaton when given no patterns.
var ErrNoPatterns = errors.New("literal: no patterns")

// Automaton matches a fixed set of literals in one pass over the subject.
//
// It holds two Aho-Corasick automata: one over the literals and one over the
// byte-reversed literals. The reversed automaton answers suffix questions by
// scanning the reversed tail of the subject, the same trick reverse suffix
// searchers use for patterns. An Automaton is safe for concurrent use.
type Automaton struct {
	forward  *ahocorasick.Automaton
	backward *ahocorasick.Automaton
	longest  int
	count    int
}

// NewAutomaton builds an Automaton over patterns.
func NewAutomaton(patterns []string) (*Automaton, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	fb := ahocorasick.NewBuilder()
	bb := ahocorasick.NewBuilder()
	longest := 0
	for _, p := range patterns {
		if p == "" {
			return nil, ErrEmptyPattern
		}
		fb.AddPattern([]byte(p))
		bb.AddPattern(reverse(p))
		longest = max(longest, len(p))
	}

	forward, err := fb.Build()
	if err != nil {
		return nil, err
	}
	backward, err := bb.Build()
	if err != nil {
		return nil, err
	}

	return &Automaton{
		forward:  forward,
		backward: backward,
		longest:  longest,
		count:    len(patterns),
	}, nil
}

// Len returns the number of patterns.
func (a *Automaton) Len() int {
	return a.count
}

// Find returns the offset of the leftmost occurrence of any pattern in s,
// or -1.
//
// The automaton reports the match that completes first, which need not start
// leftmost: in "abcd" with {"abcd", "bc"} it reports "bc". Every earlier
// occurrence starts before that match and ends within longest bytes of its
// start, so only that window is rescanned for overlapping matches.
func (a *Automaton) Find(s string) int {
	b := []byte(s)
	m := a.forward.Find(b, 0)
	if m == nil {
		return -1
	}
	return leftmost(a.forward, b[:min(len(b), m.Start+a.longest)])
}

// HasPrefix reports whether s begins with any pattern.
func (a *Automaton) HasPrefix(s string) bool {
	// Only the first longest bytes can hold a prefix
	if len(s) > a.longest {
		s = s[:a.longest]
	}
	return leftmost(a.forward, []byte(s)) == 0
}

// HasSuffix reports whether s ends with any pattern.
func (a *Automaton) HasSuffix(s string) bool {
	if len(s) > a.longest {
		s = s[len(s)-a.longest:]
	}
	return leftmost(a.backward, reverse(s)) == 0
}

// leftmost returns the smallest start over all occurrences, overlapping ones
// included, or -1.
func leftmost(ac *ahocorasick.Automaton, b []byte) int {
	start := -1
	for _, m := range ac.FindAllOverlapping(b) {
		if start < 0 || m.Start < start {
			start = m.Start
		}
	}
	return start
}

// reverse returns the bytes of s in reverse order.
func reverse(s string) []byte {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[len(s)-1-i] = s[i]
	}
	return b
}
