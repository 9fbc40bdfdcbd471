package restring

import (
	"slices"

	"github.com/coregx/restring/literal"
)

// Set is a reusable collection of criteria for the multi-criterion
// operations. It answers the same questions as HasPrefix and HasSuffix with
// several criteria, but prepares them once.
//
// When the set holds at least Config.MinAutomatonLiterals plain (non-empty,
// case-sensitive) literals, those are matched together through an
// Aho-Corasick automaton instead of one strings call each. Other members are
// tried one by one. A Set is safe for concurrent use.
//
// Example:
//
//	exts := restring.NewSet(
//	    restring.Literal(".go"), restring.Literal(".mod"), restring.Expr(`\.s$`),
//	)
//	exts.HasSuffix("regex.go") // true
type Set struct {
	members []Criterion

	// auto matches the plain literals when there are enough of them; rest
	// then holds the remaining members in order.
	auto *literal.Automaton
	rest []Criterion
}

// NewSet returns a Set over cs with the default configuration.
func NewSet(cs ...Criterion) *Set {
	s, err := NewSetWithConfig(DefaultConfig(), cs...)
	if err != nil {
		// The default configuration always validates
		panic("restring: NewSet: " + err.Error())
	}
	return s
}

// NewSetWithConfig returns a Set over cs using cfg.MinAutomatonLiterals.
func NewSetWithConfig(cfg Config, cs ...Criterion) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Set{members: slices.Clone(cs)}

	var lits []string
	var rest []Criterion
	for _, c := range cs {
		if c.kind == KindLiteral && !c.fold && c.lit != "" {
			lits = append(lits, c.lit)
			continue
		}
		rest = append(rest, c)
	}
	if len(lits) < cfg.MinAutomatonLiterals {
		return s, nil
	}

	auto, err := literal.NewAutomaton(lits)
	if err != nil {
		// Unreachable for non-empty literals; match one by one instead
		return s, nil
	}
	s.auto = auto
	s.rest = rest
	return s, nil
}

// Len returns the number of criteria in the set.
func (s *Set) Len() int {
	return len(s.members)
}

// Members returns a copy of the criteria in the set, in order.
func (s *Set) Members() []Criterion {
	return slices.Clone(s.members)
}

// HasPrefix reports whether str begins with any member of the set.
func (s *Set) HasPrefix(str string) bool {
	if s.auto == nil {
		return HasPrefix(str, s.members...)
	}
	return s.auto.HasPrefix(str) || HasPrefix(str, s.rest...)
}

// HasSuffix reports whether str ends with any member of the set.
func (s *Set) HasSuffix(str string) bool {
	if s.auto == nil {
		return HasSuffix(str, s.members...)
	}
	return s.auto.HasSuffix(str) || HasSuffix(str, s.rest...)
}

// Find returns the lowest offset at which any member of the set matches in
// str, or NotFound.
func (s *Set) Find(str string) int {
	members := s.members
	best := NotFound
	if s.auto != nil {
		best = s.auto.Find(str)
		members = s.rest
	}
	for _, c := range members {
		i := Find(str, c)
		if i != NotFound && (best == NotFound || i < best) {
			best = i
		}
	}
	return best
}
