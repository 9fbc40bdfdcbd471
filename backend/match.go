package backend

// Match describes one match of a pattern (or literal) in a subject: the
// overall span, the spans of its capture groups and the group names.
//
// A Match borrows the subject; it does not copy it.
type Match struct {
	subject string
	index   []int
	names   []string
}

// NewMatch builds a Match from a submatch index slice as returned by
// FindAllStringSubmatchIndex. names may be nil when groups are unnamed.
func NewMatch(subject string, index []int, names []string) Match {
	return Match{subject: subject, index: index, names: names}
}

// Start returns the byte offset where the match begins.
func (m Match) Start() int {
	return m.index[0]
}

// End returns the byte offset just past the match.
func (m Match) End() int {
	return m.index[1]
}

// Span returns the match as a Span.
func (m Match) Span() Span {
	return Span{Start: m.index[0], End: m.index[1]}
}

// Text returns the matched text.
func (m Match) Text() string {
	return m.subject[m.index[0]:m.index[1]]
}

// NumGroups returns the number of capture groups, excluding group 0.
func (m Match) NumGroups() int {
	return len(m.index)/2 - 1
}

// GroupSpan returns the span of group i. The second result is false when the
// group does not exist or did not participate in the match.
func (m Match) GroupSpan(i int) (Span, bool) {
	if i < 0 || 2*i+1 >= len(m.index) || m.index[2*i] < 0 {
		return Span{}, false
	}
	return Span{Start: m.index[2*i], End: m.index[2*i+1]}, true
}

// Group returns the text of group i, or "" when the group did not
// participate. Group(0) is the whole match.
func (m Match) Group(i int) string {
	sp, ok := m.GroupSpan(i)
	if !ok {
		return ""
	}
	return m.subject[sp.Start:sp.End]
}

// Named returns the text of the first group called name, or "".
func (m Match) Named(name string) string {
	if name == "" {
		return ""
	}
	for i, n := range m.names {
		if n == name {
			return m.Group(i)
		}
	}
	return ""
}
