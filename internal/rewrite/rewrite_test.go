package rewrite

import (
	"regexp"
	"regexp/syntax"
	"testing"
)

func mustParse(t *testing.T, expr string) *syntax.Regexp {
	t.Helper()
	re, err := Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q): %v", expr, err)
	}
	return re
}

func countEndAnchors(re *syntax.Regexp) int {
	n := 0
	if isEndAnchor(re) {
		n++
	}
	for _, sub := range re.Sub {
		n += countEndAnchors(sub)
	}
	return n
}

func TestGroup(t *testing.T) {
	tests := []struct {
		expr   string
		groups int
	}{
		{`\d+`, 1},
		{`(\d+)`, 1},
		{`(a)(b)`, 3},
		{`(?P<n>a)`, 2},
		{`a|b`, 1},
		{``, 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			src := Group(mustParse(t, tt.expr)).String()
			re := regexp.MustCompile(src)
			if got := re.NumSubexp(); got != tt.groups {
				t.Errorf("Group(%q) = %q with %d groups, want %d", tt.expr, src, got, tt.groups)
			}
		})
	}
}

func TestGroupCoversWholeMatch(t *testing.T) {
	src := Group(mustParse(t, `a|bc`)).String()
	re := regexp.MustCompile(src)
	idx := re.FindStringSubmatchIndex("xbc")
	if idx == nil || idx[0] != idx[2] || idx[1] != idx[3] {
		t.Errorf("group 1 of %q does not cover the match: %v", src, idx)
	}
}

func TestGroupDoesNotModifyInput(t *testing.T) {
	re := mustParse(t, `(\d+)`)
	before := re.String()
	Group(re)
	AnchorStart(re)
	AnchorEnd(re)
	if after := re.String(); after != before {
		t.Errorf("input modified: %q -> %q", before, after)
	}
}

func TestAnchorStart(t *testing.T) {
	tests := []struct {
		expr  string
		input string
		want  bool
	}{
		{`[><]`, ">>> import", true},
		{`[><]`, "import >", false},
		{`a|b`, "xb", false},
		{`a|b`, "bx", true},
		{`x*`, "abc", true},
	}

	for _, tt := range tests {
		src := AnchorStart(mustParse(t, tt.expr)).String()
		if got := regexp.MustCompile(src).MatchString(tt.input); got != tt.want {
			t.Errorf("AnchorStart(%q) = %q; MatchString(%q) = %v, want %v",
				tt.expr, src, tt.input, got, tt.want)
		}
	}
}

func TestAnchorEnd(t *testing.T) {
	tests := []struct {
		expr  string
		input string
		want  bool
	}{
		{`[?!.,:;]`, "What's your name?", true},
		{`[?!.,:;]`, "What's your name", false},
		{`[?!.,:;]`, "a?b", false},
		{`e$`, "name", true},
		{`e\z`, "name", true},
		{`(?m)e$`, "name\nx", false},
		{`\$`, "cost $", true},
		{`a|b`, "bx", false},
		{`a|b`, "xb", true},
		{`$`, "anything", true},
	}

	for _, tt := range tests {
		tree := AnchorEnd(mustParse(t, tt.expr))
		src := tree.String()
		if got := regexp.MustCompile(src).MatchString(tt.input); got != tt.want {
			t.Errorf("AnchorEnd(%q) = %q; MatchString(%q) = %v, want %v",
				tt.expr, src, tt.input, got, tt.want)
		}
	}
}

func TestAnchorEndStripsExisting(t *testing.T) {
	for _, expr := range []string{`e$`, `e\z`, `e$$`, `(?m)e$`, `$`} {
		tree := AnchorEnd(mustParse(t, expr))
		if n := countEndAnchors(tree); n != 1 {
			t.Errorf("AnchorEnd(%q) = %q has %d end anchors, want 1", expr, tree.String(), n)
		}
	}
}

func TestStripEndAnchorsKeepsNested(t *testing.T) {
	re := mustParse(t, `(a$)`)
	if got := StripEndAnchors(re); got != re {
		t.Errorf("StripEndAnchors(%q) = %q, want input unchanged", re.String(), got.String())
	}
}
