package restring

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/coregx/restring/backend"
)

var fuzzPatterns = []string{
	`\d+`,
	`\s+`,
	`[^a-zA-Z]`,
	`,`,
	`[,;]+`,
	`(\w)(\d)`,
	`a|ab`,
	`\bfoo\b`,
	`x*`,
	`,?`,
	`\s*`,
}

var fuzzInputs = []string{
	"I have3apples",
	"I have 3 apples",
	"a,b;c,,d",
	"foo foobar barfoo foo",
	"a1b22c333",
	"",
	"héllo wörld",
}

// matchesEmpty reports whether re can match the empty string. The engines
// place empty matches differently after a non-empty match.
func matchesEmpty(re *regexp.Regexp) bool {
	return re.MatchString("")
}

func seedFuzz(f *testing.F) {
	for _, p := range fuzzPatterns {
		for _, s := range fuzzInputs {
			f.Add(p, s)
		}
	}
}

// FuzzSplitRoundTrip checks that kept separators rebuild the subject for
// every pattern, and that the coregex and stdlib engines split identically
// when the pattern cannot match "".
func FuzzSplitRoundTrip(f *testing.F) {
	seedFuzz(f)

	f.Fuzz(func(t *testing.T, pattern, input string) {
		stdRe, err := regexp.Compile(pattern)
		if err != nil {
			return
		}

		cg, err := Compile(pattern)
		if err != nil {
			t.Fatalf("coregex failed to compile valid pattern %q: %v", pattern, err)
		}
		cfg := DefaultConfig()
		cfg.Engine = backend.Stdlib{}
		std, err := CompileWithConfig(pattern, 0, cfg)
		if err != nil {
			t.Fatalf("stdlib failed to compile valid pattern %q: %v", pattern, err)
		}

		for _, n := range []int{0, 1, 2} {
			for _, p := range []*Pattern{cg, std} {
				kept := SplitKeep(input, Regexp(p), n)
				if got := strings.Join(kept, ""); got != input {
					t.Errorf("%s: Join(SplitKeep(%q, %q, %d)) = %q", p.Engine(), input, pattern, n, got)
				}
				if got := Split(input, Regexp(p), n); len(got) != (len(kept)+1)/2 {
					t.Errorf("%s: Split(%q, %q, %d) = %q, SplitKeep = %q", p.Engine(), input, pattern, n, got, kept)
				}
				if got := RSplit(input, Regexp(p), n); n > 0 && len(got) > n+1 {
					t.Errorf("%s: RSplit(%q, %q, %d) = %q", p.Engine(), input, pattern, n, got)
				}
			}

			if matchesEmpty(stdRe) {
				continue
			}
			cgSplit := Split(input, Regexp(cg), n)
			stdSplit := Split(input, Regexp(std), n)
			if !reflect.DeepEqual(cgSplit, stdSplit) {
				t.Errorf("Split(%q, %q, %d):\n  stdlib: %q\n  coregex: %q",
					input, pattern, n, stdSplit, cgSplit)
			}

			if n == 0 && !reflect.DeepEqual(cgSplit, stdRe.Split(input, -1)) {
				t.Errorf("Split(%q, %q) = %q, regexp.Split = %q",
					input, pattern, cgSplit, stdRe.Split(input, -1))
			}
		}
	})
}

// FuzzRFindMax checks that RFind is the largest match start and Find the
// first one.
func FuzzRFindMax(f *testing.F) {
	seedFuzz(f)

	f.Fuzz(func(t *testing.T, pattern, input string) {
		stdRe, err := regexp.Compile(pattern)
		if err != nil || matchesEmpty(stdRe) {
			return
		}
		p, err := Compile(pattern)
		if err != nil {
			t.Fatalf("coregex failed to compile valid pattern %q: %v", pattern, err)
		}

		first, last := NotFound, NotFound
		for _, loc := range stdRe.FindAllStringIndex(input, -1) {
			if first == NotFound {
				first = loc[0]
			}
			last = max(last, loc[0])
		}

		if got := Find(input, Regexp(p)); got != first {
			t.Errorf("Find(%q, %q) = %d, want %d", input, pattern, got, first)
		}
		if got := RFind(input, Regexp(p)); got != last {
			t.Errorf("RFind(%q, %q) = %d, want %d", input, pattern, got, last)
		}
	})
}

// FuzzLiteral checks literal operations against the strings package.
func FuzzLiteral(f *testing.F) {
	f.Add("a,b,c", ",")
	f.Add("aaaa", "aa")
	f.Add("héllo", "")
	f.Add("", "x")

	f.Fuzz(func(t *testing.T, s, sep string) {
		c := Literal(sep)

		want := strings.Index(s, sep)
		if s == "" {
			want = NotFound
		}
		if got := Find(s, c); got != want {
			t.Errorf("Find(%q, %q) = %d, want %d", s, sep, got, want)
		}
		if got, want := Split(s, c, 0), strings.Split(s, sep); !reflect.DeepEqual(got, want) {
			t.Errorf("Split(%q, %q) = %q, want %q", s, sep, got, want)
		}
		if got := strings.Join(RSplit(s, c, 1), sep); got != s {
			t.Errorf("Join(RSplit(%q, %q, 1)) = %q", s, sep, got)
		}
		if got, want := Replace(s, c, Text("<>"), 0), strings.ReplaceAll(s, sep, "<>"); got != want {
			t.Errorf("Replace(%q, %q) = %q, want %q", s, sep, got, want)
		}
		if got, want := Count(s, c), strings.Count(s, sep); got != want {
			t.Errorf("Count(%q, %q) = %d, want %d", s, sep, got, want)
		}
	})
}
