package restring_test

import (
	"fmt"
	"strings"

	"github.com/coregx/restring"
	"github.com/coregx/restring/backend"
)

// ExampleSplit demonstrates splitting around pattern matches.
func ExampleSplit() {
	c := restring.Expr(`[^a-zA-Z]`)
	fmt.Printf("%q\n", restring.Split("I have3apples", c, 0))
	fmt.Printf("%q\n", restring.Split("I have3apples", c, 1))
	// Output:
	// ["I" "have" "apples"]
	// ["I" "have3apples"]
}

// ExampleRSplit demonstrates keeping only the splits nearest the end.
func ExampleRSplit() {
	fmt.Printf("%q\n", restring.RSplit("I have3apples", restring.Expr(`[^a-zA-Z]`), 1))
	fmt.Printf("%q\n", restring.RSplit("a,b,c", restring.Literal(","), 1))
	// Output:
	// ["I have" "apples"]
	// ["a,b" "c"]
}

// ExampleSplitKeep demonstrates that kept separators rebuild the subject.
func ExampleSplitKeep() {
	parts := restring.SplitKeep("a1b22c", restring.Expr(`\d+`), 0)
	fmt.Printf("%q\n", parts)
	fmt.Println(strings.Join(parts, ""))
	// Output:
	// ["a" "1" "b" "22" "c"]
	// a1b22c
}

// ExampleSplitGroups demonstrates interleaving capture groups.
func ExampleSplitGroups() {
	p := restring.MustCompile(`(-)|(\+)`)
	fmt.Printf("%q\n", restring.SplitGroups("a-b+c", p, 0))
	// Output: ["a" "-" "" "b" "" "+" "c"]
}

// ExampleSplitFields demonstrates whitespace splitting with a limit.
func ExampleSplitFields() {
	fmt.Printf("%q\n", restring.SplitFields("  a b  c  ", 1))
	fmt.Printf("%q\n", restring.RSplitFields("  a b  c  ", 1))
	// Output:
	// ["a" "b  c  "]
	// ["  a b" "c"]
}

// ExampleRFind demonstrates finding the last match start.
func ExampleRFind() {
	fmt.Println(restring.RFind("I have 3 apples", restring.Expr(`\d+`)))
	fmt.Println(restring.RFind("I have 3 apples", restring.Expr(`\s+`)))
	fmt.Println(restring.RFind("I have 3 apples", restring.Literal("x")))
	// Output:
	// 7
	// 8
	// -1
}

// ExampleFindIn demonstrates searching a region of the subject.
func ExampleFindIn() {
	i, err := restring.FindIn("a1b2c3", restring.Expr(`\d`), 2, 6)
	fmt.Println(i, err)

	_, err = restring.FindIn("a1b2c3", restring.Expr(`\d`), 4, 2)
	fmt.Println(err)
	// Output:
	// 3 <nil>
	// restring: find: bounds [4:2] out of range for length 6
}

// ExamplePartition demonstrates partitioning around the first match.
func ExamplePartition() {
	before, sep, after := restring.Partition("I have 3 apples", restring.Expr(`\d+`))
	fmt.Printf("%q %q %q\n", before, sep, after)

	before, sep, after = restring.RPartition("key=value=x", restring.Literal("="))
	fmt.Printf("%q %q %q\n", before, sep, after)
	// Output:
	// "I have " "3" " apples"
	// "key=value" "=" "x"
}

// ExampleHasSuffix demonstrates testing several criteria at once.
func ExampleHasSuffix() {
	punct := restring.Expr(`[?!.,:;]`)
	fmt.Println(restring.HasSuffix("What's your name?", punct, restring.Literal("e")))
	fmt.Println(restring.HasSuffix("What's your name", punct, restring.Literal("e")))
	fmt.Println(restring.HasSuffix("What's your nam", punct, restring.Literal("e")))
	// Output:
	// true
	// true
	// false
}

// ExampleHasPrefix demonstrates that patterns must match at offset 0.
func ExampleHasPrefix() {
	c := restring.Expr(`[><]`)
	fmt.Println(restring.HasPrefix(">>> import gorella", c))
	fmt.Println(restring.HasPrefix("a > b", c))
	// Output:
	// true
	// false
}

// ExampleCount demonstrates counting matches.
func ExampleCount() {
	fmt.Println(restring.Count("5 people and 3 apples", restring.Expr(`\d+`)))
	fmt.Println(restring.Count("cheese", restring.Literal("e")))
	// Output:
	// 2
	// 3
}

// ExampleReplace demonstrates the three kinds of replacement.
func ExampleReplace() {
	c := restring.Expr(`(\w+)@(\w+)`)
	s := "bob@home amy@work"

	fmt.Println(restring.Replace(s, c, restring.Text("<hidden>"), 1))
	fmt.Println(restring.Replace(s, c, restring.Template("$2/$1"), 0))
	fmt.Println(restring.Replace(s, c, restring.Func(func(m restring.Match) string {
		return strings.ToUpper(m.Group(1))
	}), 0))
	// Output:
	// <hidden> amy@work
	// home/bob work/amy
	// BOB AMY
}

// ExampleFoldLiteral demonstrates case-insensitive literals.
func ExampleFoldLiteral() {
	c := restring.FoldLiteral("go")
	fmt.Println(restring.Find("Let's GO", c))
	fmt.Println(restring.Replace("Go go GO", c, restring.Text("Rust"), 2))
	// Output:
	// 6
	// Rust Rust GO
}

// ExampleNewSet demonstrates a reusable set of suffixes.
func ExampleNewSet() {
	sources := restring.NewSet(
		restring.Literal(".go"), restring.Literal(".s"), restring.Expr(`_test\.go$`),
	)
	for _, name := range []string{"regex.go", "amd64.s", "README.md"} {
		fmt.Println(name, sources.HasSuffix(name))
	}
	// Output:
	// regex.go true
	// amd64.s true
	// README.md false
}

// ExampleCompileWithConfig demonstrates selecting the stdlib engine.
func ExampleCompileWithConfig() {
	cfg := restring.DefaultConfig()
	cfg.Engine = backend.Stdlib{}

	p, err := restring.CompileWithConfig(`\d+`, restring.IgnoreCase, cfg)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Engine(), p.Flags())
	fmt.Println(restring.Split("a1b22c", restring.Regexp(p), 0))
	// Output:
	// stdlib i
	// [a b c]
}

// ExamplePattern_Matches demonstrates iterating over matches.
func ExamplePattern_Matches() {
	p := restring.MustCompile(`\d+`)
	s := "5 people and 3 apples"
	for sp := range p.Matches(s, 0, len(s)) {
		fmt.Println(sp.Start, s[sp.Start:sp.End])
	}
	// Output:
	// 0 5
	// 13 3
}
