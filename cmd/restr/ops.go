package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/coregx/restring"
)

// operation describes one restr op. many ops accept any positive number of
// criteria; the others take exactly criteria of them.
type operation struct {
	criteria int
	many     bool
	bind     func(cs []restring.Criterion, opts options) func(line string) string
}

// single adapts an op taking one criterion.
func single(fn func(line string, c restring.Criterion, opts options) string) func([]restring.Criterion, options) func(string) string {
	return func(cs []restring.Criterion, opts options) func(string) string {
		c := cs[0]
		return func(line string) string {
			return fn(line, c, opts)
		}
	}
}

func quoted(parts ...string) string {
	return fmt.Sprintf("%q", parts)
}

var operations = map[string]operation{
	"find": {criteria: 1, bind: single(func(line string, c restring.Criterion, _ options) string {
		return strconv.Itoa(restring.Find(line, c))
	})},
	"rfind": {criteria: 1, bind: single(func(line string, c restring.Criterion, _ options) string {
		return strconv.Itoa(restring.RFind(line, c))
	})},
	"count": {criteria: 1, bind: single(func(line string, c restring.Criterion, _ options) string {
		return strconv.Itoa(restring.Count(line, c))
	})},
	"split": {criteria: 1, bind: single(func(line string, c restring.Criterion, o options) string {
		return quoted(restring.Split(line, c, o.n)...)
	})},
	"splitkeep": {criteria: 1, bind: single(func(line string, c restring.Criterion, o options) string {
		return quoted(restring.SplitKeep(line, c, o.n)...)
	})},
	"rsplit": {criteria: 1, bind: single(func(line string, c restring.Criterion, o options) string {
		return quoted(restring.RSplit(line, c, o.n)...)
	})},
	"partition": {criteria: 1, bind: single(func(line string, c restring.Criterion, _ options) string {
		return quoted(restring.Partition(line, c))
	})},
	"rpartition": {criteria: 1, bind: single(func(line string, c restring.Criterion, _ options) string {
		return quoted(restring.RPartition(line, c))
	})},
	"replace": {criteria: 1, bind: func(cs []restring.Criterion, o options) func(string) string {
		c, repl := cs[0], restring.Template(o.repl)
		return func(line string) string {
			return restring.Replace(line, c, repl, o.n)
		}
	}},
	"fields": {bind: func(_ []restring.Criterion, o options) func(string) string {
		return func(line string) string {
			return quoted(restring.SplitFields(line, o.n)...)
		}
	}},
	"rfields": {bind: func(_ []restring.Criterion, o options) func(string) string {
		return func(line string) string {
			return quoted(restring.RSplitFields(line, o.n)...)
		}
	}},
	"hasprefix": {many: true, bind: func(cs []restring.Criterion, _ options) func(string) string {
		set := restring.NewSet(cs...)
		return func(line string) string {
			return strconv.FormatBool(set.HasPrefix(line))
		}
	}},
	"hassuffix": {many: true, bind: func(cs []restring.Criterion, _ options) func(string) string {
		set := restring.NewSet(cs...)
		return func(line string) string {
			return strconv.FormatBool(set.HasSuffix(line))
		}
	}},
}

func opNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// build resolves opts into the function applied to each input line.
func build(opts options) (func(string) string, error) {
	op, ok := operations[opts.op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", opts.op)
	}

	n := len(opts.specs)
	switch {
	case op.many && n == 0:
		return nil, fmt.Errorf("%s needs at least one -e or -l criterion", opts.op)
	case !op.many && n != op.criteria:
		return nil, fmt.Errorf("%s takes %d criteria, got %d", opts.op, op.criteria, n)
	}

	cs, err := criteria(opts)
	if err != nil {
		return nil, err
	}
	return op.bind(cs, opts), nil
}
