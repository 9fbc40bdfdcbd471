// Command restr applies one restring operation to every line of its input.
//
// Usage:
//
//	restr [flags] <op>
//
// Criteria are given with -e (pattern) and -l (literal), in any order and as
// many times as the operation accepts; -i makes all of them case-insensitive.
// Each input line produces one output line:
//
//	$ printf 'I have3apples\n' | restr -e '[^a-zA-Z]' split
//	["I" "have" "apples"]
//	$ printf 'What is it?\n' | restr -e '[?!.]' -l e hassuffix
//	true
//
// Operations: find, rfind, count, split, splitkeep, rsplit, fields, rfields,
// partition, rpartition, hasprefix, hassuffix, replace.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/coregx/restring"
	"github.com/coregx/restring/backend"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// criterionSpec is one -e or -l flag, kept in command-line order.
type criterionSpec struct {
	pattern bool
	value   string
}

// criteriaFlag collects -e and -l values into a shared ordered list.
type criteriaFlag struct {
	specs   *[]criterionSpec
	pattern bool
}

func (f criteriaFlag) String() string {
	if f.specs == nil {
		return ""
	}
	vals := make([]string, 0, len(*f.specs))
	for _, s := range *f.specs {
		if s.pattern == f.pattern {
			vals = append(vals, s.value)
		}
	}
	return strings.Join(vals, ",")
}

func (f criteriaFlag) Set(v string) error {
	*f.specs = append(*f.specs, criterionSpec{pattern: f.pattern, value: v})
	return nil
}

// options holds the parsed command line.
type options struct {
	op         string
	specs      []criterionSpec
	ignoreCase bool
	n          int
	repl       string
	engine     string
	logLevel   string
	logFile    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes restr with args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "restr: %v\n", err)
		return exitUsage
	}

	logger, closeLog := newLogger(stderr, opts.logLevel, opts.logFile)
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(stderr, "restr: closing log file: %v\n", err)
		}
	}()

	apply, err := build(opts)
	if err != nil {
		logger.Error("invalid arguments", slog.String("op", opts.op), slog.Any("error", err))
		return exitUsage
	}
	logger.Debug("starting",
		slog.String("op", opts.op),
		slog.Int("criteria", len(opts.specs)),
		slog.String("engine", opts.engine),
		slog.Int("n", opts.n),
	)

	out := bufio.NewWriter(stdout)
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lines := 0
	for scanner.Scan() {
		lines++
		if _, err := fmt.Fprintln(out, apply(scanner.Text())); err != nil {
			logger.Error("write failed", slog.Int("line", lines), slog.Any("error", err))
			return exitError
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("read failed", slog.Int("line", lines+1), slog.Any("error", err))
		return exitError
	}
	if err := out.Flush(); err != nil {
		logger.Error("write failed", slog.Any("error", err))
		return exitError
	}

	logger.Debug("done", slog.String("op", opts.op), slog.Int("lines", lines))
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("restr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(criteriaFlag{specs: &opts.specs, pattern: true}, "e", "regular expression criterion (repeatable)")
	fs.Var(criteriaFlag{specs: &opts.specs}, "l", "literal criterion (repeatable)")
	fs.BoolVar(&opts.ignoreCase, "i", false, "match case-insensitively")
	fs.IntVar(&opts.n, "n", 0, "maximum splits or replacements; 0 means all")
	fs.StringVar(&opts.repl, "r", "", "replacement template for replace ($1, ${name}, $$)")
	fs.StringVar(&opts.engine, "engine", "coregex", "pattern engine: coregex or stdlib")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this rotating file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: restr [flags] <op>")
		fmt.Fprintln(stderr, "ops: "+strings.Join(opNames(), ", "))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("expected exactly one operation")
	}
	opts.op = fs.Arg(0)
	return opts, nil
}

// engineByName returns the backend selected by -engine.
func engineByName(name string) (backend.Engine, error) {
	switch name {
	case "coregex":
		return backend.Coregex{}, nil
	case "stdlib":
		return backend.Stdlib{}, nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

// criteria turns the collected specs into restring criteria, compiling
// patterns through a cache bound to the selected engine.
func criteria(opts options) ([]restring.Criterion, error) {
	engine, err := engineByName(opts.engine)
	if err != nil {
		return nil, err
	}
	cfg := restring.DefaultConfig()
	cfg.Engine = engine
	cache, err := restring.NewCache(cfg)
	if err != nil {
		return nil, err
	}

	var flags restring.Flags
	if opts.ignoreCase {
		flags |= restring.IgnoreCase
	}

	cs := make([]restring.Criterion, 0, len(opts.specs))
	for _, s := range opts.specs {
		switch {
		case s.pattern:
			p, err := cache.Compile(s.value, flags)
			if err != nil {
				return nil, err
			}
			cs = append(cs, restring.Regexp(p))
		case opts.ignoreCase:
			c, err := cache.FoldLiteral(s.value)
			if err != nil {
				return nil, err
			}
			cs = append(cs, c)
		default:
			cs = append(cs, restring.Literal(s.value))
		}
	}
	return cs, nil
}
