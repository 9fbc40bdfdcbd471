package backend

import (
	"regexp"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
)

// Coregex compiles patterns with github.com/coregx/coregex.
//
// A nil Config uses coregex.DefaultConfig. Set Config to tune the DFA cache or
// disable prefilters:
//
//	cfg := coregex.DefaultConfig()
//	cfg.MaxDFAStates = 50000
//	e := backend.Coregex{Config: &cfg}
type Coregex struct {
	Config *meta.Config
}

// Name returns "coregex".
func (Coregex) Name() string {
	return "coregex"
}

// Compile compiles expr with coregex.
func (c Coregex) Compile(expr string) (Regexp, error) {
	var (
		re  *coregex.Regex
		err error
	)
	if c.Config == nil {
		re, err = coregex.Compile(expr)
	} else {
		re, err = coregex.CompileWithConfig(expr, *c.Config)
	}
	if err != nil {
		return nil, err
	}
	return re, nil
}

// Stdlib compiles patterns with the standard library regexp package.
//
// It is the reference engine: restring's tests run every operation against
// both engines and expect identical results.
type Stdlib struct {
	// Longest selects leftmost-longest instead of leftmost-first matching.
	Longest bool
}

// Name returns "stdlib".
func (Stdlib) Name() string {
	return "stdlib"
}

// Compile compiles expr with regexp.Compile.
func (s Stdlib) Compile(expr string) (Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	if s.Longest {
		re.Longest()
	}
	return re, nil
}

// Default returns the engine used when none is configured.
func Default() Engine {
	return Coregex{}
}
