package restring

import (
	"sync"

	"github.com/maypok86/otter/v2"
)

type cacheKey struct {
	expr  string
	flags Flags
}

// Cache is a bounded cache of compiled patterns keyed by source and flags.
//
// Compiling a Pattern costs four engine compilations, so code that builds
// criteria from strings on every call should go through a Cache (Expr and
// Lookup use a package-level one). Failed compilations are not cached.
// A Cache is safe for concurrent use.
type Cache struct {
	cfg   Config
	store *otter.Cache[cacheKey, *Pattern]
}

// NewCache returns an empty cache holding at most cfg.CacheSize patterns,
// compiled with cfg.Engine.
func NewCache(cfg Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store := otter.Must(&otter.Options[cacheKey, *Pattern]{
		MaximumSize: cfg.CacheSize,
	})
	return &Cache{cfg: cfg, store: store}, nil
}

// Compile returns the cached pattern for expr and flags, compiling and
// storing it on a miss.
func (c *Cache) Compile(expr string, flags Flags) (*Pattern, error) {
	key := cacheKey{expr: expr, flags: flags}
	if p, ok := c.store.GetIfPresent(key); ok {
		return p, nil
	}
	p, err := CompileWithConfig(expr, flags, c.cfg)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, p)
	return p, nil
}

// FoldLiteral returns FoldLiteral(s) whose span-reporting operations (Split,
// SplitKeep, RSplit, Partition, RPartition, Replace) run on a pattern from
// this cache, and so on its engine. The criterion created by the plain
// FoldLiteral function uses the package-level cache instead.
func (c *Cache) FoldLiteral(s string) (Criterion, error) {
	crit := FoldLiteral(s)
	if s == "" {
		return crit, nil
	}
	p, err := c.Compile(foldExpr(s), IgnoreCase)
	if err != nil {
		return Criterion{}, err
	}
	crit.pat = p
	return crit, nil
}

// Purge drops every cached pattern.
func (c *Cache) Purge() {
	c.store.InvalidateAll()
}

var defaultCache = sync.OnceValue(func() *Cache {
	c, err := NewCache(DefaultConfig())
	if err != nil {
		panic("restring: default cache: " + err.Error())
	}
	return c
})

// Lookup compiles expr with flags through the package-level cache.
//
// Example:
//
//	p, err := restring.Lookup(`\d+`, restring.Multiline)
func Lookup(expr string, flags Flags) (*Pattern, error) {
	return defaultCache().Compile(expr, flags)
}
