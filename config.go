package restring

import "github.com/coregx/restring/backend"

// Config controls how patterns are compiled and how collections and caches
// are sized.
//
// Example:
//
//	cfg := restring.DefaultConfig()
//	cfg.Engine = backend.Stdlib{} // reference engine instead of coregex
//	p, err := restring.CompileWithConfig(`\d+`, 0, cfg)
type Config struct {
	// Engine compiles every program of a Pattern.
	// Default: backend.Coregex{} with coregex's default configuration
	Engine backend.Engine

	// MinAutomatonLiterals is the number of literal members from which a Set
	// matches its literals through Aho-Corasick automata instead of one by
	// one.
	// Default: 8
	MinAutomatonLiterals int

	// CacheSize bounds the number of compiled patterns a Cache keeps.
	// Default: 512
	CacheSize int
}

// DefaultConfig returns the configuration used by Compile, NewSet, Expr and
// Lookup.
func DefaultConfig() Config {
	return Config{
		Engine:               backend.Default(),
		MinAutomatonLiterals: 8,
		CacheSize:            512,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Engine: non-nil
//   - MinAutomatonLiterals: 1 to 1,024
//   - CacheSize: 1 to 1,000,000
func (c Config) Validate() error {
	if c.Engine == nil {
		return &ConfigError{
			Field:   "Engine",
			Message: "must not be nil",
		}
	}
	if c.MinAutomatonLiterals < 1 || c.MinAutomatonLiterals > 1_024 {
		return &ConfigError{
			Field:   "MinAutomatonLiterals",
			Message: "must be between 1 and 1,024",
		}
	}
	if c.CacheSize < 1 || c.CacheSize > 1_000_000 {
		return &ConfigError{
			Field:   "CacheSize",
			Message: "must be between 1 and 1,000,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "restring: invalid config: " + e.Field + ": " + e.Message
}
