package dfa

import (
	"go.uber.org/zap"

	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

// Config configures DFA generation.
type Config struct {
	// MaxStates is the maximum number of DFA states subset construction may
	// create before giving up with a Limit error.
	//
	// Default: 0 (unlimited)
	//
	// Lexer grammars rarely exceed a few thousand states; a limit guards
	// against patterns like (a|b)*a(a|b)(a|b)(a|b) whose DFA grows
	// exponentially with the number of trailing groups.
	MaxStates int

	// ClosureCacheSize is the number of NFA state sets whose epsilon
	// closure is remembered during one generation run.
	//
	// Default: 4,096 sets
	//
	// Closures of single NFA states are always memoized; this bounds only
	// the memo of whole state sets, which is the one that can grow with the
	// input.
	ClosureCacheSize int

	// Logger receives progress messages. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxStates:        0,
		ClosureCacheSize: 4096,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxStates < 0 {
		return lexerr.Configf("MaxStates must be >= 0")
	}
	if c.ClosureCacheSize <= 0 {
		return lexerr.Configf("ClosureCacheSize must be > 0")
	}
	return nil
}

// WithMaxStates returns a new config with the specified state limit
func (c Config) WithMaxStates(maxStates int) Config {
	c.MaxStates = maxStates
	return c
}

// WithClosureCacheSize returns a new config with the specified cache size
func (c Config) WithClosureCacheSize(size int) Config {
	c.ClosureCacheSize = size
	return c
}

// WithLogger returns a new config logging to logger
func (c Config) WithLogger(logger *zap.Logger) Config {
	c.Logger = logger
	return c
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
