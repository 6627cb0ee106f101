package lexengine

import (
	"go.uber.org/zap"

	"github.com/pradeesh-kumar/lex-engine/dfa"
)

// Config controls compilation.
type Config struct {
	// DFA configures subset construction. Its Logger defaults to Logger.
	DFA dfa.Config

	// Minimize enables DFA minimization.
	//
	// Default: true
	Minimize bool

	// Logger receives progress messages from every stage. Nil disables
	// logging.
	Logger *zap.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DFA:      dfa.DefaultConfig(),
		Minimize: true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return c.DFA.Validate()
}

// WithMinimize returns a new config with minimization enabled or disabled
func (c Config) WithMinimize(enabled bool) Config {
	c.Minimize = enabled
	return c
}

// WithMaxStates returns a new config with the specified DFA state limit
func (c Config) WithMaxStates(maxStates int) Config {
	c.DFA = c.DFA.WithMaxStates(maxStates)
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
