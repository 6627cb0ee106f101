// Package config loads and saves the lexgen configuration file.
package config

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	lexengine "github.com/pradeesh-kumar/lex-engine"
	"github.com/pradeesh-kumar/lex-engine/dfa"
	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

// FileName is the configuration file looked up by default.
const FileName = ".lexgen.yaml"

// Config is the content of a configuration file. Command-line flags
// override it field by field.
type Config struct {
	Spec             string `yaml:"spec"`
	OutputDirectory  string `yaml:"outputDirectory"`
	Template         string `yaml:"template,omitempty"`
	Encoding         string `yaml:"encoding"`
	Verbose          bool   `yaml:"verbose"`
	Minimize         bool   `yaml:"minimize"`
	MaxStates        int    `yaml:"maxStates"`
	ClosureCacheSize int    `yaml:"closureCacheSize"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Spec:             "lexer.spec",
		OutputDirectory:  ".",
		Encoding:         "UTF-8",
		Minimize:         true,
		ClosureCacheSize: dfa.DefaultConfig().ClosureCacheSize,
	}
}

// Load reads the configuration file at path. Fields missing from the file
// keep their Default values; unknown fields are an error.
func Load(path string) (Config, error) {
	c := Default()

	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, &lexerr.Error{Kind: lexerr.Config, Message: "decode " + path, Cause: err}
	}
	return c, c.Validate()
}

// Save writes c to path.
func Save(path string, c Config) error {
	d, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxStates < 0 {
		return lexerr.Configf("maxStates must be >= 0")
	}
	if c.ClosureCacheSize <= 0 {
		return lexerr.Configf("closureCacheSize must be > 0")
	}
	return nil
}

// Engine returns the compilation settings of c.
func (c Config) Engine(logger *zap.Logger) lexengine.Config {
	ec := lexengine.DefaultConfig().
		WithMinimize(c.Minimize).
		WithMaxStates(c.MaxStates).
		WithLogger(logger)
	ec.DFA = ec.DFA.WithClosureCacheSize(c.ClosureCacheSize)
	return ec
}

// GenerateOptions returns the Generate options of c.
func (c Config) GenerateOptions(logger *zap.Logger) lexengine.GenerateOptions {
	return lexengine.GenerateOptions{
		Spec:      c.Spec,
		Encoding:  c.Encoding,
		OutputDir: c.OutputDirectory,
		Template:  c.Template,
		Config:    c.Engine(logger),
	}
}
