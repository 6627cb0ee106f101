// Package lexengine generates table-driven lexers from regular expressions.
//
// A lexer is described by an ordered list of rules, each a pattern and the
// action to run when the pattern matches. Compilation runs the classic
// pipeline:
//
//	patterns -> alphabet -> NFA -> DFA -> minimized DFA
//
// and the result can either drive a scanner directly or be emitted as the
// source of a standalone lexer.
//
// Basic usage:
//
//	lx, err := lexengine.Compile([]nfa.Rule{
//	    {Pattern: "if", Action: "IF"},
//	    {Pattern: "[a-z]+", Action: "IDENT"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	action, ok := lx.Match("if") // "IF", true
//
// When two rules match the same input, the one listed first wins. When one
// rule matches a longer prefix of the input, a scanner prefers it regardless
// of order.
//
// Generating a lexer from a specification file:
//
//	path, err := lexengine.Generate(lexengine.GenerateOptions{
//	    Spec:      "lexer.spec",
//	    OutputDir: "internal/lexer",
//	    Config:    lexengine.DefaultConfig(),
//	})
//
// Patterns support literals, escapes, character classes [a-z] and [^"],
// the wildcard '.', grouping, alternation '|' and the quantifiers '*', '+'
// and '?'. Counted repetition, anchors and backreferences are not
// supported.
package lexengine

import (
	"errors"
	"io"

	"github.com/pradeesh-kumar/lex-engine/dfa"
	"github.com/pradeesh-kumar/lex-engine/emit"
	"github.com/pradeesh-kumar/lex-engine/lexerr"
	"github.com/pradeesh-kumar/lex-engine/nfa"
	"github.com/pradeesh-kumar/lex-engine/scanner"
	"github.com/pradeesh-kumar/lex-engine/spec"
)

// Lexer is a compiled rule set.
//
// A Lexer is immutable and safe to use concurrently from multiple
// goroutines.
type Lexer struct {
	rules     []nfa.Rule
	nfa       *nfa.NFA
	dfa       *dfa.DFA
	minimized bool
}

// Compile compiles rules with the default configuration.
func Compile(rules []nfa.Rule) (*Lexer, error) {
	return CompileWithConfig(rules, DefaultConfig())
}

// MustCompile compiles rules and panics if it fails.
//
// This is useful for rule sets known to be valid at compile time.
func MustCompile(rules ...nfa.Rule) *Lexer {
	lx, err := Compile(rules)
	if err != nil {
		panic("lexengine: Compile: " + err.Error())
	}
	return lx
}

// CompileWithConfig compiles rules with a custom configuration.
func CompileWithConfig(rules []nfa.Rule, config Config) (*Lexer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger := config.logger()

	n, err := nfa.Compile(rules, logger)
	if err != nil {
		return nil, err
	}

	dc := config.DFA
	if dc.Logger == nil {
		dc.Logger = logger
	}
	d, err := dfa.Determinize(n, dc)
	if err != nil {
		return nil, err
	}

	lx := &Lexer{
		rules: append([]nfa.Rule(nil), rules...),
		nfa:   n,
		dfa:   d,
	}
	if config.Minimize {
		lx.dfa, lx.minimized = dfa.Minimize(d, logger)
	}
	return lx, nil
}

// CompileSpec compiles the rules of s. Errors attributed to a pattern also
// carry the line of the rule in the specification file.
func CompileSpec(s *spec.Spec, config Config) (*Lexer, error) {
	lx, err := CompileWithConfig(s.Rules, config)
	if err != nil {
		return nil, withLine(err, s)
	}
	return lx, nil
}

func withLine(err error, s *spec.Spec) error {
	var le *lexerr.Error
	if !errors.As(err, &le) || le.Pattern == "" || le.Line != 0 {
		return err
	}
	for i, r := range s.Rules {
		if r.Pattern == le.Pattern {
			c := *le
			c.Line = s.Line(i)
			return &c
		}
	}
	return err
}

// Rules returns the rules the lexer was compiled from.
func (l *Lexer) Rules() []nfa.Rule {
	return append([]nfa.Rule(nil), l.rules...)
}

// Alphabet returns the input alphabet.
func (l *Lexer) Alphabet() *nfa.Alphabet {
	return l.nfa.Alphabet()
}

// NFA returns the combined NFA of all rules.
func (l *Lexer) NFA() *nfa.NFA {
	return l.nfa
}

// DFA returns the final automaton, minimized if the configuration asked for
// it and equivalent states were found.
func (l *Lexer) DFA() *dfa.DFA {
	return l.dfa
}

// Minimized reports whether minimization merged any states.
func (l *Lexer) Minimized() bool {
	return l.minimized
}

// Match reports the action of the highest-priority rule matching all of
// input.
func (l *Lexer) Match(input string) (nfa.Action, bool) {
	return l.dfa.Accepts(input)
}

// Tables returns the automaton in the form embedded in generated lexers.
func (l *Lexer) Tables() (scanner.Tables, error) {
	return emit.Tables(l.dfa)
}

// Lexeme is one match reported by Scan.
type Lexeme struct {
	Action nfa.Action
	Value  string
	Line   int
	Column int
}

// Scan splits all of r into lexemes using longest match.
func (l *Lexer) Scan(r io.Reader) ([]Lexeme, error) {
	t, err := l.Tables()
	if err != nil {
		return nil, err
	}
	s, err := scanner.New(r, t)
	if err != nil {
		return nil, err
	}
	var out []Lexeme
	for {
		state, err := s.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		a, _ := l.dfa.Action(state)
		out = append(out, Lexeme{Action: a, Value: s.Value(), Line: s.Line(), Column: s.Column()})
	}
}

// GenerateOptions configures Generate.
type GenerateOptions struct {
	// Spec is the path of the specification file.
	Spec string

	// Encoding is the IANA charset name of the specification file.
	// Empty means UTF-8.
	Encoding string

	// OutputDir receives the generated source.
	OutputDir string

	// Template is the path of a custom template; empty selects the built-in
	// Go template.
	Template string

	Config Config
}

// Generate parses a specification file, compiles it and writes the lexer
// source. It returns the path of the written file.
func Generate(opts GenerateOptions) (string, error) {
	s, err := spec.ParseFile(opts.Spec, opts.Encoding)
	if err != nil {
		return "", err
	}
	lx, err := CompileSpec(s, opts.Config)
	if err != nil {
		return "", err
	}
	return emit.Generate(s, lx.dfa, emit.Options{
		OutputDir: opts.OutputDir,
		Template:  opts.Template,
		Logger:    opts.Config.logger(),
	})
}
