package nfa

import (
	"go.uber.org/zap"

	"github.com/pradeesh-kumar/lex-engine/lexerr"
	"github.com/pradeesh-kumar/lex-engine/syntax"
)

// Compiler turns the rules of a lexer into a single NFA.
type Compiler struct {
	alphabet *Alphabet
	logger   *zap.Logger
}

// NewCompiler creates a compiler for rules over alphabet.
// A nil logger disables logging.
func NewCompiler(alphabet *Alphabet, logger *zap.Logger) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{alphabet: alphabet, logger: logger}
}

// Compile builds the alphabet of rules and compiles them.
func Compile(rules []Rule, logger *zap.Logger) (*NFA, error) {
	patterns := make([]string, len(rules))
	for i, r := range rules {
		patterns[i] = r.Pattern
	}
	alphabet, err := BuildAlphabet(patterns)
	if err != nil {
		return nil, err
	}
	return NewCompiler(alphabet, logger).Compile(rules)
}

// Compile returns an NFA accepting the union of rules. Each rule gets its
// own final state, created in rule order.
func (c *Compiler) Compile(rules []Rule) (*NFA, error) {
	if len(rules) == 0 {
		return nil, lexerr.Specf(0, "no rules to compile")
	}
	b := NewBuilder(c.alphabet)
	frags := make([]Fragment, 0, len(rules))
	for _, r := range rules {
		c.logger.Debug("generating NFA fragment", zap.String("pattern", r.Pattern))
		f, err := c.compilePattern(b, r.Pattern)
		if err != nil {
			return nil, lexerr.WithPattern(err, r.Pattern)
		}
		b.Accept(f, r.Action)
		frags = append(frags, f)
	}
	n := b.Build(b.Union(frags))
	c.logger.Info("NFA generated",
		zap.Int("states", n.States()),
		zap.Int("finalStates", n.FinalCount()),
		zap.Int("symbols", c.alphabet.Len()))
	return n, nil
}

func (c *Compiler) compilePattern(b *Builder, pattern string) (Fragment, error) {
	toks, err := syntax.Tokenize(pattern)
	if err != nil {
		return Fragment{}, err
	}
	p := &parser{c: c, b: b, pattern: pattern, toks: toks}
	return p.expr(0)
}

// parser walks the tokens of one pattern, building fragments as it goes.
type parser struct {
	c       *Compiler
	b       *Builder
	pattern string
	toks    []syntax.Token
	pos     int
}

func (p *parser) more() bool {
	return p.pos < len(p.toks)
}

func (p *parser) peek() syntax.Kind {
	return p.toks[p.pos].Kind
}

func (p *parser) errorf(format string, args ...any) error {
	return lexerr.Regexf(p.pattern, format, args...)
}

// expr parses alternatives separated by '|' up to a ')' or the end.
func (p *parser) expr(depth int) (Fragment, error) {
	acc, ok, err := p.sequence(depth)
	if err != nil {
		return Fragment{}, err
	}
	if !ok {
		if p.more() && p.peek() == syntax.Bar {
			return Fragment{}, p.errorf("'|' with no left-hand fragment")
		}
		return Fragment{}, p.errorf("empty expression")
	}
	for p.more() && p.peek() == syntax.Bar {
		p.pos++
		branch, ok, err := p.sequence(depth)
		if err != nil {
			return Fragment{}, err
		}
		if !ok {
			return Fragment{}, p.errorf("'|' with no right-hand fragment")
		}
		acc = p.b.Alternate(acc, branch)
	}
	return acc, nil
}

// sequence parses concatenated atoms up to a '|', a ')' or the end.
// ok is false when no atom was found.
func (p *parser) sequence(depth int) (acc Fragment, ok bool, err error) {
	for p.more() {
		tok := p.toks[p.pos]
		var f Fragment
		switch tok.Kind {
		case syntax.Bar:
			return acc, ok, nil
		case syntax.RParen:
			if depth == 0 {
				return Fragment{}, false, p.errorf("unmatched ')'")
			}
			return acc, ok, nil
		case syntax.LParen:
			p.pos++
			f, err = p.expr(depth + 1)
			if err != nil {
				return Fragment{}, false, err
			}
			if !p.more() || p.peek() != syntax.RParen {
				return Fragment{}, false, p.errorf("missing ')'")
			}
			tok = p.toks[p.pos]
		default:
			f, err = p.atom(tok)
			if err != nil {
				return Fragment{}, false, err
			}
		}
		p.pos++
		f = p.quantify(f, tok.Quant)
		if ok {
			acc = p.b.Concat(acc, f)
		} else {
			acc, ok = f, true
		}
	}
	return acc, ok, nil
}

// atom builds the fragment of a literal, class or dot.
func (p *parser) atom(tok syntax.Token) (Fragment, error) {
	var (
		symbols []int
		err     error
	)
	a := p.c.alphabet
	switch tok.Kind {
	case syntax.Literal, syntax.Class:
		symbols, err = a.Resolve(tok.Intervals)
	case syntax.InvertedClass:
		symbols, err = a.Complement(tok.Intervals)
	case syntax.Dot:
		symbols = a.All()
	default:
		return Fragment{}, p.errorf("unexpected token %s", tok)
	}
	if err != nil {
		return Fragment{}, err
	}
	if len(symbols) == 0 {
		return Fragment{}, p.errorf("%s matches no symbol of the alphabet", tok)
	}
	if tok.Kind == syntax.Literal && len(symbols) != 1 {
		return Fragment{}, lexerr.Alphabetf("literal %s spans %d symbols", tok, len(symbols))
	}
	return p.alternation(symbols)
}

// alternation returns a fragment matching any one of symbols.
func (p *parser) alternation(symbols []int) (Fragment, error) {
	acc, err := p.b.Literal(symbols[0])
	if err != nil {
		return Fragment{}, err
	}
	for _, sym := range symbols[1:] {
		f, err := p.b.Literal(sym)
		if err != nil {
			return Fragment{}, err
		}
		acc = p.b.Alternate(acc, f)
	}
	return acc, nil
}

func (p *parser) quantify(f Fragment, q syntax.Quantifier) Fragment {
	switch q {
	case syntax.Star:
		return p.b.Closure(f)
	case syntax.Plus:
		return p.b.OneOrMore(f)
	case syntax.Question:
		return p.b.ZeroOrOne(f)
	default:
		return f
	}
}
