// Package syntax tokenizes the regular expression language of lexer rules.
//
// The language is deliberately small:
//
//	a         literal code point
//	\n \t ... escape from a fixed table, or an escaped metacharacter
//	[a-z_]    character class; ranges need two letters or two digits
//	[^"]      inverted class, resolved against the whole alphabet
//	.         any symbol of the alphabet
//	x|y       alternation
//	(x)       grouping
//	x* x+ x?  repetition
//
// Bounded repetition, anchors and backreferences are not supported.
package syntax

import (
	"io"
	"unicode"

	"github.com/pradeesh-kumar/lex-engine/interval"
	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

// Printable is the interval contributed to the alphabet by '.'.
var Printable = interval.New(32, 126)

// escapes maps the character after a backslash to the code point it denotes.
var escapes = map[rune]rune{
	'\\': '\\',
	'"':  '"',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
	' ':  ' ',
}

func isMeta(r rune) bool {
	switch r {
	case '|', '.', '^', '*', '+', '?', '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}

// Tokenizer produces the tokens of one pattern on demand.
type Tokenizer struct {
	pattern string
	src     []rune
	pos     int
}

// NewTokenizer returns a Tokenizer positioned at the start of pattern.
func NewTokenizer(pattern string) *Tokenizer {
	return &Tokenizer{pattern: pattern, src: []rune(pattern)}
}

// More reports whether tokens remain.
func (t *Tokenizer) More() bool {
	return t.pos < len(t.src)
}

// Next returns the next token, or io.EOF when the pattern is exhausted.
// Malformed input yields a Regex error.
func (t *Tokenizer) Next() (Token, error) {
	if !t.More() {
		return Token{}, io.EOF
	}
	start := t.pos
	r := t.src[t.pos]
	t.pos++

	var tok Token
	switch r {
	case '\\':
		c, err := t.escape(false)
		if err != nil {
			return Token{}, err
		}
		tok = literal(c)
	case '[':
		cls, err := t.class(start)
		if err != nil {
			return Token{}, err
		}
		tok = cls
	case '(':
		tok = Token{Kind: LParen}
	case ')':
		tok = Token{Kind: RParen}
	case '.':
		tok = Token{Kind: Dot}
	case '|':
		tok = Token{Kind: Bar}
	case '*', '+', '?':
		return Token{}, t.errorf("quantifier %q at offset %d has nothing to repeat", r, start)
	case '{', '}':
		return Token{}, t.errorf("unrecognized quantifier %q at offset %d", r, start)
	case ']', '^':
		return Token{}, t.errorf("unexpected %q at offset %d", r, start)
	default:
		tok = literal(r)
	}

	q, err := t.quantifier(tok)
	if err != nil {
		return Token{}, err
	}
	tok.Quant = q
	return tok, nil
}

func literal(r rune) Token {
	return Token{Kind: Literal, Char: r, Intervals: []interval.Interval{interval.Point(int(r))}}
}

// quantifier consumes an optional postfix operator for tok.
func (t *Tokenizer) quantifier(tok Token) (Quantifier, error) {
	if !t.More() {
		return NoQuantifier, nil
	}
	r := t.src[t.pos]
	var q Quantifier
	switch r {
	case '*':
		q = Star
	case '+':
		q = Plus
	case '?':
		q = Question
	case '{', '}':
		return NoQuantifier, t.errorf("unrecognized quantifier %q at offset %d", r, t.pos)
	default:
		return NoQuantifier, nil
	}
	if tok.Kind == Bar || tok.Kind == LParen {
		return NoQuantifier, t.errorf("quantifier %q at offset %d cannot follow %q", r, t.pos, tok.String())
	}
	t.pos++
	return q, nil
}

// escape resolves the character after a backslash. Inside a class '-' may
// also be escaped.
func (t *Tokenizer) escape(inClass bool) (rune, error) {
	if !t.More() {
		return 0, t.errorf("trailing backslash")
	}
	r := t.src[t.pos]
	t.pos++
	if c, ok := escapes[r]; ok {
		return c, nil
	}
	if isMeta(r) || (inClass && r == '-') {
		return r, nil
	}
	return 0, t.errorf("invalid escape sequence \\%c at offset %d", r, t.pos-2)
}

// class parses the body of a bracket expression; the '[' at offset open has
// been consumed.
func (t *Tokenizer) class(open int) (Token, error) {
	tok := Token{Kind: Class}
	if t.More() && t.src[t.pos] == '^' {
		tok.Kind = InvertedClass
		t.pos++
	}
	if !t.More() {
		return Token{}, t.errorf("unterminated character class at offset %d", open)
	}
	switch t.src[t.pos] {
	case ']':
		return Token{}, t.errorf("empty character class at offset %d", open)
	case '-':
		return Token{}, t.errorf("character class at offset %d starts with '-'", open)
	}

	for t.More() {
		r := t.src[t.pos]
		t.pos++
		switch r {
		case ']':
			return tok, nil
		case '\\':
			c, err := t.escape(true)
			if err != nil {
				return Token{}, err
			}
			tok.Intervals = append(tok.Intervals, interval.Point(int(c)))
			continue
		}

		if t.pos < len(t.src) && t.src[t.pos] == '-' {
			if t.pos+1 >= len(t.src) {
				break
			}
			hi := t.src[t.pos+1]
			if err := t.checkRange(r, hi); err != nil {
				return Token{}, err
			}
			t.pos += 2
			tok.Intervals = append(tok.Intervals, interval.New(int(r), int(hi)))
			continue
		}
		tok.Intervals = append(tok.Intervals, interval.Point(int(r)))
	}
	return Token{}, t.errorf("unterminated character class at offset %d", open)
}

func (t *Tokenizer) checkRange(lo, hi rune) error {
	sameKind := (unicode.IsLetter(lo) && unicode.IsLetter(hi)) ||
		(unicode.IsDigit(lo) && unicode.IsDigit(hi))
	if !sameKind {
		return t.errorf("invalid range %c-%c: endpoints must both be letters or both digits", lo, hi)
	}
	if lo >= hi {
		return t.errorf("invalid range %c-%c: start must be less than end", lo, hi)
	}
	return nil
}

func (t *Tokenizer) errorf(format string, args ...any) error {
	return lexerr.Regexf(t.pattern, format, args...)
}

// Tokenize returns every token of pattern.
func Tokenize(pattern string) ([]Token, error) {
	t := NewTokenizer(pattern)
	var out []Token
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
}

// Alphabet returns the intervals pattern contributes to the input alphabet,
// and whether it contains '.', which contributes Printable once per
// alphabet rather than per occurrence.
func Alphabet(pattern string) ([]interval.Interval, bool, error) {
	toks, err := Tokenize(pattern)
	if err != nil {
		return nil, false, err
	}
	var ivs []interval.Interval
	dot := false
	for _, tok := range toks {
		switch tok.Kind {
		case Literal, Class, InvertedClass:
			ivs = append(ivs, tok.Intervals...)
		case Dot:
			dot = true
		}
	}
	return ivs, dot, nil
}
