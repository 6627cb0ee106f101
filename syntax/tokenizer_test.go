package syntax

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/pradeesh-kumar/lex-engine/interval"
	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"abc", []string{"'a'", "'b'", "'c'"}},
		{"a*b+c?", []string{"'a'*", "'b'+", "'c'?"}},
		{"(a|b)*", []string{"(", "'a'", "|", "'b'", ")*"}},
		{".*", []string{".*"}},
		{`\n\t\ `, []string{`'\n'`, `'\t'`, "' '"}},
		{`\*\(\)\[\]\{\}\|\.\?\+\^`, []string{"'*'", "'('", "')'", "'['", "']'", "'{'", "'}'", "'|'", "'.'", "'?'", "'+'", "'^'"}},
		{`\\\"`, []string{`'\\'`, `'"'`}},
		{"[a-z_]", []string{"[97-122 95]"}},
		{"[^\"]*", []string{"[^34]*"}},
		{"[0-9]+", []string{"[48-57]+"}},
		{`[\n\]]`, []string{"[10 93]"}},
		{"[a-z-]", []string{"[97-122 45]"}},
		{"0|[1-9][0-9]*", []string{"'0'", "|", "[49-57]", "[48-57]*"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks, err := Tokenize(tt.pattern)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.pattern, err)
			}
			var got []string
			for _, tok := range toks {
				got = append(got, tok.String())
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTokenize_LiteralInterval(t *testing.T) {
	toks, err := Tokenize("é")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Kind != Literal || toks[0].Char != 'é' {
		t.Fatalf("Tokenize(é) = %v", toks)
	}
	if want := []interval.Interval{interval.Point(0xe9)}; !slices.Equal(toks[0].Intervals, want) {
		t.Errorf("Intervals = %v, want %v", toks[0].Intervals, want)
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"unknown escape", `a\q`},
		{"trailing backslash", `a\`},
		{"unknown escape in class", `[\q]`},
		{"unterminated class", "[abc"},
		{"unterminated after caret", "[^"},
		{"empty class", "[]"},
		{"empty inverted class", "[^]"},
		{"leading dash", "[-a]"},
		{"open range", "[a-]"},
		{"dangling range", "[a-"},
		{"mixed range", "[a-9]"},
		{"symbol range", "[!-/]"},
		{"reversed range", "[z-a]"},
		{"equal range", "[a-a]"},
		{"bounded repetition", "a{2}"},
		{"stray brace", "}"},
		{"leading star", "*a"},
		{"double quantifier", "a**"},
		{"quantified bar", "a|*b"},
		{"quantified lparen", "(*a)"},
		{"stray caret", "^a"},
		{"stray bracket", "a]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.pattern)
			if err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want error", tt.pattern)
			}
			if !errors.Is(err, lexerr.ErrRegex) {
				t.Errorf("Tokenize(%q) error = %v, want RegexError", tt.pattern, err)
			}
			var le *lexerr.Error
			if errors.As(err, &le) && le.Pattern != tt.pattern {
				t.Errorf("error pattern = %q, want %q", le.Pattern, tt.pattern)
			}
		})
	}
}

func TestTokenizer_Lazy(t *testing.T) {
	tk := NewTokenizer("a[")
	tok, err := tk.Next()
	if err != nil || tok.Kind != Literal {
		t.Fatalf("first Next() = %v, %v; want literal", tok, err)
	}
	if !tk.More() {
		t.Fatal("More() = false before the class")
	}
	if _, err := tk.Next(); !errors.Is(err, lexerr.ErrRegex) {
		t.Errorf("second Next() error = %v, want RegexError", err)
	}

	tk = NewTokenizer("x")
	tk.Next()
	if _, err := tk.Next(); err != io.EOF {
		t.Errorf("Next() at end = %v, want io.EOF", err)
	}
}

func TestAlphabet(t *testing.T) {
	ivs, dot, err := Alphabet(`a(b|[0-9])*\n.`)
	if err != nil {
		t.Fatal(err)
	}
	want := []interval.Interval{
		interval.Point('a'),
		interval.Point('b'),
		interval.New('0', '9'),
		interval.Point('\n'),
	}
	if !slices.Equal(ivs, want) {
		t.Errorf("Alphabet() intervals = %v, want %v", ivs, want)
	}
	if !dot {
		t.Error("Alphabet() dot = false, want true")
	}

	_, dot, err = Alphabet("[^x]")
	if err != nil || dot {
		t.Errorf("Alphabet([^x]) = dot %v, err %v", dot, err)
	}

	if _, _, err := Alphabet("[x"); !errors.Is(err, lexerr.ErrRegex) {
		t.Errorf("Alphabet([x) error = %v, want RegexError", err)
	}
}

func TestKindAndQuantifierString(t *testing.T) {
	if Bar.String() != "Bar" || Kind(42).String() != "Kind(42)" {
		t.Error("Kind.String wrong")
	}
	if Star.String() != "*" || NoQuantifier.String() != "" {
		t.Error("Quantifier.String wrong")
	}
}
