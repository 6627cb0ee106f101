package nfa

import (
	"errors"
	"testing"

	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

func newTestBuilder(t *testing.T, patterns ...string) *Builder {
	t.Helper()
	a, err := BuildAlphabet(patterns)
	if err != nil {
		t.Fatal(err)
	}
	return NewBuilder(a)
}

func mustLiteral(t *testing.T, b *Builder, sym int) Fragment {
	t.Helper()
	f, err := b.Literal(sym)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestBuilder_Literal(t *testing.T) {
	b := newTestBuilder(t, "ab")
	f := mustLiteral(t, b, 1)
	if b.States() != 2 {
		t.Errorf("States() = %d, want 2", b.States())
	}
	b.Accept(f, "B")
	n := b.Build(f.Start)
	if got, ok := n.Accepts("b"); !ok || got != "B" {
		t.Errorf("Accepts(b) = %q, %v", got, ok)
	}
	if _, ok := n.Accepts("a"); ok {
		t.Error("Accepts(a) = true")
	}
	if targets := n.Next(f.Start, 1); targets == nil || !targets.Has(int(f.Accept)) {
		t.Errorf("Next(start, 1) = %v, want {%d}", targets, f.Accept)
	}
}

func TestBuilder_LiteralOutsideAlphabet(t *testing.T) {
	b := newTestBuilder(t, "a")
	for _, sym := range []int{-1, 1, 2} {
		if _, err := b.Literal(sym); !errors.Is(err, lexerr.ErrAlphabet) {
			t.Errorf("Literal(%d) error = %v, want AlphabetError", sym, err)
		}
	}
}

func TestBuilder_AlternateReusesHub(t *testing.T) {
	b := newTestBuilder(t, "abc")
	f := b.Alternate(mustLiteral(t, b, 0), mustLiteral(t, b, 1))
	f = b.Alternate(f, mustLiteral(t, b, 2))
	// three literals plus a single hub
	if b.States() != 8 {
		t.Errorf("States() = %d, want 8", b.States())
	}
	b.Accept(f, "X")
	n := b.Build(f.Start)
	for _, in := range []string{"a", "b", "c"} {
		if _, ok := n.Accepts(in); !ok {
			t.Errorf("Accepts(%q) = false", in)
		}
	}
	if _, ok := n.Accepts("ab"); ok {
		t.Error("Accepts(ab) = true")
	}
}

func TestBuilder_ClosureOnce(t *testing.T) {
	b := newTestBuilder(t, "a")
	f := b.Closure(mustLiteral(t, b, 0))
	states := b.States()
	g := b.Closure(f)
	if g != f || b.States() != states {
		t.Errorf("second Closure added states: %d -> %d", states, b.States())
	}
	// a new wrapper resets the memo
	h := b.Closure(b.ZeroOrOne(g))
	if h == g {
		t.Error("Closure of a ZeroOrOne returned its input")
	}
}

func TestBuilder_Quantifiers(t *testing.T) {
	tests := []struct {
		name   string
		wrap   func(*Builder, Fragment) Fragment
		accept []string
		reject []string
	}{
		{"closure", (*Builder).Closure, []string{"", "a", "aaa"}, nil},
		{"zero or one", (*Builder).ZeroOrOne, []string{"", "a"}, []string{"aa"}},
		{"one or more", (*Builder).OneOrMore, []string{"a", "aaa"}, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t, "a")
			f := tt.wrap(b, mustLiteral(t, b, 0))
			b.Accept(f, "X")
			n := b.Build(f.Start)
			for _, in := range tt.accept {
				if _, ok := n.Accepts(in); !ok {
					t.Errorf("Accepts(%q) = false, want true", in)
				}
			}
			for _, in := range tt.reject {
				if _, ok := n.Accepts(in); ok {
					t.Errorf("Accepts(%q) = true, want false", in)
				}
			}
		})
	}
}

func TestBuilder_UnionKeepsAccepts(t *testing.T) {
	b := newTestBuilder(t, "ab")
	fa := mustLiteral(t, b, 0)
	fb := mustLiteral(t, b, 1)
	b.Accept(fa, "A")
	b.Accept(fb, "B")
	start := b.Union([]Fragment{fa, fb})
	n := b.Build(start)
	if got, _ := n.Accepts("a"); got != "A" {
		t.Errorf("Accepts(a) = %q, want A", got)
	}
	if got, _ := n.Accepts("b"); got != "B" {
		t.Errorf("Accepts(b) = %q, want B", got)
	}
	if n.States() != 5 {
		t.Errorf("States() = %d, want 5", n.States())
	}
}

func TestBuilder_UnionReusesLeadingHub(t *testing.T) {
	b := newTestBuilder(t, "abc")
	hub := b.Alternate(mustLiteral(t, b, 0), mustLiteral(t, b, 1))
	b.Accept(hub, "AB")
	fc := mustLiteral(t, b, 2)
	b.Accept(fc, "C")
	before := b.States()
	start := b.Union([]Fragment{hub, fc})
	if start != hub.Start || b.States() != before {
		t.Errorf("Union built a new start state")
	}
	n := b.Build(start)
	if got, _ := n.Accepts("c"); got != "C" {
		t.Errorf("Accepts(c) = %q, want C", got)
	}
	if got, _ := n.Accepts("b"); got != "AB" {
		t.Errorf("Accepts(b) = %q, want AB", got)
	}
}
