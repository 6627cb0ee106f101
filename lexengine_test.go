package lexengine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pradeesh-kumar/lex-engine/lexerr"
	"github.com/pradeesh-kumar/lex-engine/nfa"
	"github.com/pradeesh-kumar/lex-engine/spec"
)

var seedRules = []nfa.Rule{
	{Pattern: `new`, Action: "NEW"},
	{Pattern: `int`, Action: "INT"},
	{Pattern: `float`, Action: "FLOAT"},
	{Pattern: `not`, Action: "NOT"},
	{Pattern: `cat|rat`, Action: "CATRAT"},
	{Pattern: `\{`, Action: "LBRACE"},
	{Pattern: `\[`, Action: "LSQBRACKET"},
	{Pattern: `<=`, Action: "LE"},
	{Pattern: `<`, Action: "LT"},
	{Pattern: `0|[1-9][0-9]*`, Action: "INTEGER"},
	{Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: "IDENTIFIER"},
	{Pattern: `"[^"]*"`, Action: "STRING"},
	{Pattern: `/\*([^*]|\*+[^*/])*\*+/`, Action: "COMMENT"},
	{Pattern: `\n|\r|\t|\ |\b|\f`, Action: "SKIP"},
}

func TestCompile_SeedGrammar(t *testing.T) {
	lx, err := Compile(seedRules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !lx.Minimized() {
		t.Error("Minimized() = false, want true")
	}

	tests := []struct {
		input string
		want  nfa.Action
	}{
		{"new", "NEW"},
		{"news", "IDENTIFIER"},
		{"cat", "CATRAT"},
		{"rat", "CATRAT"},
		{"<=", "LE"},
		{"<", "LT"},
		{"0", "INTEGER"},
		{"120", "INTEGER"},
		{"01", ""},
		{`"x y"`, "STRING"},
		{"/* a */", "COMMENT"},
		{"\t", "SKIP"},
		{"", ""},
	}
	for _, tt := range tests {
		got, ok := lx.Match(tt.input)
		if got != tt.want || ok != (tt.want != "") {
			t.Errorf("Match(%q) = %q, %v; want %q", tt.input, got, ok, tt.want)
		}
	}
}

func TestCompile_MinimizeOption(t *testing.T) {
	rules := []nfa.Rule{{Pattern: "ab|cb", Action: "X"}}

	plain, err := CompileWithConfig(rules, DefaultConfig().WithMinimize(false))
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	if plain.Minimized() || plain.DFA().States() != 5 {
		t.Errorf("unminimized: Minimized() = %v, States() = %d; want false, 5", plain.Minimized(), plain.DFA().States())
	}

	lx, err := Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !lx.Minimized() || lx.DFA().States() != 4 {
		t.Errorf("minimized: Minimized() = %v, States() = %d; want true, 4", lx.Minimized(), lx.DFA().States())
	}
	for _, in := range []string{"ab", "cb"} {
		if a, ok := lx.Match(in); !ok || a != "X" {
			t.Errorf("Match(%q) = %q, %v", in, a, ok)
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		rules  []nfa.Rule
		config Config
		want   error
	}{
		{"no rules", nil, DefaultConfig(), lexerr.ErrSpec},
		{"bad pattern", []nfa.Rule{{Pattern: "(a", Action: "A"}}, DefaultConfig(), lexerr.ErrRegex},
		{"bad config", seedRules, DefaultConfig().WithMaxStates(-1), lexerr.ErrConfig},
		{"state limit", seedRules, DefaultConfig().WithMaxStates(3), lexerr.ErrLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileWithConfig(tt.rules, tt.config)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic")
		}
	}()
	MustCompile(nfa.Rule{Pattern: "a|", Action: "A"})
}

func TestCompileSpec_ErrorLine(t *testing.T) {
	s, err := spec.Parse(strings.NewReader("---\n\"a\" {}\n\"[z-a]\" {}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = CompileSpec(s, DefaultConfig())
	var le *lexerr.Error
	if !errors.As(err, &le) {
		t.Fatalf("error %v is not *lexerr.Error", err)
	}
	if le.Kind != lexerr.Regex || le.Pattern != "[z-a]" || le.Line != 3 {
		t.Errorf("error = %+v, want RegexError for [z-a] at line 3", le)
	}
}

func TestCompile_Logging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	_, err := CompileWithConfig(seedRules, DefaultConfig().WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	for _, msg := range []string{"NFA generated", "DFA generated", "DFA minimized"} {
		if logs.FilterMessage(msg).Len() != 1 {
			t.Errorf("log %q logged %d times, want 1", msg, logs.FilterMessage(msg).Len())
		}
	}
}

func TestLexer_Scan(t *testing.T) {
	lx := MustCompile(seedRules...)
	got, err := lx.Scan(strings.NewReader("int x\n<= 7"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []Lexeme{
		{"INT", "int", 1, 1},
		{"SKIP", " ", 1, 4},
		{"IDENTIFIER", "x", 1, 5},
		{"SKIP", "\n", 1, 6},
		{"LE", "<=", 2, 1},
		{"SKIP", " ", 2, 3},
		{"INTEGER", "7", 2, 4},
	}
	if len(got) != len(want) {
		t.Fatalf("Scan() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lexeme %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if _, err := lx.Scan(strings.NewReader("int $")); err == nil {
		t.Error("Scan with invalid character succeeded")
	}
}

func TestLexer_Accessors(t *testing.T) {
	lx := MustCompile(seedRules...)
	if got := len(lx.Rules()); got != len(seedRules) {
		t.Errorf("len(Rules()) = %d, want %d", got, len(seedRules))
	}
	if lx.NFA().FinalCount() != len(seedRules) {
		t.Errorf("NFA().FinalCount() = %d, want %d", lx.NFA().FinalCount(), len(seedRules))
	}
	if lx.Alphabet().Len() != lx.DFA().AlphabetLen() {
		t.Errorf("alphabet sizes differ: %d vs %d", lx.Alphabet().Len(), lx.DFA().AlphabetLen())
	}
	tables, err := lx.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if tables.States != lx.DFA().Rows() || tables.Start != lx.DFA().Start() {
		t.Errorf("Tables() = %d rows, start %d", tables.States, tables.Start)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path, err := Generate(GenerateOptions{
		Spec:      filepath.Join("testdata", "lexer-spec.spec"),
		OutputDir: dir,
		Config:    DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if path != filepath.Join(dir, "mylexer.go") {
		t.Errorf("path = %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "func (l *MyLexer) NextToken() (Token, error)") {
		t.Errorf("generated source lacks NextToken:\n%s", b)
	}

	_, err = Generate(GenerateOptions{Spec: filepath.Join(dir, "missing.spec"), Config: DefaultConfig()})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing spec: error = %v", err)
	}
}
