// Package spec parses lexer specification files.
//
// A specification has a metadata section and a rules section separated by a
// line containing only "---":
//
//	# comments and blank lines are ignored
//	class=Lexer
//	package=lexer
//	function=NextToken
//	returnType=Token
//	---
//	"[0-9]+"      { return NewToken(Int, l.Value()), nil }
//	"[a-z_]+"     { return NewToken(Ident, l.Value()), nil }
//	"\ |\t|\n"    { }
//
// Each rule is a quoted pattern followed by the action code run when the
// pattern matches, braces included. Rules are listed in priority order.
package spec

import (
	"bufio"
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/pradeesh-kumar/lex-engine/lexerr"
	"github.com/pradeesh-kumar/lex-engine/nfa"
)

// Divider separates the metadata section from the rules.
const Divider = "---"

// Defaults for omitted metadata.
const (
	DefaultClass      = "Lexer"
	DefaultPackage    = "lexer"
	DefaultFunction   = "NextToken"
	DefaultReturnType = "Token"
)

// Spec is a parsed specification.
type Spec struct {
	Class      string
	Package    string
	Function   string
	ReturnType string
	Rules      []nfa.Rule

	// lines[i] is the line Rules[i] came from
	lines []int
}

// Line returns the 1-based source line of rule i, or 0 if unknown.
func (s *Spec) Line(i int) int {
	if i < 0 || i >= len(s.lines) {
		return 0
	}
	return s.lines[i]
}

// Patterns returns the pattern of every rule in order.
func (s *Spec) Patterns() []string {
	out := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		out[i] = r.Pattern
	}
	return out
}

// ParseFile parses the file at path, decoding it from the named IANA
// character set. An empty encoding means UTF-8.
func ParseFile(path, encoding string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decoder(f, encoding)
	if err != nil {
		return nil, err
	}
	s, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func decoder(r io.Reader, name string) (io.Reader, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, lexerr.Specf(0, "unknown encoding %q", name)
	}
	if enc == nil {
		return nil, lexerr.Specf(0, "unsupported encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Parse reads a specification.
func Parse(r io.Reader) (*Spec, error) {
	s := &Spec{
		Class:      DefaultClass,
		Package:    DefaultPackage,
		Function:   DefaultFunction,
		ReturnType: DefaultReturnType,
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inRules := false
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == Divider {
			if inRules {
				return nil, lexerr.Specf(n, "unexpected second %q divider", Divider)
			}
			inRules = true
			continue
		}
		if !inRules {
			if err := s.setMetadata(n, line); err != nil {
				return nil, err
			}
			continue
		}
		rule, err := parseRule(n, line)
		if err != nil {
			return nil, err
		}
		s.Rules = append(s.Rules, rule)
		s.lines = append(s.lines, n)
	}
	if err := sc.Err(); err != nil {
		return nil, lexerr.Specf(n, "read: %v", err)
	}

	if !inRules {
		return nil, lexerr.Specf(0, "missing %q divider between metadata and rules", Divider)
	}
	if len(s.Rules) == 0 {
		return nil, lexerr.Specf(0, "no rules declared")
	}
	return s, nil
}

func (s *Spec) setMetadata(n int, line string) error {
	key, value, ok := strings.Cut(line, "=")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if !ok || key == "" || value == "" {
		return lexerr.Specf(n, "metadata must be key=value, got %q", line)
	}
	switch key {
	case "class":
		s.Class = value
	case "package":
		s.Package = value
	case "methodName", "function":
		s.Function = value
	case "returnType":
		s.ReturnType = value
	default:
		return lexerr.Specf(n, "unknown metadata key %q", key)
	}
	if key != "returnType" && !token.IsIdentifier(value) {
		return lexerr.Specf(n, "%s %q is not a valid identifier", key, value)
	}
	return nil
}

// parseRule splits `"pattern" { action }`. Backslash pairs inside the
// pattern are skipped, so an escaped quote does not end it.
func parseRule(n int, line string) (nfa.Rule, error) {
	if line[0] != '"' {
		return nfa.Rule{}, lexerr.Specf(n, "rule must start with a quoted pattern")
	}
	end := -1
	for i := 1; i < len(line) && end < 0; i++ {
		switch line[i] {
		case '\\':
			i++
		case '"':
			end = i
		}
	}
	if end < 0 {
		return nfa.Rule{}, lexerr.Specf(n, "unterminated pattern")
	}
	pattern := line[1:end]
	if pattern == "" {
		return nfa.Rule{}, lexerr.Specf(n, "empty pattern")
	}

	rest := strings.TrimSpace(line[end+1:])
	if !strings.HasPrefix(rest, "{") {
		return nfa.Rule{}, lexerr.Specf(n, "pattern %q must be followed by an action in braces", pattern)
	}
	closing := strings.LastIndexByte(rest, '}')
	if closing < 0 {
		return nfa.Rule{}, lexerr.Specf(n, "action of pattern %q is missing '}'", pattern)
	}
	if trailing := strings.TrimSpace(rest[closing+1:]); trailing != "" {
		return nfa.Rule{}, lexerr.Specf(n, "unexpected %q after action", trailing)
	}
	return nfa.Rule{Pattern: pattern, Action: nfa.Action(rest[:closing+1])}, nil
}
