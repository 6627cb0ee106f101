package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pradeesh-kumar/lex-engine/codec"
	"github.com/pradeesh-kumar/lex-engine/dfa"
	"github.com/pradeesh-kumar/lex-engine/scanner"
	"github.com/pradeesh-kumar/lex-engine/spec"
)

// Context keys understood by the default template.
const (
	KeyClassName      = "className"
	KeyPackage        = "package"
	KeyReturnType     = "returnType"
	KeyMethodName     = "methodName"
	KeyTransitions    = "compressedTransitionTbl"
	KeyFinalStates    = "finalStates"
	KeyStartState     = "startState"
	KeyStatesCount    = "statesCount"
	KeyAlphabetsCount = "alphabetsCount"
	KeySwitchCases    = "switchCases"
	KeyAlphabetIndex  = "alphabetIndex"
)

// Tables returns the scanner tables of d.
func Tables(d *dfa.DFA) (scanner.Tables, error) {
	enc, err := codec.Encode(d.Table())
	if err != nil {
		return scanner.Tables{}, err
	}
	t := scanner.Tables{
		States:      d.Rows(),
		Alphabets:   d.AlphabetLen(),
		Start:       d.Start(),
		Transitions: enc,
		Final:       d.FinalWords(),
	}
	for sym, iv := range d.Alphabet().Intervals() {
		t.Ranges = append(t.Ranges, scanner.Range{Lo: rune(iv.Start), Hi: rune(iv.End), Symbol: sym})
	}
	return t, nil
}

// NewContext returns the template context for the scanner of s backed by d.
func NewContext(s *spec.Spec, d *dfa.DFA) (Context, error) {
	t, err := Tables(d)
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}
	return Context{
		KeyClassName:      s.Class,
		KeyPackage:        s.Package,
		KeyReturnType:     s.ReturnType,
		KeyMethodName:     s.Function,
		KeyTransitions:    t.Transitions,
		KeyFinalStates:    finalStates(t.Final),
		KeyStartState:     strconv.Itoa(t.Start),
		KeyStatesCount:    strconv.Itoa(t.States),
		KeyAlphabetsCount: strconv.Itoa(t.Alphabets),
		KeySwitchCases:    switchCases(d),
		KeyAlphabetIndex:  alphabetIndex(t.Ranges),
	}, nil
}

func finalStates(words []uint64) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%#x", w)
	}
	return strings.Join(parts, ", ")
}

// switchCases renders one case per distinct action, listing every state
// that runs it.
func switchCases(d *dfa.DFA) string {
	var b strings.Builder
	for _, g := range d.ActionGroups() {
		b.WriteString("\t\tcase ")
		for i, s := range g.States {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(s))
		}
		b.WriteString(":\n\t\t\t")
		b.WriteString(string(g.Action))
		b.WriteByte('\n')
	}
	return b.String()
}

func alphabetIndex(ranges []scanner.Range) string {
	var b strings.Builder
	for _, r := range ranges {
		fmt.Fprintf(&b, "\t\t{Lo: %d, Hi: %d, Symbol: %d},\n", r.Lo, r.Hi, r.Symbol)
	}
	return b.String()
}
