package syntax

import (
	"fmt"
	"strings"

	"github.com/pradeesh-kumar/lex-engine/interval"
)

// Kind identifies the variant of a Token.
type Kind uint8

const (
	// Literal is a single code point
	Literal Kind = iota

	// Class is a bracketed character class such as [a-z_]
	Class

	// InvertedClass is a negated character class such as [^"]
	InvertedClass

	// LParen opens a group
	LParen

	// RParen closes a group; its quantifier applies to the whole group
	RParen

	// Dot matches any symbol of the alphabet
	Dot

	// Bar separates alternatives
	Bar
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Class:
		return "Class"
	case InvertedClass:
		return "InvertedClass"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Dot:
		return "Dot"
	case Bar:
		return "Bar"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Quantifier is the postfix repetition operator attached to a token.
type Quantifier uint8

const (
	// NoQuantifier means the token matches exactly once
	NoQuantifier Quantifier = iota

	// Star is '*', zero or more
	Star

	// Plus is '+', one or more
	Plus

	// Question is '?', zero or one
	Question
)

// String returns the operator character, or "" for NoQuantifier.
func (q Quantifier) String() string {
	switch q {
	case Star:
		return "*"
	case Plus:
		return "+"
	case Question:
		return "?"
	default:
		return ""
	}
}

// Token is one lexical unit of a pattern.
//
// Char is set for Literal tokens. Intervals holds the single point of a
// Literal or the raw members of a Class or InvertedClass, in source order.
type Token struct {
	Kind      Kind
	Char      rune
	Intervals []interval.Interval
	Quant     Quantifier
}

// IsClass reports whether t is a Class or InvertedClass.
func (t Token) IsClass() bool {
	return t.Kind == Class || t.Kind == InvertedClass
}

// String renders the token in pattern syntax, e.g. 'a*' or [97-122]+.
func (t Token) String() string {
	var b strings.Builder
	switch t.Kind {
	case Literal:
		fmt.Fprintf(&b, "%q", t.Char)
	case Class, InvertedClass:
		b.WriteByte('[')
		if t.Kind == InvertedClass {
			b.WriteByte('^')
		}
		for i, iv := range t.Intervals {
			if i > 0 {
				b.WriteByte(' ')
			}
			if iv.Start == iv.End {
				fmt.Fprintf(&b, "%d", iv.Start)
			} else {
				fmt.Fprintf(&b, "%d-%d", iv.Start, iv.End)
			}
		}
		b.WriteByte(']')
	case LParen:
		b.WriteByte('(')
	case RParen:
		b.WriteByte(')')
	case Dot:
		b.WriteByte('.')
	case Bar:
		b.WriteByte('|')
	}
	b.WriteString(t.Quant.String())
	return b.String()
}
