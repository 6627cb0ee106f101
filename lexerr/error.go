// Package lexerr defines the single error type reported by every stage of
// the lexer generator.
//
// All failures are fatal to the compilation that produced them. Callers
// distinguish them by Kind, either by inspecting (*Error).Kind after
// errors.As, or by comparing against the sentinel values with errors.Is:
//
//	if errors.Is(err, lexerr.ErrRegex) {
//		// the pattern itself is malformed
//	}
package lexerr

import "fmt"

// Kind classifies errors into categories
type Kind uint8

const (
	// Regex indicates a malformed regular expression
	Regex Kind = iota

	// Alphabet indicates a symbol missing from the alphabet index.
	// This is an internal invariant violation when the alphabet was built
	// from the same patterns.
	Alphabet

	// Spec indicates a malformed lexer specification file
	Spec

	// Codec indicates a transition table could not be encoded or decoded
	Codec

	// Limit indicates a configured resource limit was exceeded
	Limit

	// Config indicates an invalid configuration value
	Config
)

// String returns a human-readable error kind name
func (k Kind) String() string {
	switch k {
	case Regex:
		return "RegexError"
	case Alphabet:
		return "AlphabetError"
	case Spec:
		return "SpecError"
	case Codec:
		return "CodecError"
	case Limit:
		return "LimitError"
	case Config:
		return "ConfigError"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Sentinel errors, one per Kind. They match any *Error of the same Kind.
var (
	ErrRegex    = &Error{Kind: Regex, Message: "invalid regex"}
	ErrAlphabet = &Error{Kind: Alphabet, Message: "symbol not in alphabet"}
	ErrSpec     = &Error{Kind: Spec, Message: "invalid lexer specification"}
	ErrCodec    = &Error{Kind: Codec, Message: "transition table codec failure"}
	ErrLimit    = &Error{Kind: Limit, Message: "limit exceeded"}
	ErrConfig   = &Error{Kind: Config, Message: "invalid configuration"}
)

// Error is a compilation failure.
//
// Pattern is set when the failure can be attributed to one regex, Line when
// it can be attributed to a line of a specification file (1-based).
type Error struct {
	Kind    Kind
	Message string
	Pattern string
	Line    int
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Kind.String() + ": "
	switch {
	case e.Pattern != "":
		msg += fmt.Sprintf("pattern %q: ", e.Pattern)
	case e.Line > 0:
		msg += fmt.Sprintf("line %d: ", e.Line)
	}
	msg += e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Regexf returns a Regex error for pattern.
func Regexf(pattern, format string, args ...any) *Error {
	return &Error{Kind: Regex, Pattern: pattern, Message: fmt.Sprintf(format, args...)}
}

// Alphabetf returns an Alphabet error.
func Alphabetf(format string, args ...any) *Error {
	return &Error{Kind: Alphabet, Message: fmt.Sprintf(format, args...)}
}

// Specf returns a Spec error located at line (0 when unknown).
func Specf(line int, format string, args ...any) *Error {
	return &Error{Kind: Spec, Line: line, Message: fmt.Sprintf(format, args...)}
}

// CodecErr wraps cause as a Codec error.
func CodecErr(message string, cause error) *Error {
	return &Error{Kind: Codec, Message: message, Cause: cause}
}

// Limitf returns a Limit error.
func Limitf(format string, args ...any) *Error {
	return &Error{Kind: Limit, Message: fmt.Sprintf(format, args...)}
}

// Configf returns a Config error.
func Configf(format string, args ...any) *Error {
	return &Error{Kind: Config, Message: fmt.Sprintf(format, args...)}
}

// WithPattern returns a copy of err attributed to pattern. Errors that are
// not *Error are returned unchanged.
func WithPattern(err error, pattern string) error {
	e, ok := err.(*Error)
	if !ok || e.Pattern != "" {
		return err
	}
	c := *e
	c.Pattern = pattern
	return &c
}
