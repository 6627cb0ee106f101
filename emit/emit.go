// Package emit writes the source of a generated lexer.
//
// The source is produced by substituting ${key} placeholders in a template
// with values derived from the lexer specification and its minimized DFA.
// The default template, DefaultTemplate, produces a Go type backed by
// package scanner; any other text template may be supplied, for example to
// target another language.
package emit

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pradeesh-kumar/lex-engine/dfa"
	"github.com/pradeesh-kumar/lex-engine/spec"
)

//go:embed templates/scanner.go.tmpl
var defaultTemplate []byte

// DefaultTemplate returns a copy of the built-in Go scanner template.
func DefaultTemplate() []byte {
	return bytes.Clone(defaultTemplate)
}

// Options configures Generate.
type Options struct {
	// OutputDir is created if missing. Empty means the working directory.
	OutputDir string

	// Template is the path of a custom template. Empty selects
	// DefaultTemplate.
	Template string

	// Logger receives progress messages. Nil disables logging.
	Logger *zap.Logger
}

// FileName returns the name of the file generated for class.
func FileName(class string) string {
	return strings.ToLower(class) + ".go"
}

// Source renders the scanner source of s backed by d using tmpl.
//
// The result is gofmt-formatted when it parses as Go; otherwise it is
// returned as rendered.
func Source(s *spec.Spec, d *dfa.DFA, tmpl []byte, logger *zap.Logger) ([]byte, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, err := NewContext(s, d)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Render(&buf, tmpl, ctx); err != nil {
		return nil, fmt.Errorf("emit: render: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		logger.Debug("generated source is not gofmt-able, writing as rendered", zap.Error(err))
		return buf.Bytes(), nil
	}
	return out, nil
}

// Generate writes the scanner of s backed by d and returns the path of the
// written file.
func Generate(s *spec.Spec, d *dfa.DFA, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl := defaultTemplate
	if opts.Template != "" {
		b, err := os.ReadFile(opts.Template)
		if err != nil {
			return "", fmt.Errorf("emit: read template: %w", err)
		}
		tmpl = b
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	src, err := Source(s, d, tmpl, logger)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(s.Class))
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("emit: %w", err)
	}
	logger.Info("lexer generated", zap.String("path", path), zap.Int("bytes", len(src)))
	return path, nil
}

func ensureDir(dir string) error {
	fi, err := os.Stat(dir)
	switch {
	case err == nil && !fi.IsDir():
		return fmt.Errorf("emit: output path %s is not a directory", dir)
	case err == nil:
		return nil
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("emit: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("emit: %w", err)
	}
}
