// Command lexgen generates table-driven lexers from specification files.
//
// Usage:
//
//	lexgen generate -s lexer.spec -d internal/lexer
//	lexgen init
//	lexgen check lexer.spec "input one" "input two"
//
// Running lexgen with flags and no subcommand behaves like generate.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		errorStyle.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
