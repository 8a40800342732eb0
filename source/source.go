/*
File    : monkey/source/source.go
Author  : A. Roy
*/

// Package source loads program text for the interpreter, the thin glue
// layer between bytes on disk (or stdin) and the lexer.
package source

import (
	"fmt"
	"io"
	"os"
)

// Load reads the file at path and returns its contents as a string ready
// for lexer.New. Errors are wrapped with the path for a useful CLI message.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}
	return string(data), nil
}

// Stdin reads r to completion, used by `monkeygo -` to run a whole script
// piped in on stdin.
func Stdin(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("could not read stdin: %w", err)
	}
	return string(data), nil
}
