/*
File    : monkey/source/source_test.go
Author  : A. Roy
*/
package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.monkey")
	if err := os.WriteFile(path, []byte("let x = 5;"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != "let x = 5;" {
		t.Errorf("wrong contents, got=%q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.monkey"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestStdin(t *testing.T) {
	got, err := Stdin(strings.NewReader("return 1 + 2;"))
	if err != nil {
		t.Fatalf("Stdin returned error: %v", err)
	}
	if got != "return 1 + 2;" {
		t.Errorf("wrong contents, got=%q", got)
	}
}
