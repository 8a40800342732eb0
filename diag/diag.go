/*
File    : monkey/diag/diag.go
Author  : A. Roy
*/

// Package diag renders an AST for debugging. go-spew already does
// structured, indented, cycle-safe dumping of arbitrary Go values, so this
// package is a thin wrapper around it rather than a hand-rolled indenting
// visitor.
package diag

import (
	"github.com/aroy/monkey/ast"
	"github.com/davecgh/go-spew/spew"
)

var config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders node's full structure, field by field, for `--dump-ast` and
// the REPL's `:ast` command.
func Dump(node ast.Node) string {
	return config.Sdump(node)
}
