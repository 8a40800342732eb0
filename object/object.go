/*
File    : monkey/object/object.go
Author  : A. Roy
*/

// Package object defines the runtime value representation the evaluator
// produces and consumes: a closed sum (Integer, Boolean, Null, ReturnValue,
// Function, Error), each variant implementing Type()/Inspect().
package object

import (
	"fmt"
	"strings"

	"github.com/aroy/monkey/ast"
	"github.com/aroy/monkey/environment"
)

// ObjectType names a runtime value's dynamic type, used both for dispatch
// inside the evaluator and for the type-name strings ("INTEGER",
// "BOOLEAN", ...) that appear in evaluator error messages.
type ObjectType string

const (
	INTEGER_OBJ      ObjectType = "INTEGER"
	BOOLEAN_OBJ      ObjectType = "BOOLEAN"
	NULL_OBJ         ObjectType = "NULL"
	RETURN_VALUE_OBJ ObjectType = "RETURN_VALUE"
	FUNCTION_OBJ     ObjectType = "FUNCTION"
	ERROR_OBJ        ObjectType = "ERROR"
)

// Object is the interface every runtime value implements.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer wraps a 64-bit signed integer.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Boolean wraps a bool. TRUE and FALSE below are the two singleton
// instances the evaluator reuses rather than allocating, mirroring the
// common tree-walker trick of interning the only two boolean values.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// Null is the sole null value, also interned as NULL below.
type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

// ReturnValue wraps the operand of a `return` so it can unwind through
// nested blocks without being mistaken for a plain value; eval.Eval
// unwraps it at the Program root and at a function call boundary, nowhere
// else.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Function is a closure: parameter names, a shared body, and the
// environment captured at FunctionLiteral-evaluation time. Env is the
// live defining environment (see package environment's doc comment for
// why this must not be a snapshot).
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }

// Inspect renders the function's signature only, never its body - a
// closure's body can be arbitrarily large and carries a captured
// environment that has no useful textual form.
func (f *Function) Inspect() string {
	var out strings.Builder
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") { ... }")
	return out.String()
}

// Error is the sentinel for runtime errors. It propagates like
// ReturnValue but is never unwrapped - only observed and, at the
// outermost level, displayed as "ERROR: <message>".
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

// TRUE, FALSE, and NULL are the interned singletons eval.Eval returns for
// every Boolean/Null value so object identity (`==` on the Go pointers)
// can be used as a cheap truthiness/equality shortcut where convenient.
var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)
