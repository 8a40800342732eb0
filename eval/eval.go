/*
File    : monkey/eval/eval.go
Author  : A. Roy
*/

// Package eval implements the tree-walking evaluator: Eval(node, env) walks
// an *ast.Program under a lexically scoped *environment.Environment and
// yields an object.Object. Dispatch is a single type switch over the AST's
// concrete type, rather than a Visitor/downcast chain.
package eval

import (
	"fmt"

	"github.com/aroy/monkey/ast"
	"github.com/aroy/monkey/environment"
	"github.com/aroy/monkey/object"
)

// Eval is the sole entry point. It recurses through every AST node kind this
// language defines; node kinds outside that set cannot occur in a
// successfully parsed program and are programmer errors, not runtime ones.
func Eval(node ast.Node, env *environment.Environment) object.Object {
	switch n := node.(type) {

	case *ast.Program:
		return evalProgram(n, env)

	case *ast.ExpressionStatement:
		if n.Expression == nil {
			return object.NULL
		}
		return Eval(n.Expression, env)

	case *ast.BlockStatement:
		return evalBlockStatement(n, env)

	case *ast.LetStatement:
		val := Eval(n.Value, env)
		if isError(val) {
			return val
		}
		env.Set(n.Name.Value, val)
		return object.NULL

	case *ast.ReturnStatement:
		if n.ReturnValue == nil {
			return &object.ReturnValue{Value: object.NULL}
		}
		val := Eval(n.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}

	case *ast.Boolean:
		return nativeBoolToBooleanObject(n.Value)

	case *ast.Identifier:
		return evalIdentifier(n, env)

	case *ast.PrefixExpression:
		right := Eval(n.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(n.Operator, right)

	case *ast.InfixExpression:
		left := Eval(n.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(n.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpression(n.Operator, left, right)

	case *ast.IfExpression:
		return evalIfExpression(n, env)

	case *ast.FunctionLiteral:
		return &object.Function{Parameters: n.Parameters, Body: n.Body, Env: env}

	case *ast.CallExpression:
		return evalCallExpression(n, env)
	}

	return newError("unknown node type: %T", node)
}

// evalProgram runs top-level statements in order. Unlike a block, it
// unwraps a ReturnValue - a `return v;` at the top level yields v and
// skips the remaining statements - while still short-circuiting on Error
// without unwrapping it.
func evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}
	return result
}

// evalBlockStatement runs a block's statements in order, short-circuiting
// on ReturnValue or Error *without* unwrapping either - that is left to
// evalProgram (top level) or evalCallExpression (function boundary), which
// lets `return` unwind through arbitrarily nested if/block structure.
func evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}
	return result
}

func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return object.TRUE
	}
	return object.FALSE
}

func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.ERROR_OBJ
}

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}
