/*
File    : monkey/eval/eval_conditionals.go
Author  : A. Roy
*/
package eval

import (
	"github.com/aroy/monkey/ast"
	"github.com/aroy/monkey/environment"
	"github.com/aroy/monkey/object"
)

// evalIfExpression evaluates the condition, then the consequence if truthy,
// else the alternative if present, else Null. ast.IfExpression.Alternative
// is a nilable concrete pointer, checked directly rather than through the
// Expression interface - see ast.Equal's doc comment for why that matters.
func evalIfExpression(ie *ast.IfExpression, env *environment.Environment) object.Object {
	condition := Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return Eval(ie.Alternative, env)
	}
	return object.NULL
}

// isTruthy implements this language's single truthiness rule: booleans are
// themselves, Null is false, everything else (integers, functions) is true.
func isTruthy(obj object.Object) bool {
	switch obj {
	case object.NULL:
		return false
	case object.TRUE:
		return true
	case object.FALSE:
		return false
	default:
		return true
	}
}
