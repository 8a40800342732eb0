/*
File    : monkey/eval/eval_calls.go
Author  : A. Roy
*/
package eval

import (
	"github.com/aroy/monkey/ast"
	"github.com/aroy/monkey/environment"
	"github.com/aroy/monkey/object"
)

// evalCallExpression evaluates the callee, evaluates arguments left to
// right (short-circuiting on the first error), and applies the result.
func evalCallExpression(node *ast.CallExpression, env *environment.Environment) object.Object {
	function := Eval(node.Function, env)
	if isError(function) {
		return function
	}

	args := evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return applyFunction(function, args)
}

func evalExpressions(exps []ast.Expression, env *environment.Environment) []object.Object {
	var result []object.Object

	for _, e := range exps {
		evaluated := Eval(e, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

// applyFunction requires fn to be a Function, creates a fresh scope
// enclosing the function's captured environment, binds parameters to
// arguments positionally, evaluates the body, and unwraps a ReturnValue -
// the only place in the evaluator that does so besides the Program root.
//
// Arity is not enforced: extra arguments are silently ignored and missing
// arguments leave their parameter unbound, so a body that reads an unbound
// parameter sees the ordinary "identifier not found" error.
func applyFunction(fn object.Object, args []object.Object) object.Object {
	function, ok := fn.(*object.Function)
	if !ok {
		return newError("not a function: %s", fn.Type())
	}

	extendedEnv := extendFunctionEnv(function, args)
	evaluated := Eval(function.Body, extendedEnv)
	return unwrapReturnValue(evaluated)
}

func extendFunctionEnv(fn *object.Function, args []object.Object) *environment.Environment {
	env := environment.NewEnclosed(fn.Env)

	for i, param := range fn.Parameters {
		if i >= len(args) {
			break
		}
		env.Set(param.Value, args[i])
	}
	return env
}

func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}
