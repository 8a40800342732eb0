package parser

import (
	"fmt"
	"testing"

	"github.com/aroy/monkey/ast"
	"github.com/aroy/monkey/lexer"
)

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser had %d errors", len(errs))
	for _, msg := range errs {
		t.Errorf("parser error: %s", msg)
	}
	t.FailNow()
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
		expectedValue      interface{}
	}{
		{"let x = 5;", "x", int64(5)},
		{"let y = true;", "y", true},
		{"let foobar = y;", "foobar", "y"},
	}

	for _, tt := range tests {
		l := lexer.New(tt.input)
		p := New(l)
		program := p.ParseProgram()
		checkParserErrors(t, p)

		if len(program.Statements) != 1 {
			t.Fatalf("program.Statements does not contain 1 statement, got=%d", len(program.Statements))
		}

		stmt := program.Statements[0]
		letStmt, ok := stmt.(*ast.LetStatement)
		if !ok {
			t.Fatalf("stmt not *ast.LetStatement, got=%T", stmt)
		}
		if letStmt.Name.Value != tt.expectedIdentifier {
			t.Fatalf("letStmt.Name.Value not %s, got=%s", tt.expectedIdentifier, letStmt.Name.Value)
		}
		testLiteralExpression(t, letStmt.Value, tt.expectedValue)
	}
}

func TestReturnStatements(t *testing.T) {
	input := `
return 5;
return true;
return;
`
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got=%d", len(program.Statements))
	}

	for i, stmt := range program.Statements {
		returnStmt, ok := stmt.(*ast.ReturnStatement)
		if !ok {
			t.Fatalf("statement %d not *ast.ReturnStatement, got=%T", i, stmt)
		}
		if returnStmt.TokenLiteral() != "return" {
			t.Fatalf("returnStmt.TokenLiteral not 'return', got=%q", returnStmt.TokenLiteral())
		}
	}
	if program.Statements[2].(*ast.ReturnStatement).ReturnValue != nil {
		t.Fatalf("expected nil ReturnValue for bare 'return;'")
	}
}

func TestIdentifierExpression(t *testing.T) {
	input := "foobar;"
	program := parseProgram(t, input)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ident, ok := stmt.Expression.(*ast.Identifier)
	if !ok {
		t.Fatalf("exp not *ast.Identifier, got=%T", stmt.Expression)
	}
	if ident.Value != "foobar" {
		t.Fatalf("ident.Value not foobar, got=%s", ident.Value)
	}
}

func TestIntegerLiteralExpression(t *testing.T) {
	input := "5;"
	program := parseProgram(t, input)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	literal, ok := stmt.Expression.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("exp not *ast.IntegerLiteral, got=%T", stmt.Expression)
	}
	if literal.Value != 5 {
		t.Fatalf("literal.Value not 5, got=%d", literal.Value)
	}
}

func TestParsingPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
		value    interface{}
	}{
		{"!5;", "!", int64(5)},
		{"-15;", "-", int64(15)},
		{"!true;", "!", true},
		{"!false;", "!", false},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		exp, ok := stmt.Expression.(*ast.PrefixExpression)
		if !ok {
			t.Fatalf("exp not *ast.PrefixExpression, got=%T", stmt.Expression)
		}
		if exp.Operator != tt.operator {
			t.Fatalf("exp.Operator not %s, got=%s", tt.operator, exp.Operator)
		}
		testLiteralExpression(t, exp.Right, tt.value)
	}
}

func TestParsingInfixExpressions(t *testing.T) {
	tests := []struct {
		input      string
		leftValue  interface{}
		operator   string
		rightValue interface{}
	}{
		{"5 + 5;", int64(5), "+", int64(5)},
		{"5 - 5;", int64(5), "-", int64(5)},
		{"5 * 5;", int64(5), "*", int64(5)},
		{"5 / 5;", int64(5), "/", int64(5)},
		{"5 > 5;", int64(5), ">", int64(5)},
		{"5 < 5;", int64(5), "<", int64(5)},
		{"5 == 5;", int64(5), "==", int64(5)},
		{"5 != 5;", int64(5), "!=", int64(5)},
		{"true == true", true, "==", true},
		{"true != false", true, "!=", false},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		testInfixExpression(t, stmt.Expression, tt.leftValue, tt.operator, tt.rightValue)
	}
}

// TestOperatorPrecedenceParsing feeds each case through the parser and
// compares the re-rendered String() form to the fully-parenthesized
// expectation - this is how associativity and precedence are pinned down.
func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"!f(x)", "(!f(x))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		actual := program.String()
		if actual != tt.expected {
			t.Errorf("expected=%q, got=%q", tt.expected, actual)
		}
	}
}

func TestIfExpression(t *testing.T) {
	input := `if (x < y) { x }`
	program := parseProgram(t, input)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	if !ok {
		t.Fatalf("exp not *ast.IfExpression, got=%T", stmt.Expression)
	}
	testInfixExpression(t, exp.Condition, "x", "<", "y")

	if len(exp.Consequence.Statements) != 1 {
		t.Fatalf("consequence is not 1 statement, got=%d", len(exp.Consequence.Statements))
	}
	if exp.Alternative != nil {
		t.Fatalf("exp.Alternative was not nil, got=%+v", exp.Alternative)
	}
}

func TestIfElseExpression(t *testing.T) {
	input := `if (x < y) { x } else { y }`
	program := parseProgram(t, input)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	if !ok {
		t.Fatalf("exp not *ast.IfExpression, got=%T", stmt.Expression)
	}
	if exp.Alternative == nil {
		t.Fatalf("exp.Alternative was nil")
	}
	if len(exp.Alternative.Statements) != 1 {
		t.Fatalf("alternative is not 1 statement, got=%d", len(exp.Alternative.Statements))
	}
}

func TestFunctionLiteralParsing(t *testing.T) {
	input := `fn(x, y) { x + y; }`
	program := parseProgram(t, input)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("exp not *ast.FunctionLiteral, got=%T", stmt.Expression)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 params, got=%d", len(fn.Parameters))
	}
	testLiteralExpression(t, fn.Parameters[0], "x")
	testLiteralExpression(t, fn.Parameters[1], "y")

	if len(fn.Body.Statements) != 1 {
		t.Fatalf("body has not 1 statement, got=%d", len(fn.Body.Statements))
	}
	bodyStmt := fn.Body.Statements[0].(*ast.ExpressionStatement)
	testInfixExpression(t, bodyStmt.Expression, "x", "+", "y")
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input          string
		expectedParams []string
	}{
		{input: "fn() {};", expectedParams: []string{}},
		{input: "fn(x) {};", expectedParams: []string{"x"}},
		{input: "fn(x, y, z) {};", expectedParams: []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)

		if len(fn.Parameters) != len(tt.expectedParams) {
			t.Fatalf("length parameters wrong, expected %d got=%d", len(tt.expectedParams), len(fn.Parameters))
		}
		for i, ident := range tt.expectedParams {
			testLiteralExpression(t, fn.Parameters[i], ident)
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	input := "add(1, 2 * 3, 4 + 5);"
	program := parseProgram(t, input)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("exp not *ast.CallExpression, got=%T", stmt.Expression)
	}
	testIdentifier(t, exp.Function, "add")

	if len(exp.Arguments) != 3 {
		t.Fatalf("wrong length of arguments, got=%d", len(exp.Arguments))
	}
	testLiteralExpression(t, exp.Arguments[0], int64(1))
	testInfixExpression(t, exp.Arguments[1], int64(2), "*", int64(3))
	testInfixExpression(t, exp.Arguments[2], int64(4), "+", int64(5))
}

// TestCallArgumentAssociativity confirms nested calls chain
// left-associatively through the CALL-precedence entry for LParen, so
// f(g(h)) parses g(h) as a single argument rather than re-entering the
// outer call's argument list.
func TestCallArgumentAssociativity(t *testing.T) {
	program := parseProgram(t, "f(g(h))")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	outer := stmt.Expression.(*ast.CallExpression)
	testIdentifier(t, outer.Function, "f")
	if len(outer.Arguments) != 1 {
		t.Fatalf("expected 1 argument to f, got=%d", len(outer.Arguments))
	}
	inner, ok := outer.Arguments[0].(*ast.CallExpression)
	if !ok {
		t.Fatalf("argument to f was not a call expression, got=%T", outer.Arguments[0])
	}
	testIdentifier(t, inner.Function, "g")
	if len(inner.Arguments) != 1 {
		t.Fatalf("expected 1 argument to g, got=%d", len(inner.Arguments))
	}
	testIdentifier(t, inner.Arguments[0], "h")
}

func TestMissingSemicolonsAreTolerated(t *testing.T) {
	inputs := []string{"let x = 10", "return 10", "5 + 5"}
	for _, in := range inputs {
		l := lexer.New(in)
		p := New(l)
		p.ParseProgram()
		checkParserErrors(t, p)
	}
}

func TestParserErrorRecoveryContinuesToNextStatement(t *testing.T) {
	input := "let x 5; let y = 10;"
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()

	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least one parser error")
	}
	found := false
	for _, stmt := range program.Statements {
		if ls, ok := stmt.(*ast.LetStatement); ok && ls.Name.Value == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parser to recover and still parse 'let y = 10;'")
	}
}

func TestIntegerLiteralOverflowIsAParserError(t *testing.T) {
	input := "99999999999999999999999999999999;"
	l := lexer.New(input)
	p := New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a parser error for an integer literal that overflows int64")
	}
}

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	if len(program.Statements) == 0 {
		t.Fatalf("program has no statements for input %q", input)
	}
	return program
}

func testLiteralExpression(t *testing.T, exp ast.Expression, expected interface{}) {
	t.Helper()
	switch v := expected.(type) {
	case int:
		testIntegerLiteral(t, exp, int64(v))
	case int64:
		testIntegerLiteral(t, exp, v)
	case string:
		testIdentifier(t, exp, v)
	case bool:
		testBooleanLiteral(t, exp, v)
	default:
		t.Fatalf("type of exp not handled, got=%T", exp)
	}
}

func testIntegerLiteral(t *testing.T, il ast.Expression, value int64) {
	t.Helper()
	integ, ok := il.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("il not *ast.IntegerLiteral, got=%T", il)
	}
	if integ.Value != value {
		t.Fatalf("integ.Value not %d, got=%d", value, integ.Value)
	}
}

func testIdentifier(t *testing.T, exp ast.Expression, value string) {
	t.Helper()
	ident, ok := exp.(*ast.Identifier)
	if !ok {
		t.Fatalf("exp not *ast.Identifier, got=%T", exp)
	}
	if ident.Value != value {
		t.Fatalf("ident.Value not %s, got=%s", value, ident.Value)
	}
}

func testBooleanLiteral(t *testing.T, exp ast.Expression, value bool) {
	t.Helper()
	b, ok := exp.(*ast.Boolean)
	if !ok {
		t.Fatalf("exp not *ast.Boolean, got=%T", exp)
	}
	if b.Value != value {
		t.Fatalf("b.Value not %t, got=%t", value, b.Value)
	}
}

func testInfixExpression(t *testing.T, exp ast.Expression, left interface{}, operator string, right interface{}) {
	t.Helper()
	opExp, ok := exp.(*ast.InfixExpression)
	if !ok {
		t.Fatalf("exp not *ast.InfixExpression, got=%T(%s)", exp, fmt.Sprint(exp))
	}
	testLiteralExpression(t, opExp.Left, left)
	if opExp.Operator != operator {
		t.Fatalf("operator not %s, got=%s", operator, opExp.Operator)
	}
	testLiteralExpression(t, opExp.Right, right)
}
