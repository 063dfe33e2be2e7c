package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
	"github.com/ftlang/ftl/lexer"
	"github.com/ftlang/ftl/source"
)

// parseAll drains every top-level node from src, requiring that no
// error occurs.
func parseAll(t *testing.T, src string) []ast.TopLevel {
	t.Helper()
	p := New(lexer.New(source.New("t.ftl", src)))
	var nodes []ast.TopLevel
	for {
		node, err, ok := p.Next()
		if !ok {
			break
		}
		require.NoError(t, err)
		nodes = append(nodes, node)
	}
	return nodes
}

// parseExpr parses a single expression from src using a fresh Parser,
// bypassing top-level dispatch.
func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := New(lexer.New(source.New("t.ftl", src)))
	expr, err := p.parseExpression(0)
	require.NoError(t, err)
	return expr
}

func TestParser_FunctionDefinition_EmptyBody(t *testing.T) {
	nodes := parseAll(t, "def main() { }")
	require.Len(t, nodes, 1)

	def, ok := nodes[0].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "main", def.Prototype.Name)
	assert.Empty(t, def.Prototype.Args)
	assert.Nil(t, def.Prototype.ReturnType)
	assert.Empty(t, def.Body)
}

func TestParser_FunctionDefinition_ArgsAndReturnType(t *testing.T) {
	nodes := parseAll(t, "def add(a: int, b: int): int { return a + b }")
	require.Len(t, nodes, 1)

	def, ok := nodes[0].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "add", def.Prototype.Name)
	require.Len(t, def.Prototype.Args, 2)
	assert.Equal(t, "a", def.Prototype.Args[0].Name)
	assert.Equal(t, ast.BasicType{Kind: ast.Int}, def.Prototype.Args[0].Type)
	assert.Equal(t, ast.BasicType{Kind: ast.Int}, def.Prototype.ReturnType)

	require.Len(t, def.Body, 1)
	ret, ok := def.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Operator)
}

func TestParser_ExternPrototype_HasNoBody(t *testing.T) {
	nodes := parseAll(t, "extern printf(fmt: ptr int)")
	require.Len(t, nodes, 1)

	proto, ok := nodes[0].(*ast.FunctionPrototype)
	require.True(t, ok)
	assert.Equal(t, "printf", proto.Name)
	require.Len(t, proto.Args, 1)
	assert.Equal(t, ast.PointerType{Elem: ast.BasicType{Kind: ast.Int}}, proto.Args[0].Type)
}

func TestParser_StructDefinition_Fields(t *testing.T) {
	nodes := parseAll(t, "struct point { x: int, y: int }")
	require.Len(t, nodes, 1)

	st, ok := nodes[0].(*ast.Struct)
	require.True(t, ok)
	assert.Equal(t, "point", st.Name)
	require.Len(t, st.Fields, 2)
	assert.Equal(t, "x", st.Fields[0].Name)
	assert.Equal(t, "y", st.Fields[1].Name)
}

func TestParser_StructDefinition_FieldsWithoutCommas(t *testing.T) {
	nodes := parseAll(t, "struct point {\n  x: int\n  y: int\n}")
	require.Len(t, nodes, 1)

	st, ok := nodes[0].(*ast.Struct)
	require.True(t, ok)
	require.Len(t, st.Fields, 2)
}

func TestParser_Expression_AddBindsLooserThanMultiply(t *testing.T) {
	expr := parseExpr(t, "a + b * c")
	bin, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Operator)

	lhs, ok := bin.Lhs.(*ast.VariableExpression)
	require.True(t, ok)
	assert.Equal(t, "a", lhs.Name)

	rhs, ok := bin.Rhs.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Multiply, rhs.Operator)
}

func TestParser_Expression_ParenthesesOverridePrecedence(t *testing.T) {
	expr := parseExpr(t, "(a + b) * c")
	bin, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Multiply, bin.Operator)

	lhs, ok := bin.Lhs.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Add, lhs.Operator)
}

func TestParser_Expression_LeftAssociative(t *testing.T) {
	expr := parseExpr(t, "a - b - c")
	outer, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Subtract, outer.Operator)

	inner, ok := outer.Lhs.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Subtract, inner.Operator)

	_, rhsIsVar := outer.Rhs.(*ast.VariableExpression)
	assert.True(t, rhsIsVar)
}

func TestParser_Expression_FunctionCallNoArgs(t *testing.T) {
	expr := parseExpr(t, "f()")
	call, ok := expr.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)
	assert.Empty(t, call.Params)
}

func TestParser_Expression_FunctionCallWithArgs(t *testing.T) {
	expr := parseExpr(t, "f(a, 1)")
	call, ok := expr.(*ast.FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Params, 2)
	_, firstIsVar := call.Params[0].(*ast.VariableExpression)
	assert.True(t, firstIsVar)
	_, secondIsNumber := call.Params[1].(*ast.NumberLiteral)
	assert.True(t, secondIsNumber)
}

func TestParser_IfElse(t *testing.T) {
	nodes := parseAll(t, "def f() { if a < b { return a } else { return b } }")
	def := nodes[0].(*ast.FunctionDefinition)
	ifElse, ok := def.Body[0].(*ast.IfElse)
	require.True(t, ok)
	assert.Len(t, ifElse.IfTrue, 1)
	assert.Len(t, ifElse.IfFalse, 1)
}

func TestParser_IfWithoutElse(t *testing.T) {
	nodes := parseAll(t, "def f() { if a < b { return a } }")
	def := nodes[0].(*ast.FunctionDefinition)
	ifElse, ok := def.Body[0].(*ast.IfElse)
	require.True(t, ok)
	assert.Nil(t, ifElse.IfFalse)
}

func TestParser_WhileLoop(t *testing.T) {
	nodes := parseAll(t, "def f() { while a < b { a = a + 1 } }")
	def := nodes[0].(*ast.FunctionDefinition)
	loop, ok := def.Body[0].(*ast.WhileLoop)
	require.True(t, ok)
	assert.Len(t, loop.Body, 1)
	_, isAssignment := loop.Body[0].(*ast.VariableAssignment)
	assert.True(t, isAssignment)
}

func TestParser_VariableDeclarationAndAssignment(t *testing.T) {
	nodes := parseAll(t, "def f() { var x: int = 1 x = 2 }")
	def := nodes[0].(*ast.FunctionDefinition)
	require.Len(t, def.Body, 2)

	decl, ok := def.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)

	assign, ok := def.Body[1].(*ast.VariableAssignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParser_PointerType(t *testing.T) {
	nodes := parseAll(t, "def f(p: ptr ptr int) { }")
	def := nodes[0].(*ast.FunctionDefinition)
	assert.Equal(t, ast.PointerType{Elem: ast.PointerType{Elem: ast.BasicType{Kind: ast.Int}}}, def.Prototype.Args[0].Type)
}

func TestParser_IllegalTokenAtTopLevel(t *testing.T) {
	p := New(lexer.New(source.New("t.ftl", "42")))
	_, err, ok := p.Next()
	require.True(t, ok)
	require.Error(t, err)
	var illegal *diag.IllegalToken
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, "top level node", illegal.Context)
}

func TestParser_ExpectedTokenOnMissingParen(t *testing.T) {
	p := New(lexer.New(source.New("t.ftl", "def f(a: int { }")))
	_, err, ok := p.Next()
	require.True(t, ok)
	require.Error(t, err)
	var expected *diag.ExpectedToken
	require.ErrorAs(t, err, &expected)
}

func TestParser_HaltsAfterFirstError(t *testing.T) {
	p := New(lexer.New(source.New("t.ftl", "42 def f() { }")))
	_, err, ok := p.Next()
	require.True(t, ok)
	require.Error(t, err)

	_, _, ok = p.Next()
	assert.False(t, ok, "parser must not recover and continue after an error")
}

func TestParser_StructFieldType(t *testing.T) {
	nodes := parseAll(t, "struct node { value: int, next: ptr node }")
	st := nodes[0].(*ast.Struct)
	assert.Equal(t, ast.PointerType{Elem: ast.StructType{Name: "node"}}, st.Fields[1].Type)
}
