package emitc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/lexer"
	"github.com/ftlang/ftl/parser"
	"github.com/ftlang/ftl/source"
)

func parseProgram(t *testing.T, src string) []ast.TopLevel {
	t.Helper()
	p := parser.New(lexer.New(source.New("t.ftl", src)))
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

func emit(t *testing.T, src string) string {
	t.Helper()
	nodes := parseProgram(t, src)
	var buf strings.Builder
	require.NoError(t, New(&buf).Emit(nodes))
	return buf.String()
}

func TestEmit_PreludeIsAlwaysFirst(t *testing.T) {
	out := emit(t, `def f() { }`)
	assert.True(t, strings.HasPrefix(out, "#include <stdio.h>\n"))
}

func TestEmit_VoidFunctionHeader(t *testing.T) {
	out := emit(t, `def f() { }`)
	assert.Contains(t, out, "void f() {")
}

func TestEmit_FunctionWithArgsAndReturnType(t *testing.T) {
	out := emit(t, `def add(a: int, b: int): int { return a + b }`)
	assert.Contains(t, out, "int add(int a, int b) {")
	assert.Contains(t, out, "return (a + b);")
}

func TestEmit_NoTrailingCommaInArgList(t *testing.T) {
	out := emit(t, `def f(a: int, b: int) { }`)
	assert.Contains(t, out, "f(int a, int b)")
	assert.NotContains(t, out, "int b, )")
}

func TestEmit_ExternProducesNoDefinition(t *testing.T) {
	out := emit(t, `extern printf(fmt: ptr int)`)
	assert.NotContains(t, out, "printf(")
}

func TestEmit_StructLowersToTypedef(t *testing.T) {
	out := emit(t, `struct point { x: int, y: int }`)
	assert.Contains(t, out, "typedef struct {")
	assert.Contains(t, out, "int x;")
	assert.Contains(t, out, "int y;")
	assert.Contains(t, out, "} point;")
}

func TestEmit_PointerTypeIsPostfixStar(t *testing.T) {
	out := emit(t, `def f(p: ptr int) { }`)
	assert.Contains(t, out, "f(int* p)")
}

func TestEmit_DoublePointerIsDoubleStar(t *testing.T) {
	out := emit(t, `def f(p: ptr ptr int) { }`)
	assert.Contains(t, out, "f(int** p)")
}

func TestEmit_NotEqualEmitsAsCOperator(t *testing.T) {
	out := emit(t, `def f(): int { return 1 =/= 2 }`)
	assert.Contains(t, out, "(1 != 2)")
	assert.NotContains(t, out, "=/=")
}

func TestEmit_FloatTypeAndLiteral(t *testing.T) {
	out := emit(t, `def f(): float { return 1.5 }`)
	assert.Contains(t, out, "double f()")
	assert.Contains(t, out, "return 1.5;")
}

func TestEmit_IntegralFloatKeepsDecimalPoint(t *testing.T) {
	out := emit(t, `def f(): float { return 1. }`)
	assert.Contains(t, out, "return 1.0;")
}

func TestEmit_IfElseLowersDirectly(t *testing.T) {
	out := emit(t, `def f(): int { if 1 < 2 { return 1 } else { return 2 } }`)
	assert.Contains(t, out, "if ((1 < 2)) {")
	assert.Contains(t, out, "} else {")
}

func TestEmit_WhileLoop(t *testing.T) {
	out := emit(t, `def f() { var i: int = 0 while i < 10 { i = i + 1 } }`)
	assert.Contains(t, out, "while ((i < 10)) {")
	assert.Contains(t, out, "i = (i + 1);")
}

func TestEmit_VariableDeclarationAndAssignment(t *testing.T) {
	out := emit(t, `def f() { var x: int = 1 x = 2 }`)
	assert.Contains(t, out, "int x = 1;")
	assert.Contains(t, out, "x = 2;")
}

func TestEmit_BareFunctionCallStatementGetsSemicolon(t *testing.T) {
	out := emit(t, `
		def log(x: int) { }
		def f() { log(1) }
	`)
	assert.Contains(t, out, "log(1);")
}
