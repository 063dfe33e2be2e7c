package emitftl

import "github.com/ftlang/ftl/ast"

// instruction dispatches on the concrete instruction kind, one
// statement per line (spec.md §4.6).
func (e *Emitter) instruction(instr ast.Instruction) {
	switch n := instr.(type) {
	case *ast.VariableDeclaration:
		e.variableDeclaration(n)
	case *ast.VariableAssignment:
		e.variableAssignment(n)
	case *ast.ReturnStatement:
		e.returnStatement(n)
	case *ast.IfElse:
		e.ifElse(n)
	case *ast.WhileLoop:
		e.whileLoop(n)
	case ast.Expression:
		e.writeLine("%s", e.renderExpression(n))
	}
}

func (e *Emitter) variableDeclaration(decl *ast.VariableDeclaration) {
	e.writeLine("var %s: %s = %s", decl.Name, ftlType(decl.Type), e.renderExpression(decl.Value))
}

func (e *Emitter) variableAssignment(assign *ast.VariableAssignment) {
	e.writeLine("%s = %s", assign.Name, e.renderExpression(assign.Value))
}

func (e *Emitter) returnStatement(ret *ast.ReturnStatement) {
	e.writeLine("return %s", e.renderExpression(ret.Value))
}

func (e *Emitter) ifElse(n *ast.IfElse) {
	e.writeLine("if %s {", e.renderExpression(n.Condition))
	e.indent++
	for _, instr := range n.IfTrue {
		e.instruction(instr)
	}
	e.indent--
	if len(n.IfFalse) == 0 {
		e.writeLine("}")
		return
	}
	e.writeLine("} else {")
	e.indent++
	for _, instr := range n.IfFalse {
		e.instruction(instr)
	}
	e.indent--
	e.writeLine("}")
}

func (e *Emitter) whileLoop(n *ast.WhileLoop) {
	e.writeLine("while %s {", e.renderExpression(n.Condition))
	e.indent++
	for _, instr := range n.Body {
		e.instruction(instr)
	}
	e.indent--
	e.writeLine("}")
}
