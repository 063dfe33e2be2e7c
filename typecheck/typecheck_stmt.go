package typecheck

import (
	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
)

// variableDeclaration checks `var name : type = value` (spec.md §4.5):
// the value's inferred type must equal the declared type, and the name
// must not already be in scope (no shadowing across active frames).
func (c *Checker) variableDeclaration(decl *ast.VariableDeclaration) error {
	valueType, err := c.inferType(decl.Value)
	if err != nil {
		return err
	}
	if !ast.TypesEqual(valueType, decl.Type) {
		return &diag.TypeMismatch{Expected: decl.Type.String(), Actual: valueType.String(), Pos: decl.Span}
	}
	if _, exists := c.declared(decl.Name); exists {
		return &diag.Redeclaration{Name: decl.Name, Pos: decl.Span}
	}
	c.addVariable(decl.Name, decl.Type)
	return nil
}

// variableAssignment checks `name = value`: the value's inferred type
// must equal the type recorded for name, and name must already be
// declared.
func (c *Checker) variableAssignment(assign *ast.VariableAssignment) error {
	valueType, err := c.inferType(assign.Value)
	if err != nil {
		return err
	}
	varType, ok := c.declared(assign.Name)
	if !ok {
		return &diag.UndeclaredVariable{Name: assign.Name, Pos: assign.Span}
	}
	if !ast.TypesEqual(valueType, varType) {
		return &diag.TypeMismatch{Expected: varType.String(), Actual: valueType.String(), Pos: assign.Span}
	}
	return nil
}

// returnStatement checks that the returned value's type matches the
// enclosing function's declared return type, including the case where
// the function declares none (a return value there is itself a
// mismatch, since the function only ever lowers to a void C function).
func (c *Checker) returnStatement(ret *ast.ReturnStatement) error {
	valueType, err := c.inferType(ret.Value)
	if err != nil {
		return err
	}
	if c.currentReturnType == nil || !ast.TypesEqual(valueType, c.currentReturnType) {
		expected := "void"
		if c.currentReturnType != nil {
			expected = c.currentReturnType.String()
		}
		return &diag.TypeMismatch{Expected: expected, Actual: valueType.String(), Pos: ret.Span}
	}
	return nil
}

// ifElse checks the condition, then each branch in its own pushed and
// popped scope frame. An empty IfFalse means there was no else clause.
func (c *Checker) ifElse(n *ast.IfElse) error {
	if _, err := c.inferType(n.Condition); err != nil {
		return err
	}

	if err := c.checkBlockInNewFrame(n.IfTrue); err != nil {
		return err
	}
	if len(n.IfFalse) == 0 {
		return nil
	}
	return c.checkBlockInNewFrame(n.IfFalse)
}

// whileLoop checks the condition, then the body in its own frame.
func (c *Checker) whileLoop(n *ast.WhileLoop) error {
	if _, err := c.inferType(n.Condition); err != nil {
		return err
	}
	return c.checkBlockInNewFrame(n.Body)
}

// checkBlockInNewFrame pushes a frame, checks every instruction in
// block, and always pops the frame before returning — even on error, so
// a caller that recovers from one block's failure never leaks scope.
func (c *Checker) checkBlockInNewFrame(block ast.Block) error {
	c.pushFrame()
	defer c.popFrame()
	for _, instr := range block {
		if err := c.instruction(instr); err != nil {
			return err
		}
	}
	return nil
}
