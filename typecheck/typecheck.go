/*
Package typecheck implements the second semantic pass over a parsed FTL
program: a scope-aware walk that infers and checks every expression's
type against the declarations recorded by symtable (spec.md §4.5).

The Checker carries a frame-stack discipline that mirrors a call stack:
entering a function body, an if/else branch, or a while body pushes a
frame seeded with whatever names that block introduces; leaving it pops
the frame and forgets those names, so a declaration never outlives the
block it was made in and never shadows one made in an enclosing frame.
*/
package typecheck

import (
	"fmt"

	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/symtable"
)

// Checker walks top-level nodes, threading {functions, structs} from
// symtable plus its own in-scope variables and call stack (spec.md
// §4.5's State).
type Checker struct {
	symbols   *symtable.Table
	variables map[string]ast.DataType
	callStack []map[string]struct{}

	// currentReturnType is the enclosing function's declared return type,
	// nil for a function with none. It is set on entering a function body
	// and left untouched by nested if/while blocks, so a Return deep
	// inside a loop still checks against the right function.
	currentReturnType ast.DataType
}

// NewChecker constructs a Checker against an already-built symbol table.
func NewChecker(symbols *symtable.Table) *Checker {
	return &Checker{
		symbols:   symbols,
		variables: make(map[string]ast.DataType),
	}
}

// Check type-checks every function definition among nodes. Struct
// definitions and extern prototypes carry nothing further to verify at
// this pass; they exist purely for symtable to have recorded them.
func (c *Checker) Check(nodes []ast.TopLevel) error {
	for _, node := range nodes {
		def, ok := node.(*ast.FunctionDefinition)
		if !ok {
			continue
		}
		if err := c.function(def); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) function(def *ast.FunctionDefinition) error {
	previousReturnType := c.currentReturnType
	c.currentReturnType = def.Prototype.ReturnType
	defer func() { c.currentReturnType = previousReturnType }()

	c.pushFrame()
	defer c.popFrame()

	for _, arg := range def.Prototype.Args {
		c.addVariable(arg.Name, arg.Type)
	}
	for _, instr := range def.Body {
		if err := c.instruction(instr); err != nil {
			return err
		}
	}
	return nil
}

// instruction dispatches on the concrete instruction kind (spec.md §4.5).
func (c *Checker) instruction(instr ast.Instruction) error {
	switch n := instr.(type) {
	case *ast.VariableDeclaration:
		return c.variableDeclaration(n)
	case *ast.VariableAssignment:
		return c.variableAssignment(n)
	case *ast.ReturnStatement:
		return c.returnStatement(n)
	case *ast.IfElse:
		return c.ifElse(n)
	case *ast.WhileLoop:
		return c.whileLoop(n)
	case ast.Expression:
		return c.checkExpressionStatement(n)
	default:
		return fmt.Errorf("typecheck: unhandled instruction %T", instr)
	}
}

// pushFrame opens a new scope frame.
func (c *Checker) pushFrame() {
	c.callStack = append(c.callStack, make(map[string]struct{}))
}

// popFrame closes the current scope frame, forgetting every variable
// it introduced.
func (c *Checker) popFrame() {
	n := len(c.callStack)
	frame := c.callStack[n-1]
	c.callStack = c.callStack[:n-1]
	for name := range frame {
		delete(c.variables, name)
	}
}

// addVariable records name in both the flat variables map and the
// current frame, so popFrame can later remove it.
func (c *Checker) addVariable(name string, t ast.DataType) {
	c.variables[name] = t
	c.callStack[len(c.callStack)-1][name] = struct{}{}
}

// declared reports whether name is currently in scope.
func (c *Checker) declared(name string) (ast.DataType, bool) {
	t, ok := c.variables[name]
	return t, ok
}

// InferExpressionType exposes inferType for callers that need to
// type-check a standalone expression outside a function body, such as
// an interactive checker that echoes an expression's inferred type.
func (c *Checker) InferExpressionType(expr ast.Expression) (ast.DataType, error) {
	return c.inferType(expr)
}
