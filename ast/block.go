package ast

import "github.com/ftlang/ftl/source"

// Block is an ordered sequence of Instructions, e.g. a function body or
// the body of an if/while. Entering a Block in the type checker pushes a
// new lexical scope frame (spec.md §4.5).
type Block []Instruction

// Instruction is the closed set of things that can appear in a Block:
// a bare Expression, a Statement, an IfElse, or a WhileLoop (spec.md §3).
type Instruction interface {
	Node
	instruction()
}

// Statement is the closed set of non-control-flow, non-expression
// instructions: variable declaration, variable assignment, and return.
type Statement interface {
	Instruction
	statement()
}

// VariableDeclaration is `var name : type = value`.
type VariableDeclaration struct {
	Name  string
	Type  DataType
	Value Expression
	Span  source.SourcePositionRange
}

func (v *VariableDeclaration) Pos() source.SourcePositionRange { return v.Span }
func (*VariableDeclaration) instruction()                      {}
func (*VariableDeclaration) statement()                        {}

// VariableAssignment is `name = value`.
type VariableAssignment struct {
	Name  string
	Value Expression
	Span  source.SourcePositionRange
}

func (v *VariableAssignment) Pos() source.SourcePositionRange { return v.Span }
func (*VariableAssignment) instruction()                      {}
func (*VariableAssignment) statement()                        {}

// ReturnStatement is `return value`.
type ReturnStatement struct {
	Value Expression
	Span  source.SourcePositionRange
}

func (r *ReturnStatement) Pos() source.SourcePositionRange { return r.Span }
func (*ReturnStatement) instruction()                      {}
func (*ReturnStatement) statement()                        {}

// IfElse is `if condition { if_true } [else { if_false }]`. An empty
// IfFalse means there is no else branch (spec.md §3).
type IfElse struct {
	Condition Expression
	IfTrue    Block
	IfFalse   Block
	Span      source.SourcePositionRange
}

func (i *IfElse) Pos() source.SourcePositionRange { return i.Span }
func (*IfElse) instruction()                      {}

// WhileLoop is `while condition { body }`.
type WhileLoop struct {
	Condition Expression
	Body      Block
	Span      source.SourcePositionRange
}

func (w *WhileLoop) Pos() source.SourcePositionRange { return w.Span }
func (*WhileLoop) instruction()                      {}
