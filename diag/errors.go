/*
Package diag defines every error type raised by the FTL front end and the
renderer that turns one into a caret-underlined source excerpt.

Every error type here carries at least one source.SourcePositionRange and
implements both error and Positioned, so a single diag.Render call works
regardless of which stage produced the error. Later stages (lexer, parser,
symtable, typecheck) depend on this package; it depends on nothing but
source and the standard library, by design — see spec.md's stated
dependency order (Source/Position → Diagnostics → Lexer → ...).
*/
package diag

import (
	"fmt"

	"github.com/ftlang/ftl/source"
)

// Positioned is implemented by every diag error type. diag.Render accepts
// anything satisfying it.
type Positioned interface {
	error
	Position() source.SourcePositionRange
}

// UnknownSymbol is raised by the lexer when a rune falls outside FTL's
// accepted alphabet.
type UnknownSymbol struct {
	Char rune
	Pos  source.SourcePositionRange
}

func (e *UnknownSymbol) Error() string {
	return fmt.Sprintf("%s: unknown symbol %q", e.Pos, e.Char)
}

// Position implements Positioned.
func (e *UnknownSymbol) Position() source.SourcePositionRange { return e.Pos }

// IllegalSymbol is raised by the lexer for a partially formed
// multi-character token, e.g. "=/x" — a "=/" that is not completed by "=".
type IllegalSymbol struct {
	Found string
	Pos   source.SourcePositionRange
}

func (e *IllegalSymbol) Error() string {
	return fmt.Sprintf("%s: illegal symbol %q", e.Pos, e.Found)
}

// Position implements Positioned.
func (e *IllegalSymbol) Position() source.SourcePositionRange { return e.Pos }

// ParseNumberError is raised by the lexer when a numeric literal's digit
// run fails to parse as the width its shape implies (integer or float).
type ParseNumberError struct {
	Literal string
	Pos     source.SourcePositionRange
}

func (e *ParseNumberError) Error() string {
	return fmt.Sprintf("%s: cannot parse numeric literal %q", e.Pos, e.Literal)
}

// Position implements Positioned.
func (e *ParseNumberError) Position() source.SourcePositionRange { return e.Pos }

// ExpectedToken is raised by the parser when the next token does not match
// the kind required by the current production.
type ExpectedToken struct {
	Expected string
	Found    string // descriptive rendering of the token actually found, "" if input was exhausted
	Pos      source.SourcePositionRange
}

func (e *ExpectedToken) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s: expected %s, found end of input", e.Pos, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// Position implements Positioned.
func (e *ExpectedToken) Position() source.SourcePositionRange { return e.Pos }

// IllegalToken is raised by the parser when no production accepts the
// next token in the current context.
type IllegalToken struct {
	Context string // e.g. "top level node", "instruction"
	Found   string
	Pos     source.SourcePositionRange
}

func (e *IllegalToken) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s: unexpected end of input in %s", e.Pos, e.Context)
	}
	return fmt.Sprintf("%s: unexpected %s in %s", e.Pos, e.Found, e.Context)
}

// Position implements Positioned.
func (e *IllegalToken) Position() source.SourcePositionRange { return e.Pos }

// DuplicateDefinition is raised by the symbol table when a top-level
// function or struct name collides with one already recorded. This
// implements the stricter behavior spec.md §9 recommends but does not
// mandate.
type DuplicateDefinition struct {
	Name     string
	Pos      source.SourcePositionRange
	FirstPos source.SourcePositionRange
}

func (e *DuplicateDefinition) Error() string {
	return fmt.Sprintf("%s: %q is already defined at %s", e.Pos, e.Name, e.FirstPos)
}

// Position implements Positioned.
func (e *DuplicateDefinition) Position() source.SourcePositionRange { return e.Pos }

// Redeclaration is raised by the type checker when a variable name is
// already bound in any active scope frame (no shadowing across frames).
type Redeclaration struct {
	Name string
	Pos  source.SourcePositionRange
}

func (e *Redeclaration) Error() string {
	return fmt.Sprintf("%s: %q is already declared in this scope", e.Pos, e.Name)
}

// Position implements Positioned.
func (e *Redeclaration) Position() source.SourcePositionRange { return e.Pos }

// UndeclaredVariable is raised by the type checker when a name is used but
// not found anywhere in the active scope chain.
type UndeclaredVariable struct {
	Name string
	Pos  source.SourcePositionRange
}

func (e *UndeclaredVariable) Error() string {
	return fmt.Sprintf("%s: undeclared variable %q", e.Pos, e.Name)
}

// Position implements Positioned.
func (e *UndeclaredVariable) Position() source.SourcePositionRange { return e.Pos }

// TypeMismatch is raised by the type checker whenever an expected type and
// an actual type disagree at a span. Expected/Actual are the rendered
// DataType strings rather than ast.DataType itself, keeping diag free of a
// dependency on ast (diag sits below lexer and ast in the dependency
// order spec.md prescribes).
type TypeMismatch struct {
	Expected string
	Actual   string
	Pos      source.SourcePositionRange
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("%s: type mismatch: expected %s, got %s", e.Pos, e.Expected, e.Actual)
}

// Position implements Positioned.
func (e *TypeMismatch) Position() source.SourcePositionRange { return e.Pos }

// UndefinedFunctionCall is raised by the type checker when a call's target
// name is not in the function symbol table.
type UndefinedFunctionCall struct {
	Name string
	Pos  source.SourcePositionRange
}

func (e *UndefinedFunctionCall) Error() string {
	return fmt.Sprintf("%s: call to undefined function %q", e.Pos, e.Name)
}

// Position implements Positioned.
func (e *UndefinedFunctionCall) Position() source.SourcePositionRange { return e.Pos }

// ArgumentCountMismatch is raised by the type checker when a call site
// passes a different number of parameters than the callee declares.
type ArgumentCountMismatch struct {
	Name     string
	Expected int
	Actual   int
	Pos      source.SourcePositionRange
}

func (e *ArgumentCountMismatch) Error() string {
	return fmt.Sprintf("%s: %q expects %d argument(s), got %d", e.Pos, e.Name, e.Expected, e.Actual)
}

// Position implements Positioned.
func (e *ArgumentCountMismatch) Position() source.SourcePositionRange { return e.Pos }

// VoidValueUsed is raised by the type checker when a call to a function
// with no declared return type is used in a value-producing expression
// context, resolving spec.md §9's open question conservatively: such a
// call is legal only as a standalone instruction.
type VoidValueUsed struct {
	Name string
	Pos  source.SourcePositionRange
}

func (e *VoidValueUsed) Error() string {
	return fmt.Sprintf("%s: %q has no return value and cannot be used as an expression", e.Pos, e.Name)
}

// Position implements Positioned.
func (e *VoidValueUsed) Position() source.SourcePositionRange { return e.Pos }
