/*
Package emitftl renders a checked FTL program back to canonical FTL
source text — the "FTL emitter (formatter)" of spec.md §4.6. Keywords
are lowercased, every statement gets its own line, indentation inside a
block is consistent, binary operators get a single surrounding space,
and no line carries trailing whitespace.

Formatting is round-trip stable up to position information: feeding the
output back through lexer/parser reproduces the same AST (spec.md §8).
The one piece of information the formatter cannot preserve is source
comments, since the AST itself carries none — the parser drops the
lexer's Comment tokens before any production sees them.
*/
package emitftl

import (
	"fmt"
	"io"
	"strings"

	"github.com/ftlang/ftl/ast"
)

const indentUnit = "  "

// Emitter writes a canonical FTL rendering of a program to w.
type Emitter struct {
	w      io.Writer
	indent int
	err    error
}

// New constructs an Emitter writing to w.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes every top-level node in nodes, separated by a blank line,
// and returns the first error encountered, if any.
func (e *Emitter) Emit(nodes []ast.TopLevel) error {
	for i, node := range nodes {
		if i > 0 {
			e.write("\n")
		}
		e.topLevel(node)
	}
	return e.err
}

func (e *Emitter) write(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		e.err = err
	}
}

func (e *Emitter) writeLine(format string, args ...interface{}) {
	e.write(strings.Repeat(indentUnit, e.indent)+format+"\n", args...)
}

func (e *Emitter) topLevel(node ast.TopLevel) {
	switch n := node.(type) {
	case *ast.FunctionDefinition:
		e.function(n)
	case *ast.FunctionPrototype:
		e.externPrototype(n)
	case *ast.Struct:
		e.structDef(n)
	}
}

func (e *Emitter) function(def *ast.FunctionDefinition) {
	e.write(strings.Repeat(indentUnit, e.indent))
	e.write("def %s", def.Prototype.Name)
	e.header(def.Prototype)
	e.write(" {\n")
	e.indent++
	for _, instr := range def.Body {
		e.instruction(instr)
	}
	e.indent--
	e.writeLine("}")
}

func (e *Emitter) externPrototype(proto *ast.FunctionPrototype) {
	e.write(strings.Repeat(indentUnit, e.indent))
	e.write("extern %s", proto.Name)
	e.header(proto)
	e.write("\n")
}

// header renders the shared "( arglist ) [ : returntype ]" portion of a
// function signature, without the leading "def"/"extern name".
func (e *Emitter) header(proto *ast.FunctionPrototype) {
	e.write("(")
	for i, arg := range proto.Args {
		if i > 0 {
			e.write(", ")
		}
		e.write("%s: %s", arg.Name, ftlType(arg.Type))
	}
	e.write(")")
	if proto.ReturnType != nil {
		e.write(": %s", ftlType(proto.ReturnType))
	}
}

func (e *Emitter) structDef(s *ast.Struct) {
	e.writeLine("struct %s {", s.Name)
	e.indent++
	for _, field := range s.Fields {
		e.writeLine("%s: %s", field.Name, ftlType(field.Type))
	}
	e.indent--
	e.writeLine("}")
}

// ftlType renders an ast.DataType in FTL's own prefix notation: "ptr
// int", not C's postfix "int*" (spec.md §4.3's type grammar).
func ftlType(t ast.DataType) string {
	switch dt := t.(type) {
	case ast.BasicType:
		return dt.String()
	case ast.StructType:
		return dt.Name
	case ast.PointerType:
		return "ptr " + ftlType(dt.Elem)
	default:
		return "?"
	}
}
