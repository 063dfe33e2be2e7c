/*
Package emitc lowers a checked FTL program to C source text (spec.md
§4.6's "C emitter"). It is a visitor-style walk: one method per AST
variant, mutually recursive through expressions and blocks, writing
directly to an io.Writer rather than building an in-memory tree.

Emitter accumulates the first write error it sees and stops producing
output after that, the same short-circuiting discipline spec.md §5
describes for the rest of the pipeline: once a stage fails, nothing
downstream keeps running.
*/
package emitc

import (
	"fmt"
	"io"
	"strings"

	"github.com/ftlang/ftl/ast"
)

const indentUnit = "    "

// Emitter writes a C translation of a checked FTL program to w.
type Emitter struct {
	w      io.Writer
	indent int
	err    error
}

// New constructs an Emitter writing to w.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes the standard prelude, then every top-level node in nodes,
// and returns the first error encountered, if any.
func (e *Emitter) Emit(nodes []ast.TopLevel) error {
	e.writeLine("#include <stdio.h>")
	for _, node := range nodes {
		e.topLevel(node)
	}
	return e.err
}

// write appends format/args verbatim, with no indentation or trailing
// newline. Once e.err is set, every further write is a no-op.
func (e *Emitter) write(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		e.err = err
	}
}

// writeLine appends the current indentation, format/args, and a
// trailing newline.
func (e *Emitter) writeLine(format string, args ...interface{}) {
	e.write(strings.Repeat(indentUnit, e.indent)+format+"\n", args...)
}

func (e *Emitter) topLevel(node ast.TopLevel) {
	switch n := node.(type) {
	case *ast.FunctionDefinition:
		e.function(n)
	case *ast.Struct:
		e.structDef(n)
	case *ast.FunctionPrototype:
		// An extern declaration needs no definition in the emitted C; the
		// system header or linked object already provides it.
	}
}

func (e *Emitter) function(def *ast.FunctionDefinition) {
	returnType := "void"
	if def.Prototype.ReturnType != nil {
		returnType = cType(def.Prototype.ReturnType)
	}

	e.write(strings.Repeat(indentUnit, e.indent))
	e.write("%s %s(", returnType, def.Prototype.Name)
	for i, arg := range def.Prototype.Args {
		if i > 0 {
			e.write(", ")
		}
		e.write("%s %s", cType(arg.Type), arg.Name)
	}
	e.write(") {\n")

	e.indent++
	for _, instr := range def.Body {
		e.instruction(instr)
	}
	e.indent--
	e.writeLine("}")
}

func (e *Emitter) structDef(s *ast.Struct) {
	e.writeLine("typedef struct {")
	e.indent++
	for _, field := range s.Fields {
		e.writeLine("%s %s;", cType(field.Type), field.Name)
	}
	e.indent--
	e.writeLine("} %s;", s.Name)
}
