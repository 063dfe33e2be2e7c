package main

import (
	"fmt"
	"os"

	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
	"github.com/ftlang/ftl/lexer"
	"github.com/ftlang/ftl/parser"
	"github.com/ftlang/ftl/source"
	"github.com/ftlang/ftl/symtable"
	"github.com/ftlang/ftl/typecheck"
)

// frontend runs every stage short of code generation: read the file,
// lex + parse it in full, build the symbol table, then type-check it.
// It stops and returns the first error from whichever stage produced
// one, per spec.md §7's short-circuit model.
func frontend(path string) ([]ast.TopLevel, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ftl: could not read %s: %w", path, err)
	}

	src := source.New(path, string(text))
	p := parser.New(lexer.New(src))

	var nodes []ast.TopLevel
	for {
		node, err, ok := p.Next()
		if !ok {
			break
		}
		if err != nil {
			return nil, renderErr(err)
		}
		nodes = append(nodes, node)
	}

	symbols, err := symtable.Build(nodes)
	if err != nil {
		return nil, renderErr(err)
	}
	if err := typecheck.NewChecker(symbols).Check(nodes); err != nil {
		return nil, renderErr(err)
	}
	return nodes, nil
}

// renderErr returns a diag.Render'd excerpt for errors that carry source
// position information, or the plain error otherwise.
func renderErr(err error) error {
	if positioned, ok := err.(diag.Positioned); ok {
		return fmt.Errorf("%s", diag.Render(positioned))
	}
	return err
}
