/*
Package replcheck implements an interactive, line-at-a-time checking
session for FTL: parse one top-level node or bare expression per line,
run it through the symbol table and type checker, and print what was
learned. It never evaluates FTL — there is no runtime here, only the
front end — matching the Non-goal against an interpreter.

The shape (banner, readline-backed prompt, colorized success/error
output, a ".exit" escape hatch) follows the teacher repository's
repl.Repl almost directly; what differs is what happens to each line
once it is read.
*/
package replcheck

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
	"github.com/ftlang/ftl/lexer"
	"github.com/ftlang/ftl/parser"
	"github.com/ftlang/ftl/source"
	"github.com/ftlang/ftl/symtable"
	"github.com/ftlang/ftl/typecheck"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// REPL is a checking session: a banner plus the configuration readline
// needs to present a prompt with history.
type REPL struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New constructs a REPL with the given display configuration.
func New(banner, version, author, line, license, prompt string) *REPL {
	return &REPL{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the welcome banner and usage instructions to w.
func (r *REPL) PrintBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "FTL interactive checker")
	cyanColor.Fprintf(w, "%s\n", "Type a def/extern/struct or a bare expression and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the read-check-print loop against writer until the user
// exits or input is exhausted. Declarations accumulate in a single
// symbol table across lines, so a function defined on one line can be
// called from an expression typed on a later one.
func (r *REPL) Start(writer io.Writer) error {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	table := symtable.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		r.checkWithRecovery(writer, table, line)
	}
}

// checkWithRecovery parses and checks one line, recovering from any
// panic so a single malformed line never ends the session.
func (r *REPL) checkWithRecovery(writer io.Writer, table *symtable.Table, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	src := source.New("<repl>", line)

	if node, err := parseTopLevel(src); err == nil {
		r.checkTopLevel(writer, table, node)
		return
	}

	expr, err := parseExpression(src)
	if err != nil {
		redColor.Fprintf(writer, "%s", diag.Render(err.(diag.Positioned)))
		return
	}
	r.checkExpression(writer, table, expr)
}

// parseTopLevel attempts to read exactly one top-level node from src.
func parseTopLevel(src *source.Source) (ast.TopLevel, error) {
	p := parser.New(lexer.New(src))
	node, err, ok := p.Next()
	if !ok || err != nil {
		if err == nil {
			err = fmt.Errorf("empty input")
		}
		return nil, err
	}
	return node, nil
}

// parseExpression attempts to read src as a single bare expression.
func parseExpression(src *source.Source) (ast.Expression, error) {
	p := parser.New(lexer.New(src))
	return p.ParseExpression()
}

func (r *REPL) checkTopLevel(writer io.Writer, table *symtable.Table, node ast.TopLevel) {
	if err := table.Insert(node); err != nil {
		redColor.Fprintf(writer, "%s", diag.Render(err.(diag.Positioned)))
		return
	}

	def, isDefinition := node.(*ast.FunctionDefinition)
	if !isDefinition {
		greenColor.Fprintf(writer, "ok: declared %s\n", describe(node))
		return
	}

	checker := typecheck.NewChecker(table)
	if err := checker.Check([]ast.TopLevel{def}); err != nil {
		redColor.Fprintf(writer, "%s", diag.Render(err.(diag.Positioned)))
		return
	}
	greenColor.Fprintf(writer, "ok: %s\n", describe(node))
}

func (r *REPL) checkExpression(writer io.Writer, table *symtable.Table, expr ast.Expression) {
	checker := typecheck.NewChecker(table)
	t, err := checker.InferExpressionType(expr)
	if err != nil {
		redColor.Fprintf(writer, "%s", diag.Render(err.(diag.Positioned)))
		return
	}
	yellowColor.Fprintf(writer, "%s\n", t.String())
}

func describe(node ast.TopLevel) string {
	switch n := node.(type) {
	case *ast.FunctionDefinition:
		return "function " + n.Prototype.Name
	case *ast.FunctionPrototype:
		return "extern " + n.Name
	case *ast.Struct:
		return "struct " + n.Name
	default:
		return "node"
	}
}
