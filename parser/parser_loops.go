package parser

import "github.com/ftlang/ftl/ast"

// parseWhileLoop parses `while condition { body }`.
func (p *Parser) parseWhileLoop() (ast.Instruction, error) {
	whileTok, _, _ := p.advance()
	condition, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	body, bodySpan, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileLoop{Condition: condition, Body: body, Span: span(whileTok.Position, bodySpan)}, nil
}
