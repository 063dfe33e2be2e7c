package parser

import (
	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/lexer"
)

// parseIfElse parses `if condition { if_true } [else { if_false }]`. An
// absent else branch leaves IfFalse nil (spec.md §3).
func (p *Parser) parseIfElse() (ast.Instruction, error) {
	ifTok, _, _ := p.advance()
	condition, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	ifTrue, ifTrueSpan, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	node := &ast.IfElse{Condition: condition, IfTrue: ifTrue, Span: span(ifTok.Position, ifTrueSpan)}

	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		return nil, err
	}
	if ok && tok.Kind == lexer.Else {
		p.advance()
		ifFalse, ifFalseSpan, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.IfFalse = ifFalse
		node.Span = span(ifTok.Position, ifFalseSpan)
	}
	return node, nil
}
