package parser

import (
	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
	"github.com/ftlang/ftl/lexer"
	"github.com/ftlang/ftl/source"
)

// parseBlock parses `{ instruction* }` (spec.md §4.3, §3's Block).
func (p *Parser) parseBlock() (ast.Block, source.SourcePositionRange, error) {
	lbrace, err := p.expect(lexer.LBrace, "{")
	if err != nil {
		return nil, source.SourcePositionRange{}, err
	}

	var block ast.Block
	for {
		tok, err, ok := p.peek()
		if err != nil {
			p.advance()
			return nil, source.SourcePositionRange{}, err
		}
		if !ok {
			return nil, source.SourcePositionRange{}, &diag.ExpectedToken{Expected: "}", Pos: p.lastPos}
		}
		if tok.Kind == lexer.RBrace {
			break
		}
		instr, err := p.parseInstruction()
		if err != nil {
			return nil, source.SourcePositionRange{}, err
		}
		block = append(block, instr)
	}

	rbrace, err := p.expect(lexer.RBrace, "}")
	if err != nil {
		return nil, source.SourcePositionRange{}, err
	}
	return block, span(lbrace.Position, rbrace.Position), nil
}

// parseInstruction dispatches on the peeked token's kind to the
// production that can start with it (spec.md §4.3).
func (p *Parser) parseInstruction() (ast.Instruction, error) {
	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		return nil, err
	}
	if !ok {
		return nil, &diag.ExpectedToken{Expected: "instruction", Pos: p.lastPos}
	}

	switch tok.Kind {
	case lexer.If:
		return p.parseIfElse()
	case lexer.While:
		return p.parseWhileLoop()
	case lexer.Var:
		return p.parseVariableDeclaration()
	case lexer.Return:
		return p.parseReturnStatement()
	case lexer.Identifier:
		p.advance()
		return p.parseIdentifierInstruction(tok)
	case lexer.Int, lexer.Float, lexer.LParen:
		return p.parseExpression(0)
	default:
		p.advance()
		return nil, &diag.IllegalToken{Context: "instruction", Found: tok.Describe(), Pos: tok.Position}
	}
}

// parseIdentifierInstruction decides, after consuming a leading
// identifier, whether it begins an assignment ("name = value") or an
// expression instruction (a call or a bare variable reference).
func (p *Parser) parseIdentifierInstruction(identTok lexer.Token) (ast.Instruction, error) {
	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		return nil, err
	}
	if ok && tok.Kind == lexer.Equal {
		p.advance()
		value, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		return &ast.VariableAssignment{Name: identTok.Literal, Value: value, Span: span(identTok.Position, value.Pos())}, nil
	}
	return p.parseIdentifierExpression(identTok)
}

// parseVariableDeclaration parses `var name : type = value`.
func (p *Parser) parseVariableDeclaration() (ast.Instruction, error) {
	varTok, _, _ := p.advance()
	nameTok, err := p.expect(lexer.Identifier, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Colon, ":"); err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Equal, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Name: nameTok.Literal, Type: dt, Value: value, Span: span(varTok.Position, value.Pos())}, nil
}

// parseReturnStatement parses `return value`.
func (p *Parser) parseReturnStatement() (ast.Instruction, error) {
	returnTok, _, _ := p.advance()
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Value: value, Span: span(returnTok.Position, value.Pos())}, nil
}
