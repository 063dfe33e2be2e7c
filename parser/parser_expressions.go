package parser

import (
	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
	"github.com/ftlang/ftl/lexer"
)

// binaryOperatorFor maps a lexer.Kind to the ast.BinaryOperator it
// introduces, and reports whether the token is an operator at all.
func binaryOperatorFor(k lexer.Kind) (ast.BinaryOperator, bool) {
	switch k {
	case lexer.Plus:
		return ast.Add, true
	case lexer.Minus:
		return ast.Subtract, true
	case lexer.Star:
		return ast.Multiply, true
	case lexer.Slash:
		return ast.Divide, true
	case lexer.Less:
		return ast.Less, true
	case lexer.Greater:
		return ast.Greater, true
	case lexer.Equal:
		return ast.Equal, true
	case lexer.NotEqual:
		return ast.NotEqual, true
	default:
		return 0, false
	}
}

// ParseExpression parses a single standalone expression, consuming
// tokens up to (but not past) whatever follows it. Exported for callers
// that need to evaluate a bare expression outside a function body, such
// as an interactive checker that echoes an expression's inferred type.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseExpression(0)
}

// Precedence reports the binding power of a binary operator token, and
// whether the token introduces a binary operator at all. Exposed so
// callers outside this package (tests, an interactive precedence echo)
// can reason about FTL's operator precedence without duplicating the
// table in ast.BinaryOperator.Precedence.
func Precedence(k lexer.Kind) (int, bool) {
	op, ok := binaryOperatorFor(k)
	if !ok {
		return 0, false
	}
	return op.Precedence(), true
}

// parseExpression parses a binary expression by precedence climbing:
// an initial primary, then a loop absorbing operators whose precedence
// is strictly greater than minPrecedence, recursing on the right-hand
// side to absorb any still-higher-precedence operator that follows it.
// All FTL operators are left-associative (spec.md §4.3).
func (p *Parser) parseExpression(minPrecedence int) (ast.Expression, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseExpressionRHS(lhs, minPrecedence)
}

func (p *Parser) parseExpressionRHS(lhs ast.Expression, minPrecedence int) (ast.Expression, error) {
	for {
		tok, err, ok := p.peek()
		if err != nil {
			p.advance()
			return nil, err
		}
		if !ok {
			return lhs, nil
		}
		op, isOp := binaryOperatorFor(tok.Kind)
		if !isOp || op.Precedence() <= minPrecedence {
			return lhs, nil
		}
		p.advance()
		opPos := tok.Position

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		nextTok, err, ok := p.peek()
		if err != nil {
			p.advance()
			return nil, err
		}
		if ok {
			if nextOp, isNextOp := binaryOperatorFor(nextTok.Kind); isNextOp && nextOp.Precedence() > op.Precedence() {
				rhs, err = p.parseExpressionRHS(rhs, op.Precedence())
				if err != nil {
					return nil, err
				}
			}
		}

		lhs = &ast.BinaryExpression{
			Lhs:         lhs,
			Operator:    op,
			OperatorPos: opPos,
			Rhs:         rhs,
			Span:        span(lhs.Pos(), rhs.Pos()),
		}
	}
}

// parsePrimary parses a number literal, a variable reference, a
// function call, or a parenthesized expression (spec.md §4.3, §6).
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		return nil, err
	}
	if !ok {
		return nil, &diag.ExpectedToken{Expected: "expression", Pos: p.lastPos}
	}

	switch tok.Kind {
	case lexer.Int:
		p.advance()
		return &ast.NumberLiteral{IsFloat: false, IntValue: tok.IntValue, Span: tok.Position}, nil
	case lexer.Float:
		p.advance()
		return &ast.NumberLiteral{IsFloat: true, FloatValue: tok.FloatValue, Span: tok.Position}, nil
	case lexer.Identifier:
		p.advance()
		return p.parseIdentifierExpression(tok)
	case lexer.LParen:
		p.advance()
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		p.advance()
		return nil, &diag.IllegalToken{Context: "expression", Found: tok.Describe(), Pos: tok.Position}
	}
}

// parseIdentifierExpression parses what follows an already-consumed
// identifier token: a function call if a "(" follows, otherwise a bare
// variable reference.
func (p *Parser) parseIdentifierExpression(identTok lexer.Token) (ast.Expression, error) {
	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		return nil, err
	}
	if !ok || tok.Kind != lexer.LParen {
		return &ast.VariableExpression{Name: identTok.Literal, Span: identTok.Position}, nil
	}
	return p.parseFunctionCall(identTok)
}

// parseFunctionCall parses `( paramlist )` after an already-consumed
// function name. Arguments are parsed as primary expressions, matching
// the original implementation's grammar rather than full binary
// expressions, so a bare "f(a + b)" call argument requires parentheses:
// "f((a + b))".
func (p *Parser) parseFunctionCall(nameTok lexer.Token) (ast.Expression, error) {
	p.advance() // consume "("

	var params []ast.Expression
	for {
		tok, err, ok := p.peek()
		if err != nil {
			p.advance()
			return nil, err
		}
		if !ok || tok.Kind == lexer.RParen {
			break
		}
		param, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		tok, err, ok = p.peek()
		if err != nil {
			p.advance()
			return nil, err
		}
		if ok && tok.Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}

	rparen, err := p.expect(lexer.RParen, ")")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Name: nameTok.Literal, Params: params, Span: span(nameTok.Position, rparen.Position)}, nil
}
