/*
Package parser turns a Lexer's token stream into FTL's abstract syntax
tree.

Parser is a recursive-descent parser with exactly one token of lookahead,
mirroring the layering spec.md §2 describes: it pulls from a *lexer.Lexer
the same way the lexer pulls from a *source.Reader. Comment tokens are
dropped transparently at the pull layer, so no production above peek/
advance ever has to special-case lexer.Comment.

Parsing never recovers from an error: once a production returns one, the
top-level Next iterator yields it and then reports exhaustion on every
subsequent call, matching spec.md §4.3's no-recovery policy.
*/
package parser

import (
	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
	"github.com/ftlang/ftl/lexer"
	"github.com/ftlang/ftl/source"
)

// Parser pulls tokens from a Lexer and assembles them into AST nodes.
// Construct one with New and drive it with Next.
type Parser struct {
	lex *lexer.Lexer

	// One-token lookahead buffer. filled is true once tok/err/ok have been
	// populated by a pull that hasn't been consumed by advance yet.
	filled bool
	tok    lexer.Token
	err    error
	ok     bool

	// lastPos is the position of the most recently consumed token, used to
	// anchor diagnostics raised when input is exhausted mid-production.
	lastPos source.SourcePositionRange

	// halted is set once any production has returned an error; Next
	// reports exhaustion on every call after that, per the no-recovery
	// policy.
	halted bool
}

// New constructs a Parser reading from lex.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// pull reads the next non-comment token from the underlying lexer,
// merging comment tokens away so the grammar never sees them.
func (p *Parser) pull() (lexer.Token, error, bool) {
	for {
		tok, err, ok := p.lex.Next()
		if err != nil || !ok {
			return tok, err, ok
		}
		if tok.Kind == lexer.Comment {
			continue
		}
		return tok, nil, true
	}
}

// fill ensures the lookahead buffer holds the next token, pulling one if
// it doesn't already.
func (p *Parser) fill() {
	if p.filled {
		return
	}
	p.tok, p.err, p.ok = p.pull()
	p.filled = true
}

// peek returns the next token without consuming it.
func (p *Parser) peek() (lexer.Token, error, bool) {
	p.fill()
	return p.tok, p.err, p.ok
}

// advance consumes and returns the next token.
func (p *Parser) advance() (lexer.Token, error, bool) {
	p.fill()
	tok, err, ok := p.tok, p.err, p.ok
	p.filled = false
	if ok && err == nil {
		p.lastPos = tok.Position
	}
	return tok, err, ok
}

// expect consumes the next token and requires it to have kind k,
// otherwise it raises diag.ExpectedToken. expected is the human-facing
// name used in that diagnostic.
func (p *Parser) expect(k lexer.Kind, expected string) (lexer.Token, error) {
	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		return lexer.Token{}, err
	}
	if !ok {
		return lexer.Token{}, &diag.ExpectedToken{Expected: expected, Pos: p.lastPos}
	}
	if tok.Kind != k {
		return lexer.Token{}, &diag.ExpectedToken{Expected: expected, Found: tok.Describe(), Pos: tok.Position}
	}
	p.advance()
	return tok, nil
}

// span combines the start of a with the end of b into a single range
// over the same Source.
func span(a, b source.SourcePositionRange) source.SourcePositionRange {
	return source.SourcePositionRange{
		Range: source.PositionRange{Start: a.Range.Start, End: b.Range.End},
		Src:   a.Src,
	}
}

// Next produces the next top-level node: a function definition, an
// extern prototype, or a struct definition (spec.md §4.3). It returns
// ok=false once the token stream is exhausted, and yields at most one
// error before halting permanently.
func (p *Parser) Next() (ast.TopLevel, error, bool) {
	if p.halted {
		return nil, nil, false
	}

	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		p.halted = true
		return nil, err, true
	}
	if !ok {
		return nil, nil, false
	}

	var node ast.TopLevel
	switch tok.Kind {
	case lexer.Def:
		node, err = p.parseFunctionDefinition()
	case lexer.Extern:
		node, err = p.parseExternPrototype()
	case lexer.Struct:
		node, err = p.parseStructDefinition()
	default:
		p.advance()
		err = &diag.IllegalToken{Context: "top level node", Found: tok.Describe(), Pos: tok.Position}
	}
	if err != nil {
		p.halted = true
		return nil, err, true
	}
	return node, nil, true
}

// functionHeader is the shared `name ( arglist ) [ : type ]` grammar
// parsed by both `def` and `extern` (spec.md §4.3).
type functionHeader struct {
	name       string
	args       []ast.FunctionArgument
	returnType ast.DataType
	end        source.SourcePositionRange
}

func (p *Parser) parseFunctionHeader() (functionHeader, error) {
	var h functionHeader

	nameTok, err := p.expect(lexer.Identifier, "function name")
	if err != nil {
		return h, err
	}
	h.name = nameTok.Literal

	if _, err := p.expect(lexer.LParen, "("); err != nil {
		return h, err
	}

	for {
		tok, err, ok := p.peek()
		if err != nil {
			p.advance()
			return h, err
		}
		if !ok || tok.Kind == lexer.RParen {
			break
		}
		argName, err := p.expect(lexer.Identifier, "argument name")
		if err != nil {
			return h, err
		}
		if _, err := p.expect(lexer.Colon, ":"); err != nil {
			return h, err
		}
		dt, err := p.parseDataType()
		if err != nil {
			return h, err
		}
		h.args = append(h.args, ast.FunctionArgument{Name: argName.Literal, Type: dt})

		tok, err, ok = p.peek()
		if err != nil {
			p.advance()
			return h, err
		}
		if ok && tok.Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}

	rparen, err := p.expect(lexer.RParen, ")")
	if err != nil {
		return h, err
	}
	h.end = rparen.Position

	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		return h, err
	}
	if ok && tok.Kind == lexer.Colon {
		p.advance()
		dt, err := p.parseDataType()
		if err != nil {
			return h, err
		}
		h.returnType = dt
		h.end = p.lastPos
	}
	return h, nil
}

func (p *Parser) parseFunctionDefinition() (ast.TopLevel, error) {
	defTok, _, _ := p.advance()
	h, err := p.parseFunctionHeader()
	if err != nil {
		return nil, err
	}
	body, bodySpan, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	proto := &ast.FunctionPrototype{
		Name:       h.name,
		Args:       h.args,
		ReturnType: h.returnType,
		Span:       span(defTok.Position, h.end),
	}
	return &ast.FunctionDefinition{Prototype: proto, Body: body, Span: span(defTok.Position, bodySpan)}, nil
}

func (p *Parser) parseExternPrototype() (ast.TopLevel, error) {
	externTok, _, _ := p.advance()
	h, err := p.parseFunctionHeader()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionPrototype{
		Name:       h.name,
		Args:       h.args,
		ReturnType: h.returnType,
		Span:       span(externTok.Position, h.end),
	}, nil
}

func (p *Parser) parseStructDefinition() (ast.TopLevel, error) {
	structTok, _, _ := p.advance()
	nameTok, err := p.expect(lexer.Identifier, "struct name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace, "{"); err != nil {
		return nil, err
	}

	var fields []ast.Field
	for {
		tok, err, ok := p.peek()
		if err != nil {
			p.advance()
			return nil, err
		}
		if !ok || tok.Kind == lexer.RBrace {
			break
		}
		fieldName, err := p.expect(lexer.Identifier, "field name")
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
		fields = append(fields, ast.Field{Name: fieldName.Literal, Type: dt})

		tok, err, ok = p.peek()
		if err != nil {
			p.advance()
			return nil, err
		}
		if ok && tok.Kind == lexer.Comma {
			p.advance()
		}
	}

	rbrace, err := p.expect(lexer.RBrace, "}")
	if err != nil {
		return nil, err
	}
	return &ast.Struct{Name: nameTok.Literal, Fields: fields, Span: span(structTok.Position, rbrace.Position)}, nil
}

// parseDataType parses the `ptr data_type | ident` grammar of spec.md
// §4.3. Whether an identifier names a struct is left for symtable/
// typecheck to resolve; the parser only distinguishes the two built-in
// basic names from everything else.
func (p *Parser) parseDataType() (ast.DataType, error) {
	tok, err, ok := p.peek()
	if err != nil {
		p.advance()
		return nil, err
	}
	if !ok {
		return nil, &diag.ExpectedToken{Expected: "data type", Pos: p.lastPos}
	}
	if tok.Kind == lexer.Pointer {
		p.advance()
		elem, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		return ast.PointerType{Elem: elem}, nil
	}
	nameTok, err := p.expect(lexer.Identifier, "data type")
	if err != nil {
		return nil, err
	}
	switch nameTok.Literal {
	case "int":
		return ast.BasicType{Kind: ast.Int}, nil
	case "float":
		return ast.BasicType{Kind: ast.Float}, nil
	default:
		return ast.StructType{Name: nameTok.Literal}, nil
	}
}
