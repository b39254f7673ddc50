package parser

import (
	"io"

	"github.com/xiam/scheme-core/ast"
	"github.com/xiam/scheme-core/lexer"
)

// ParserOptions defines options for the parser
type ParserOptions struct {
	// MaxDepth limits how deep lists can be nested, zero means no limit.
	MaxDepth int
}

// Parser reads expressions out of a stream of tokens
type Parser struct {
	lx *lexer.Lexer

	nextTok *lexer.Token

	eof     bool
	depth   int
	options ParserOptions
}

// New creates a parser that reads tokens from lx
func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

// NewParser creates a parser for the contents of r
func NewParser(r io.Reader, builtins *lexer.Builtins) (*Parser, error) {
	lx, err := lexer.Read(r, builtins)
	if err != nil {
		return nil, err
	}
	return New(lx), nil
}

// SetOptions replaces the options of the parser
func (p *Parser) SetOptions(options ParserOptions) {
	p.options = options
}

func (p *Parser) next() (lexer.Token, error) {
	if p.nextTok != nil {
		tok := *p.nextTok
		p.nextTok = nil
		return tok, nil
	}
	return p.lx.Next()
}

func (p *Parser) back(tok lexer.Token) {
	if p.nextTok != nil {
		panic("parser: a token was already pushed back")
	}
	p.nextTok = &tok
}

func (p *Parser) newError(tok lexer.Token, err error) error {
	line, col := p.lx.Pos()
	return &Error{Line: line, Col: col, Token: tok, Err: err}
}

func isAtomToken(tok lexer.Token) bool {
	switch tok.Type() {
	case lexer.TokenAtom, lexer.TokenConstant, lexer.TokenNumber, lexer.TokenString:
		return true
	}
	return false
}

// EOF returns true once List has reached the end of the input. It tells an
// exhausted input apart from an empty list "()".
func (p *Parser) EOF() bool {
	return p.eof
}

// List reads one top-level form: an atom or a parenthesized list. It returns
// the empty expression once the input is exhausted.
func (p *Parser) List() (*ast.Expression, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch {
	case isAtomToken(tok):
		return ast.NewAtom(tok), nil

	case tok.Is(lexer.TokenOpenList):
		p.depth++
		defer func() { p.depth-- }()

		if p.options.MaxDepth > 0 && p.depth > p.options.MaxDepth {
			return nil, p.newError(tok, ErrTooDeep)
		}

		expr, err := p.listBody()
		if err != nil {
			return nil, err
		}

		closing, err := p.next()
		if err != nil {
			return nil, err
		}
		if !closing.Is(lexer.TokenCloseList) {
			return nil, p.newError(closing, ErrUnexpectedToken)
		}
		return expr, nil

	case tok.Is(lexer.TokenEOF):
		p.eof = true
		return ast.Empty(), nil
	}

	return nil, p.newError(tok, ErrUnexpectedToken)
}

// listBody reads the elements of a list after its opening parenthesis, up to
// but not including the closing one.
func (p *Parser) listBody() (*ast.Expression, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Is(lexer.TokenCloseList):
		p.back(tok)
		return ast.Empty(), nil

	case tok.Is(lexer.TokenOpenList):
		p.back(tok)

		head, err := p.List()
		if err != nil {
			return nil, err
		}
		tail, err := p.listBody()
		if err != nil {
			return nil, err
		}
		return ast.NewPair(head, tail), nil

	case isAtomToken(tok):
		tail, err := p.listBody()
		if err != nil {
			return nil, err
		}
		return ast.NewPair(ast.NewAtom(tok), tail), nil

	case tok.Is(lexer.TokenEOF):
		return nil, p.newError(tok, ErrUnexpectedEOF)

	case tok.Is(lexer.TokenDot):
		return nil, p.newError(tok, ErrDottedPair)
	}

	return nil, p.newError(tok, ErrUnexpectedToken)
}

// Parse reads every top-level form in the input.
func Parse(in []byte, builtins *lexer.Builtins) ([]*ast.Expression, error) {
	p := New(lexer.New(in, builtins))

	forms := []*ast.Expression{}
	for {
		expr, err := p.List()
		if err != nil {
			return nil, err
		}
		if expr.IsEmpty() && p.EOF() {
			return forms, nil
		}
		forms = append(forms, expr)
	}
}
