package lexer

import (
	"io"
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
	isDot       = isTokenType(TokenDot)
	isQuote     = isTokenType(TokenQuote)
)

// New initializes a Lexer over the given input. A nil builtins table means
// DefaultBuiltins.
func New(in []byte, builtins *Builtins) *Lexer {
	if builtins == nil {
		builtins = DefaultBuiltins()
	}
	return &Lexer{
		in:       in,
		builtins: builtins,
		buf:      []byte{},
		line:     1,
	}
}

// Read consumes r completely and returns a Lexer over its contents.
func Read(r io.Reader, builtins *Builtins) (*Lexer, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(in, builtins), nil
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in       []byte
	builtins *Builtins

	peek   byte
	peeked bool

	buf []byte
	tok Token

	lastErr error

	line     int
	col      int
	prevLine int
	prevCol  int
}

// Next returns the next token of the input. Once the input is exhausted it
// keeps returning a TokenEOF token. Errors are permanent.
func (lx *Lexer) Next() (Token, error) {
	if lx.lastErr != nil {
		return NewToken(TokenError, ""), lx.lastErr
	}

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return NewToken(TokenError, ""), lx.lastErr
	}
	return lx.tok, nil
}

// Pos returns the line and column of the last byte read.
func (lx *Lexer) Pos() (int, int) {
	return lx.line, lx.col
}

// Builtins returns the table used to recognize reserved names.
func (lx *Lexer) Builtins() *Builtins {
	return lx.builtins
}

func (lx *Lexer) emit(tok Token) {
	lx.tok = tok
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) next() (byte, error) {
	var c byte

	if lx.peeked {
		c, lx.peeked = lx.peek, false
	} else {
		if len(lx.in) == 0 {
			return 0, io.EOF
		}
		c, lx.in = lx.in[0], lx.in[1:]
	}

	lx.prevLine, lx.prevCol = lx.line, lx.col
	if c == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}

	if c >= utf8.RuneSelf {
		return 0, ErrInvalidByte
	}
	return c, nil
}

func (lx *Lexer) back(c byte) {
	if lx.peeked {
		panic("lexer: pushback slot is full")
	}
	lx.peek, lx.peeked = c, true
	lx.line, lx.col = lx.prevLine, lx.prevCol
}

// accumulate appends first and then every following byte that satisfies
// accept to the buffer. The first rejected byte is pushed back.
func (lx *Lexer) accumulate(first byte, accept func(byte) bool) error {
	lx.buf = append(lx.buf, first)
	for {
		c, err := lx.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !accept(c) {
			lx.back(c)
			return nil
		}
		lx.buf = append(lx.buf, c)
	}
}

func lexDefaultState(lx *Lexer) lexState {
	c, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isSpace(c):
		return lexDefaultState
	case isDigit(c):
		return lexNumber(c)
	case isLetter(c) || c == '#':
		return lexWord(c)
	case c == ';':
		return lexComment
	case c == '"':
		return lexString

	case isOpenList(c):
		return lexEmit(TokenOpenList, c)
	case isCloseList(c):
		return lexEmit(TokenCloseList, c)
	case isDot(c):
		return lexEmit(TokenDot, c)
	case isQuote(c):
		return lexEmit(TokenQuote, c)

	default:
		return lexEmit(TokenChar, c)
	}
}

func lexEmit(tt TokenType, c byte) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(NewToken(tt, string(c)))
		return nil
	}
}

func lexNumber(first byte) lexState {
	return func(lx *Lexer) lexState {
		if err := lx.accumulate(first, isDigit); err != nil {
			return lexStateError(err)
		}
		tok, err := parseNumber(string(lx.buf))
		if err != nil {
			return lexStateError(ErrInvalidNumber)
		}
		lx.emit(tok)
		return nil
	}
}

func lexWord(first byte) lexState {
	return func(lx *Lexer) lexState {
		if err := lx.accumulate(first, isWordBody); err != nil {
			return lexStateError(err)
		}
		text := string(lx.buf)
		if tok, ok := lx.builtins.Lookup(text); ok {
			lx.emit(tok)
			return nil
		}
		lx.emit(NewToken(TokenAtom, text))
		return nil
	}
}

func lexComment(lx *Lexer) lexState {
	for {
		c, err := lx.next()
		if err != nil {
			return lexStateError(err)
		}
		if isLineEnd(c) {
			lx.back(c)
			return lexDefaultState
		}
	}
}

func lexString(lx *Lexer) lexState {
	first, err := lx.next()
	if err == io.EOF {
		return lexStateError(ErrUnterminatedString)
	}
	if err != nil {
		return lexStateError(err)
	}

	if first == '"' {
		lx.emit(NewToken(TokenString, ""))
		return nil
	}

	if err := lx.accumulate(first, isAlphanumeric); err != nil {
		return lexStateError(err)
	}

	// closing delimiter
	if _, err := lx.next(); err != nil {
		if err == io.EOF {
			err = ErrUnterminatedString
		}
		return lexStateError(err)
	}

	lx.emit(NewToken(TokenString, string(lx.buf)))
	return nil
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return lexStateEOF
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = &Error{Line: lx.line, Col: lx.col, Err: err}
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.emit(NewToken(TokenEOF, "EOF"))
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it, the
// last one being TokenEOF, or an error if a token can't be identified.
func Tokenize(in []byte, builtins *Builtins) ([]Token, error) {
	tokens := []Token{}

	lx := New(in, builtins)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
