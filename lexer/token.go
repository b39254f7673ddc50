package lexer

import (
	"fmt"
	"strconv"
)

// Token represents a known sequence of characters (lexical unit). Only one of
// num and text carries information: num for TokenNumber, text otherwise.
type Token struct {
	tt   TokenType
	num  int64
	text string
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, text string) Token {
	return Token{
		tt:   tt,
		text: text,
	}
}

// NewNumber creates a lexical unit of type TokenNumber
func NewNumber(n int64) Token {
	return Token{
		tt:  TokenNumber,
		num: n,
	}
}

// parseNumber turns a run of digits into a number token.
func parseNumber(text string) (Token, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, err
	}
	return NewNumber(n), nil
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Num returns the numeric value of a TokenNumber
func (t Token) Num() int64 {
	return t.num
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.text
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Lexeme returns the source form of the token.
func (t Token) Lexeme() string {
	if t.tt == TokenNumber {
		return strconv.FormatInt(t.num, 10)
	}
	return t.text
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q)", t.tt, t.Lexeme())
}
