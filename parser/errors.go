package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/scheme-core/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrDottedPair      = errors.New("dotted pairs are not supported")
	ErrTooDeep         = errors.New("list nesting is too deep")
)

// Error is a grammar error found while reading tok.
type Error struct {
	Line  int
	Col   int
	Token lexer.Token
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v: %v", e.Line, e.Col, e.Err, e.Token)
}

func (e *Error) Unwrap() error {
	return e.Err
}
