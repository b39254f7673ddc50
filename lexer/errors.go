package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidByte        = errors.New("invalid byte")
	ErrUnterminatedString = errors.New("unterminated string")
)

// Error is a lexical error found at the given position.
type Error struct {
	Line int
	Col  int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
