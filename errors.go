package scheme

import (
	"errors"
	"fmt"

	"github.com/xiam/scheme-core/ast"
)

var (
	ErrEmptyExpression = errors.New("empty expression has no value")
	ErrArity           = errors.New("wrong number of arguments")
)

// UnboundNameError is returned when a name has no builtin behind it.
type UnboundNameError struct {
	Name string
}

func (e *UnboundNameError) Error() string {
	return fmt.Sprintf("unbound name %q", e.Name)
}

// NotAPairError is returned when a pair accessor is used on an atom or on the
// empty expression.
type NotAPairError struct {
	Expr *ast.Expression
}

func (e *NotAPairError) Error() string {
	return fmt.Sprintf("not a pair: %s", ast.Encode(e.Expr))
}

// EvalError is returned when an expression can't be evaluated.
type EvalError struct {
	Expr *ast.Expression
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("eval %s: %v", ast.Encode(e.Expr), e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
