package scheme

import (
	"bytes"
	"io"

	"github.com/xiam/scheme-core/ast"
	"github.com/xiam/scheme-core/parser"
)

// Reader reads top-level forms from a source and evaluates them.
type Reader struct {
	p   *parser.Parser
	env *Environment
}

// NewReader consumes r completely and prepares it for reading. A nil env
// means New(nil).
func NewReader(r io.Reader, env *Environment) (*Reader, error) {
	if env == nil {
		env = New(nil)
	}
	p, err := parser.NewParser(r, env.Builtins())
	if err != nil {
		return nil, err
	}
	return &Reader{p: p, env: env}, nil
}

// SetOptions sets the options of the underlying parser
func (r *Reader) SetOptions(options parser.ParserOptions) {
	r.p.SetOptions(options)
}

// Next returns the next top-level form, or io.EOF once the source is
// exhausted.
func (r *Reader) Next() (*ast.Expression, error) {
	expr, err := r.p.List()
	if err != nil {
		return nil, err
	}
	if expr.IsEmpty() && r.p.EOF() {
		return nil, io.EOF
	}
	return expr, nil
}

// Eval reads and evaluates the next top-level form.
func (r *Reader) Eval() (*ast.Expression, error) {
	expr, err := r.Next()
	if err != nil {
		return nil, err
	}
	return r.env.Eval(expr)
}

// EvalBytes evaluates every top-level form of the input and returns their
// values. It stops at the first error.
func EvalBytes(in []byte, env *Environment) ([]*ast.Expression, error) {
	r, err := NewReader(bytes.NewReader(in), env)
	if err != nil {
		return nil, err
	}

	values := []*ast.Expression{}
	for {
		value, err := r.Eval()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}
