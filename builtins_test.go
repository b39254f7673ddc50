package scheme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/scheme-core/ast"
	"github.com/xiam/scheme-core/lexer"
)

func number(n int64) *ast.Expression {
	return ast.NewAtom(lexer.NewNumber(n))
}

func atom(s string) *ast.Expression {
	return ast.NewAtom(lexer.NewToken(lexer.TokenAtom, s))
}

func str(s string) *ast.Expression {
	return ast.NewAtom(lexer.NewToken(lexer.TokenString, s))
}

func TestConsCarCdr(t *testing.T) {
	values := []*ast.Expression{
		ast.Empty(),
		number(1),
		atom("x"),
		str("abc"),
		ast.NewList(number(1), number(2)),
	}

	for _, a := range values {
		for _, b := range values {
			pair := Cons(a, b)

			car, ok := Car(pair)
			assert.True(t, ok)
			assert.True(t, a == car)

			cdr, err := Cdr(pair)
			assert.NoError(t, err)
			assert.True(t, b == cdr)
		}
	}
}

func TestCarNotAPair(t *testing.T) {
	for _, e := range []*ast.Expression{nil, ast.Empty(), number(1), atom("x")} {
		car, ok := Car(e)
		assert.False(t, ok)
		assert.Nil(t, car)
	}
}

func TestCdrNotAPair(t *testing.T) {
	for _, e := range []*ast.Expression{ast.Empty(), number(1), atom("x")} {
		cdr, err := Cdr(e)
		assert.Nil(t, cdr)

		var notAPair *NotAPairError
		assert.True(t, errors.As(err, &notAPair))
		assert.True(t, e == notAPair.Expr)
	}
}

func TestEq(t *testing.T) {
	testCases := []struct {
		Left  *ast.Expression
		Right *ast.Expression
		Out   bool
	}{
		{ast.Empty(), ast.Empty(), true},
		{nil, ast.Empty(), true},
		{ast.Empty(), number(3), false},
		{number(3), ast.Empty(), false},
		{number(3), number(3), true},
		{number(3), number(4), false},
		{atom("x"), number(3), false},
		{atom("x"), atom("x"), true},
		{atom("x"), atom("y"), false},
		{atom("abc"), str("abc"), false},
		{str("abc"), str("abc"), true},
		{ast.NewList(number(1)), ast.NewList(number(1)), false},
		{number(1), ast.NewList(number(1)), false},
		{
			ast.NewAtom(lexer.NewToken(lexer.TokenConstant, lexer.True)),
			ast.NewAtom(lexer.NewToken(lexer.TokenConstant, lexer.True)),
			true,
		},
	}

	for i := range testCases {
		l, r := testCases[i].Left, testCases[i].Right
		assert.Equal(t, testCases[i].Out, Eq(l, r), "case %d", i)
		assert.Equal(t, testCases[i].Out, Eq(r, l), "case %d (swapped)", i)
	}

	for _, e := range []*ast.Expression{ast.Empty(), number(3), atom("x"), str("s")} {
		assert.True(t, Eq(e, e))
	}
}

func TestEqProcedure(t *testing.T) {
	env := New(nil)

	testCases := []struct {
		Args *ast.Expression
		Out  string
	}{
		{ast.NewList(ast.Empty(), ast.Empty()), lexer.True},
		{ast.NewList(number(3), number(3)), lexer.True},
		{ast.NewList(number(3), number(4)), lexer.False},
		{ast.NewList(atom("x"), number(3)), lexer.False},
	}

	for i := range testCases {
		out, err := eqProc(env, testCases[i].Args)
		assert.NoError(t, err)

		tok, ok := out.Atom()
		assert.True(t, ok)
		assert.Equal(t, lexer.TokenConstant, tok.Type())
		assert.Equal(t, testCases[i].Out, tok.Text())
	}
}

func TestArity(t *testing.T) {
	env := New(nil)

	testCases := []struct {
		Proc Procedure
		Args *ast.Expression
	}{
		{consProc, ast.NewList(number(1))},
		{consProc, ast.NewList(number(1), number(2), number(3))},
		{carProc, ast.Empty()},
		{cdrProc, ast.NewList(number(1), number(2))},
		{eqProc, ast.NewList(number(1))},
	}

	for i := range testCases {
		out, err := testCases[i].Proc(env, testCases[i].Args)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, ErrArity), "case %d: %v", i, err)
	}
}
