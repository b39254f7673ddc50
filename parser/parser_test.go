package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/scheme-core/ast"
	"github.com/xiam/scheme-core/lexer"
)

func encodeAll(forms []*ast.Expression) string {
	out := []string{}
	for i := range forms {
		out = append(out, string(ast.Encode(forms[i])))
	}
	return strings.Join(out, " ")
}

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `1 2 3`,
			Out: `1 2 3`,
		},
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `(1 2 3)`,
			Out: `(1 2 3)`,
		},
		{
			In:  "(1\n\t 2\n\n3\n)",
			Out: "(1 2 3)",
		},
		{
			In:  `(cons 1 2)`,
			Out: `(cons 1 2)`,
		},
		{
			In:  `(1 (2 (3 (4))) 5)`,
			Out: `(1 (2 (3 (4))) 5)`,
		},
		{
			In:  `((1 2) (3 4))`,
			Out: `((1 2) (3 4))`,
		},
		{
			In:  `(() (1) ())`,
			Out: `(() (1) ())`,
		},
		{
			In:  `(eq #t #f) "abc" foo`,
			Out: `(eq #t #f) "abc" foo`,
		},
		{
			In:  "; leading comment\n(car ; inner\n (cons 1 2))",
			Out: `(car (cons 1 2))`,
		},
		{
			In:  `() (1) ()`,
			Out: `() (1) ()`,
		},
	}

	for i := range testCases {
		forms, err := Parse([]byte(testCases[i].In), nil)
		assert.NoError(t, err)
		assert.NotNil(t, forms)

		assert.Equal(t, testCases[i].Out, encodeAll(forms), "input: %q", testCases[i].In)
	}
}

func TestParserShape(t *testing.T) {
	p := New(lexer.New([]byte(`(cons 1 2)`), nil))

	expr, err := p.List()
	require.NoError(t, err)
	require.True(t, expr.IsPair())

	head, ok := expr.Head().Atom()
	assert.True(t, ok)
	assert.Equal(t, lexer.NewToken(lexer.TokenAtom, "cons"), head)

	one := expr.Tail()
	require.True(t, one.IsPair())
	n, _ := one.Head().Atom()
	assert.Equal(t, int64(1), n.Num())

	two := one.Tail()
	require.True(t, two.IsPair())
	n, _ = two.Head().Atom()
	assert.Equal(t, int64(2), n.Num())

	assert.True(t, two.Tail().IsEmpty())
}

func TestParserEOF(t *testing.T) {
	p := New(lexer.New([]byte(""), nil))

	expr, err := p.List()
	assert.NoError(t, err)
	assert.True(t, expr.IsEmpty())
	assert.True(t, p.EOF())

	p = New(lexer.New([]byte("() 1"), nil))

	expr, err = p.List()
	assert.NoError(t, err)
	assert.True(t, expr.IsEmpty())
	assert.False(t, p.EOF())
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{In: `(1 2`, Err: ErrUnexpectedEOF},
		{In: `(`, Err: ErrUnexpectedEOF},
		{In: `((1)`, Err: ErrUnexpectedEOF},
		{In: `)`, Err: ErrUnexpectedToken},
		{In: `1 )`, Err: ErrUnexpectedToken},
		{In: `(+ 1 2)`, Err: ErrUnexpectedToken},
		{In: `'x`, Err: ErrUnexpectedToken},
		{In: `(a . b)`, Err: ErrDottedPair},
		{In: `.`, Err: ErrUnexpectedToken},
	}

	for i := range testCases {
		forms, err := Parse([]byte(testCases[i].In), nil)
		assert.Nil(t, forms)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, testCases[i].Err), "input: %q, got: %v", testCases[i].In, err)

		var parseErr *Error
		assert.True(t, errors.As(err, &parseErr))
	}
}

func TestParserLexerErrors(t *testing.T) {
	forms, err := Parse([]byte("(1 99999999999999999999)"), nil)
	assert.Nil(t, forms)
	assert.True(t, errors.Is(err, lexer.ErrInvalidNumber))

	var lexErr *lexer.Error
	assert.True(t, errors.As(err, &lexErr))
}

func TestParserMaxDepth(t *testing.T) {
	{
		p, err := NewParser(strings.NewReader(`(((1)))`), nil)
		require.NoError(t, err)
		p.SetOptions(ParserOptions{MaxDepth: 2})

		_, err = p.List()
		assert.True(t, errors.Is(err, ErrTooDeep))
	}

	{
		p, err := NewParser(strings.NewReader(`((1)) ((2))`), nil)
		require.NoError(t, err)
		p.SetOptions(ParserOptions{MaxDepth: 2})

		for i := 0; i < 2; i++ {
			expr, err := p.List()
			assert.NoError(t, err)
			assert.True(t, expr.IsPair())
		}
	}
}

func TestParserErrorPosition(t *testing.T) {
	_, err := Parse([]byte("(1\n 2 . 3)"), nil)

	var parseErr *Error
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, 4, parseErr.Col)
	assert.Equal(t, lexer.TokenDot, parseErr.Token.Type())
}
