package scheme

import (
	"log"

	"github.com/xiam/scheme-core/ast"
	"github.com/xiam/scheme-core/lexer"
)

// Environment evaluates expressions against a table of builtins. It is not
// modified after New returns and can be shared between goroutines.
type Environment struct {
	builtins *lexer.Builtins
	st       *symbolTable

	logger *log.Logger
	trace  bool
}

// New creates an environment. A nil builtins table means
// lexer.DefaultBuiltins.
func New(builtins *lexer.Builtins, opts ...Option) *Environment {
	if builtins == nil {
		builtins = lexer.DefaultBuiltins()
	}
	env := &Environment{
		builtins: builtins,
		st:       newSymbolTable(coreProcedures),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// Builtins returns the table of reserved names of the environment.
func (env *Environment) Builtins() *lexer.Builtins {
	return env.builtins
}

// Bool returns the #t or #f constant.
func (env *Environment) Bool(v bool) *ast.Expression {
	name := lexer.False
	if v {
		name = lexer.True
	}
	if tok, ok := env.builtins.Lookup(name); ok {
		return ast.NewAtom(tok)
	}
	return ast.NewAtom(lexer.NewToken(lexer.TokenConstant, name))
}

func (env *Environment) tracef(format string, v ...interface{}) {
	if env.trace {
		env.logger.Printf(format, v...)
	}
}

// Eval evaluates an expression. Numbers, strings and lists whose head is not
// an atom evaluate to themselves; names must be builtins; lists starting with
// a name are procedure calls. The expression is never modified.
func (env *Environment) Eval(expr *ast.Expression) (*ast.Expression, error) {
	env.tracef("eval: %s", ast.Encode(expr))

	switch {
	case expr.IsEmpty():
		return nil, &EvalError{Expr: expr, Err: ErrEmptyExpression}

	case expr.IsAtom():
		return env.evalAtom(expr)

	case expr.Head().IsAtom():
		return env.apply(expr)
	}

	return expr, nil
}

func (env *Environment) evalAtom(expr *ast.Expression) (*ast.Expression, error) {
	tok, _ := expr.Atom()

	switch tok.Type() {
	case lexer.TokenNumber, lexer.TokenString:
		return expr, nil
	}

	if _, ok := env.builtins.Lookup(tok.Text()); !ok {
		return nil, &UnboundNameError{Name: tok.Lexeme()}
	}
	return expr, nil
}

func (env *Environment) lookup(tok lexer.Token) (Procedure, error) {
	name := tok.Lexeme()

	if !tok.Is(lexer.TokenAtom) {
		return nil, &UnboundNameError{Name: name}
	}
	if btok, ok := env.builtins.Lookup(name); !ok || btok != tok {
		return nil, &UnboundNameError{Name: name}
	}

	proc, err := env.st.Get(name)
	if err != nil {
		return nil, &UnboundNameError{Name: name}
	}
	return proc, nil
}

func (env *Environment) apply(expr *ast.Expression) (*ast.Expression, error) {
	tok, _ := expr.Head().Atom()

	proc, err := env.lookup(tok)
	if err != nil {
		return nil, err
	}

	args, err := env.evalArgs(expr.Tail())
	if err != nil {
		return nil, err
	}

	env.tracef("apply: %s %s", tok.Lexeme(), ast.Encode(args))
	return proc(env, args)
}

// evalArgs evaluates every element of a list of arguments. Empty elements
// stand for themselves.
func (env *Environment) evalArgs(args *ast.Expression) (*ast.Expression, error) {
	items := args.List()

	values := make([]*ast.Expression, 0, len(items))
	for _, item := range items {
		if item.IsEmpty() {
			values = append(values, item)
			continue
		}
		value, err := env.Eval(item)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return ast.NewList(values...), nil
}
