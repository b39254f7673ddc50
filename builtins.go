package scheme

import (
	"fmt"

	"github.com/xiam/scheme-core/ast"
	"github.com/xiam/scheme-core/lexer"
)

// Procedure is the implementation of a builtin. It receives the list of its
// already evaluated arguments.
type Procedure func(env *Environment, args *ast.Expression) (*ast.Expression, error)

var coreProcedures = newSymbolTable(nil)

func defn(name string, proc Procedure) {
	if err := coreProcedures.Set(name, proc); err != nil {
		panic(fmt.Sprintf("defn %q: %v", name, err))
	}
}

func init() {
	defn(lexer.Cons, consProc)
	defn(lexer.Car, carProc)
	defn(lexer.Cdr, cdrProc)
	defn(lexer.Eq, eqProc)
}

// Cons returns a new pair made of car and cdr.
func Cons(car, cdr *ast.Expression) *ast.Expression {
	return ast.NewPair(car, cdr)
}

// Car returns the head of a pair. It returns false if expr is not a pair.
func Car(expr *ast.Expression) (*ast.Expression, bool) {
	if !expr.IsPair() {
		return nil, false
	}
	return expr.Head(), true
}

// Cdr returns the tail of a pair.
func Cdr(expr *ast.Expression) (*ast.Expression, error) {
	if !expr.IsPair() {
		return nil, &NotAPairError{Expr: expr}
	}
	return expr.Tail(), nil
}

// Eq compares two expressions. Two empty expressions are equal, numbers are
// equal if they have the same value and any other atoms if they have the same
// type and text. Pairs are never equal.
func Eq(left, right *ast.Expression) bool {
	if left.IsEmpty() || right.IsEmpty() {
		return left.IsEmpty() && right.IsEmpty()
	}

	a, ok := left.Atom()
	if !ok {
		return false
	}
	b, ok := right.Atom()
	if !ok {
		return false
	}

	if a.Type() != b.Type() {
		return false
	}
	if a.Is(lexer.TokenNumber) {
		return a.Num() == b.Num()
	}
	return a.Text() == b.Text()
}

func expectArgs(name string, args *ast.Expression, n int) error {
	if got := len(args.List()); got != n {
		return &EvalError{
			Expr: args,
			Err:  fmt.Errorf("%w: %s expects %d, got %d", ErrArity, name, n, got),
		}
	}
	return nil
}

func consProc(env *Environment, args *ast.Expression) (*ast.Expression, error) {
	if err := expectArgs(lexer.Cons, args, 2); err != nil {
		return nil, err
	}
	items := args.List()
	return Cons(items[0], items[1]), nil
}

func carProc(env *Environment, args *ast.Expression) (*ast.Expression, error) {
	if err := expectArgs(lexer.Car, args, 1); err != nil {
		return nil, err
	}
	head, ok := Car(args.Head())
	if !ok {
		return ast.Empty(), nil
	}
	return head, nil
}

func cdrProc(env *Environment, args *ast.Expression) (*ast.Expression, error) {
	if err := expectArgs(lexer.Cdr, args, 1); err != nil {
		return nil, err
	}
	return Cdr(args.Head())
}

func eqProc(env *Environment, args *ast.Expression) (*ast.Expression, error) {
	if err := expectArgs(lexer.Eq, args, 2); err != nil {
		return nil, err
	}

	left, _ := Car(args)
	rest, err := Cdr(args)
	if err != nil {
		return nil, err
	}
	right, _ := Car(rest)

	return env.Bool(Eq(left, right)), nil
}
