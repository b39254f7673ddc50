package ast

import (
	"fmt"

	"github.com/xiam/scheme-core/lexer"
)

// ExpressionType represents the shape of an expression
type ExpressionType uint8

// Expression shapes
const (
	ExpressionTypeEmpty ExpressionType = iota
	ExpressionTypeAtom
	ExpressionTypePair
)

var expressionTypeName = map[ExpressionType]string{
	ExpressionTypeEmpty: "empty",
	ExpressionTypeAtom:  "atom",
	ExpressionTypePair:  "pair",
}

func (et ExpressionType) String() string {
	return expressionTypeName[et]
}

// Expression is a node of the S-expression tree: an atom wrapping a token, a
// pair of two expressions, or the empty expression. Expressions are never
// modified once built, so subtrees can be shared between trees.
type Expression struct {
	atom *lexer.Token

	head *Expression
	tail *Expression
}

// Empty returns the empty expression.
func Empty() *Expression {
	return &Expression{}
}

// NewAtom creates an atom expression for the given token.
func NewAtom(tok lexer.Token) *Expression {
	return &Expression{atom: &tok}
}

// NewPair creates a pair expression. A nil head or tail is stored as the
// empty expression.
func NewPair(head, tail *Expression) *Expression {
	if head == nil {
		head = Empty()
	}
	if tail == nil {
		tail = Empty()
	}
	return &Expression{head: head, tail: tail}
}

// NewList builds a proper list out of the given expressions.
func NewList(items ...*Expression) *Expression {
	list := Empty()
	for i := len(items) - 1; i >= 0; i-- {
		list = NewPair(items[i], list)
	}
	return list
}

// Type returns the shape of the expression
func (e *Expression) Type() ExpressionType {
	switch {
	case e.IsAtom():
		return ExpressionTypeAtom
	case e.IsPair():
		return ExpressionTypePair
	}
	return ExpressionTypeEmpty
}

// IsEmpty returns true if the expression carries neither an atom nor
// children. A nil expression is empty.
func (e *Expression) IsEmpty() bool {
	return e == nil || (e.atom == nil && e.head == nil && e.tail == nil)
}

// IsAtom returns true if the expression wraps a token
func (e *Expression) IsAtom() bool {
	return e != nil && e.atom != nil
}

// IsPair returns true if the expression has children
func (e *Expression) IsPair() bool {
	return e != nil && e.atom == nil && (e.head != nil || e.tail != nil)
}

// Atom returns the token of an atom expression
func (e *Expression) Atom() (lexer.Token, bool) {
	if !e.IsAtom() {
		return lexer.Token{}, false
	}
	return *e.atom, true
}

// Head returns the first child of a pair
func (e *Expression) Head() *Expression {
	if e == nil {
		return nil
	}
	return e.head
}

// Tail returns the second child of a pair
func (e *Expression) Tail() *Expression {
	if e == nil {
		return nil
	}
	return e.tail
}

// List returns the elements of a proper list, stopping at the first tail that
// is not a pair.
func (e *Expression) List() []*Expression {
	items := []*Expression{}
	for node := e; node.IsPair(); node = node.tail {
		items = append(items, node.head)
	}
	return items
}

func (e *Expression) String() string {
	switch e.Type() {
	case ExpressionTypeAtom:
		return fmt.Sprintf("(%v): %v", e.Type(), e.atom)
	case ExpressionTypePair:
		return fmt.Sprintf("(%v)[%d]", e.Type(), len(e.List()))
	}
	return fmt.Sprintf("(%v)", e.Type())
}
