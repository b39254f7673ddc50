package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/xiam/scheme-core/lexer"
)

// Print writes a human-readable, indented representation of an expression
func Print(w io.Writer, e *Expression) {
	printLevel(w, e, 0)
}

func printLevel(w io.Writer, e *Expression, level int) {
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s)", indent, e.Type())

	switch e.Type() {
	case ExpressionTypePair:
		fmt.Fprintf(w, "\n")
		printLevel(w, e.head, level+1)
		printLevel(w, e.tail, level+1)

	case ExpressionTypeAtom:
		fmt.Fprintf(w, ": %v\n", e.atom)

	case ExpressionTypeEmpty:
		fmt.Fprintf(w, "\n")

	default:
		panic("unknown expression type")
	}
}

// Encode transforms an expression into its text representation. Proper lists
// are written as (a b c), improper tails with a dot: (a . b).
func Encode(e *Expression) []byte {
	return []byte(encode(e))
}

func encode(e *Expression) string {
	switch e.Type() {
	case ExpressionTypeEmpty:
		return "()"

	case ExpressionTypeAtom:
		if e.atom.Is(lexer.TokenString) {
			return fmt.Sprintf("%q", e.atom.Text())
		}
		return e.atom.Lexeme()

	case ExpressionTypePair:
		items := []string{}
		node := e
		for ; node.IsPair(); node = node.tail {
			items = append(items, encode(node.head))
		}
		if !node.IsEmpty() {
			items = append(items, ".", encode(node))
		}
		return fmt.Sprintf("(%s)", strings.Join(items, " "))

	default:
		panic("unknown expression type")
	}
}
