package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/scheme-core/ast"
	"github.com/xiam/scheme-core/parser"
)

func printTree(expr *ast.Expression) {
	printIndentedTree(expr, 0)
}

func printIndentedTree(expr *ast.Expression, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	switch expr.Type() {
	case ast.ExpressionTypePair:
		fmt.Printf("%s<%s>\n", indent, expr.Type())
		printIndentedTree(expr.Head(), indentationLevel+1)
		printIndentedTree(expr.Tail(), indentationLevel+1)
		fmt.Printf("%s</%s>\n", indent, expr.Type())
	case ast.ExpressionTypeAtom:
		tok, _ := expr.Atom()
		fmt.Printf("%s<%s>%s</%s>\n", indent, tok.Type(), tok.Lexeme(), tok.Type())
	default:
		fmt.Printf("%s<%s/>\n", indent, expr.Type())
	}
}

func main() {
	input := `(cons (car (cons 89 #t)) (eq "abc" 3))`

	forms, err := parser.Parse([]byte(input), nil)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, form := range forms {
		printTree(form)
	}
}
