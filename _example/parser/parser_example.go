package main

import (
	"log"
	"os"

	"github.com/xiam/scheme-core/ast"
	"github.com/xiam/scheme-core/parser"
)

func main() {
	input := `(cons (car (cons 89 #t)) (cons 66 (cons 3 ())))`

	forms, err := parser.Parse([]byte(input), nil)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, form := range forms {
		ast.Print(os.Stdout, form)
	}
}
