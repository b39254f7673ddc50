package main

import (
	"fmt"
	"log"

	"github.com/xiam/scheme-core/lexer"
)

func main() {
	input := `
		(cons ; comment
			(car (cons 89 #t))
			(eq "abc" unknown)
		)
	`

	tokens, err := lexer.Tokenize([]byte(input), nil)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v)\n\t-> %q\n\n", i, tok.Type(), tok.Lexeme())
	}
}
