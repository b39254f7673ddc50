package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	scheme "github.com/xiam/scheme-core"
	"github.com/xiam/scheme-core/ast"
)

func main() {
	input := `
		; pairs
		(cons 1 2)
		(car (cons 1 2))
		(cdr (cons 1 (cons 2 ())))

		; equality
		(eq 3 3)
		(eq (car (cons 7 8)) 8)
	`

	env := scheme.New(nil, scheme.WithTrace(len(os.Args) > 1 && os.Args[1] == "-trace"))

	r, err := scheme.NewReader(strings.NewReader(input), env)
	if err != nil {
		log.Fatal("scheme.NewReader:", err)
	}

	for {
		value, err := r.Eval()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal("eval:", err)
		}
		fmt.Printf("%s\n", ast.Encode(value))
	}
}
