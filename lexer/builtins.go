package lexer

import (
	"sort"
)

// Reserved names known to every interpreter.
const (
	True  = "#t"
	False = "#f"

	Cons = "cons"
	Car  = "car"
	Cdr  = "cdr"
	Eq   = "eq"
)

// Builtins maps reserved names to the token that represents them. A table is
// never modified after NewBuiltins returns, so it can be shared freely.
type Builtins struct {
	tokens map[string]Token
}

// NewBuiltins creates a table from the given tokens, keyed by their text.
func NewBuiltins(tokens ...Token) *Builtins {
	b := &Builtins{
		tokens: make(map[string]Token, len(tokens)),
	}
	for _, tok := range tokens {
		b.tokens[tok.Text()] = tok
	}
	return b
}

// DefaultBuiltins returns a table with the constants #t and #f and the
// procedures cons, car, cdr and eq.
func DefaultBuiltins() *Builtins {
	return NewBuiltins(
		NewToken(TokenConstant, True),
		NewToken(TokenConstant, False),
		NewToken(TokenAtom, Cons),
		NewToken(TokenAtom, Car),
		NewToken(TokenAtom, Cdr),
		NewToken(TokenAtom, Eq),
	)
}

// Lookup returns the token registered under name.
func (b *Builtins) Lookup(name string) (Token, bool) {
	tok, ok := b.tokens[name]
	return tok, ok
}

// Names returns the registered names in lexical order.
func (b *Builtins) Names() []string {
	names := make([]string, 0, len(b.tokens))
	for name := range b.tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
