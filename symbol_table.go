package scheme

import (
	"errors"
)

var errNoSuchKey = errors.New("no such key")

type symbolTable struct {
	p *symbolTable
	n map[string]Procedure
}

func newSymbolTable(parent *symbolTable) *symbolTable {
	return &symbolTable{
		p: parent,
		n: make(map[string]Procedure),
	}
}

func (st *symbolTable) Set(name string, proc Procedure) error {
	if proc == nil {
		return errors.New("nil procedure")
	}
	st.n[name] = proc
	return nil
}

func (st *symbolTable) Get(name string) (Procedure, error) {
	if proc, ok := st.n[name]; ok {
		return proc, nil
	}
	if st.p != nil {
		return st.p.Get(name)
	}
	return nil, errNoSuchKey
}
