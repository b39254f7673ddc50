package scheme

import (
	"fmt"
	"log"
)

// Option configures an Environment
type Option func(*Environment)

// WithLogger sets the logger used for tracing. Defaults to the standard
// logger.
func WithLogger(logger *log.Logger) Option {
	return func(env *Environment) {
		env.logger = logger
	}
}

// WithTrace logs every evaluated expression and every procedure call.
func WithTrace(trace bool) Option {
	return func(env *Environment) {
		env.trace = trace
	}
}

// WithProcedure registers an additional procedure. Calls only reach it if
// name is also in the builtins table given to New.
func WithProcedure(name string, proc Procedure) Option {
	return func(env *Environment) {
		if err := env.st.Set(name, proc); err != nil {
			panic(fmt.Sprintf("WithProcedure %q: %v", name, err))
		}
	}
}
