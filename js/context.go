package js

import "strings"

// Context is a set of grammar parameters that the parser passes down to nested productions.
// Values are immutable, nested productions receive a modified copy.
type Context uint16

// Context flags.
const (
	ContextIn                       Context = 1 << iota // the in operator is allowed
	ContextYield                                        // inside a generator
	ContextAwait                                        // inside an async function or module top level
	ContextReturn                                       // inside a function body
	ContextStrict                                       // strict mode code
	ContextDisallowConditionalTypes                     // in the extends clause of a conditional type
	ContextAmbient                                      // inside declare or a .d.ts file
	ContextInType                                       // inside a type annotation
	ContextNoArrowReturnType                            // arrow functions may not have a return type annotation
	ContextDecorator                                    // inside a decorator expression
	ContextClassField                                   // inside a class field initializer
)

var contextNames = []string{"In", "Yield", "Await", "Return", "Strict", "DisallowConditionalTypes", "Ambient", "InType", "NoArrowReturnType", "Decorator", "ClassField"}

// Has returns true if all flags in f are set.
func (c Context) Has(f Context) bool {
	return c&f == f
}

// With returns c with f set.
func (c Context) With(f Context) Context {
	return c | f
}

// Without returns c with f cleared.
func (c Context) Without(f Context) Context {
	return c &^ f
}

// And returns c with f set or cleared depending on on.
func (c Context) And(f Context, on bool) Context {
	if on {
		return c | f
	}
	return c &^ f
}

func (c Context) String() string {
	var names []string
	for i, name := range contextNames {
		if c&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	return "Context(" + strings.Join(names, "|") + ")"
}

// withContext runs f with the parser context set to ctx and restores the previous context afterwards.
func withContext[T any](p *Parser, ctx Context, f func() T) T {
	saved := p.ctx
	p.ctx = ctx
	defer func() {
		p.ctx = saved
	}()
	return f()
}
