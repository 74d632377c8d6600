package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestContext(t *testing.T) {
	c := ContextIn.With(ContextStrict)
	test.That(t, c.Has(ContextIn))
	test.That(t, c.Has(ContextIn|ContextStrict))
	test.That(t, !c.Has(ContextIn|ContextYield))
	test.That(t, !c.Without(ContextIn).Has(ContextIn))
	test.T(t, c.And(ContextYield, true), c|ContextYield)
	test.T(t, c.And(ContextStrict, false), ContextIn)
	test.String(t, c.String(), "Context(In|Strict)")
	test.String(t, Context(0).String(), "Context()")
}

func TestWithContextRestores(t *testing.T) {
	p := newParser([]byte("x"), Options{SourceType: Module})
	outer := p.ctx
	inner := withContext(p, outer.With(ContextYield), func() Context {
		return p.ctx
	})
	test.That(t, inner.Has(ContextYield))
	test.T(t, p.ctx, outer)
}

func TestContextSensitiveKeywords(t *testing.T) {
	var tests = []struct {
		js    string
		st    SourceType
		valid bool
	}{
		{"var yield = 1", Script, true},
		{"function* g() { var yield = 1 }", Script, false},
		{"function* g() { function f() { var yield = 1 } }", Script, true},
		{"async function f() { var await = 1 }", Script, false},
		{"async function f() { function g() { var await = 1 } }", Script, true},
		{"var let = 1", Script, true},
		{"'use strict'; var let = 1", Script, false},
		{"function f() { 'use strict'; var static = 1 }", Script, false},
		{"for (var a in b);", Script, true},
		{"for (var a = b in c;;);", Script, false},
		{"for (var a = (b in c);;);", Script, true},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			_, ds, _ := Parse([]byte(tt.js), Options{SourceType: tt.st})
			test.T(t, len(ds) == 0, tt.valid, "diagnostics", ds)
		})
	}
}
