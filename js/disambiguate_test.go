package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestIsParenthesizedArrow(t *testing.T) {
	var tests = []struct {
		js       string
		st       SourceType
		expected tristate
	}{
		{"() => a", Script, tristateTrue},
		{"() + a", Script, tristateFalse},
		{"(a, b) => a", Script, tristateMaybe},
		{"(a)", Script, tristateMaybe},
		{"(1)", Script, tristateFalse},
		{"(...a) => a", Script, tristateTrue},
		{"([a]) => a", Script, tristateMaybe},
		{"(a: T) => a", TS, tristateTrue},
		{"(a?: T) => a", TS, tristateTrue},
		{"(a: T)", Script, tristateFalse},
		{"(public a) => a", TS, tristateTrue},
		{"<T>(x) => x", TS, tristateMaybe},
		{"<T>(x) => x", JSX, tristateFalse},
		{"<T,>(x) => x", TSX, tristateTrue},
		{"<T extends U>(x) => x", TSX, tristateTrue},
		{"<div>", TSX, tristateFalse},
		{"a", Script, tristateFalse},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			p := newParser([]byte(tt.js), Options{SourceType: tt.st})
			p.next()
			test.T(t, p.isParenthesizedArrow(), tt.expected)
		})
	}
}

func TestTypePredicates(t *testing.T) {
	var tests = []struct {
		js       string
		pred     func(*Parser) bool
		expected bool
	}{
		{"(a: string) => void", (*Parser).isStartOfFunctionType, true},
		{"() => void", (*Parser).isStartOfFunctionType, true},
		{"(...a) => void", (*Parser).isStartOfFunctionType, true},
		{"(string) => void", (*Parser).isStartOfFunctionType, true},
		{"({ a }: T) => void", (*Parser).isStartOfFunctionType, true},
		{"(string | number)[]", (*Parser).isStartOfFunctionType, false},
		{"(string)", (*Parser).isStartOfFunctionType, false},
		{"<T>() => T", (*Parser).isStartOfFunctionType, true},
		{"{ [K in keyof T]: T[K] }", (*Parser).isStartOfMappedType, true},
		{"{ -readonly [K in keyof T]: T[K] }", (*Parser).isStartOfMappedType, true},
		{"{ [k: string]: number }", (*Parser).isStartOfMappedType, false},
		{"{ a: string }", (*Parser).isStartOfMappedType, false},
		{"[k: string]: number", (*Parser).isStartOfIndexSignature, true},
		{"[Symbol.iterator](): void", (*Parser).isStartOfIndexSignature, false},
		{"a: string", (*Parser).isStartOfNamedTupleMember, true},
		{"a?: string", (*Parser).isStartOfNamedTupleMember, true},
		{"a[]", (*Parser).isStartOfNamedTupleMember, false},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			p := newParser([]byte(tt.js), Options{SourceType: TS})
			p.next()
			start := p.tok
			test.T(t, tt.pred(p), tt.expected)
			test.T(t, p.tok, start, "predicates do not consume tokens")
		})
	}
}

func TestCanFollowTypeArgs(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"f<T>(x)", "Stmt(f<T>(x))"},
		{"f<T>`x`", "Stmt(f<T>`x`)"},
		{"a < b > c", "Stmt(((a < b) > c))"},
		{"a < b > (c)", "Stmt(a<b>(c))"},
		{"a < b >= c", "Stmt(((a < b) >= c))"},
		{"f<T>;", "Stmt(f<T>)"},
		{"f<T>\nx", "Stmt(f<T>) Stmt(x)"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			program, ds, _ := Parse([]byte(tt.js), Options{SourceType: TS})
			test.T(t, len(ds), 0, "diagnostics", ds)
			test.String(t, program.String(), tt.expected)
		})
	}
}

func TestDisambiguation(t *testing.T) {
	var tests = []struct {
		js       string
		st       SourceType
		expected string
	}{
		// arrow functions are tried before parenthesized expressions
		{"(a)", Script, "Stmt(Group(a))"},
		{"(a) => a", Script, "Stmt(Arrow(Params(a) => a))"},
		{"(a = 1, [b]) => b", Script, "Stmt(Arrow(Params(a = 1, [b]) => b))"},
		{"(a = 1, [b])", Script, "Stmt(Group(((a = 1), [b])))"},
		{"async (a)", Script, "Stmt(async(a))"},
		{"async\n(a) => a", Script, ""},

		// generic arrows in TypeScript and TSX
		{"<T>(x: T) => x", TS, "Stmt(Arrow(<T>Params(x: T) => x))"},
		{"<T extends U>(x: T) => x", TSX, "Stmt(Arrow(<T extends U>Params(x: T) => x))"},

		// function types are tried before parenthesized types
		{"type A = (a) => void", TS, "Decl(type A = FuncType(Params(a) => void))"},
		{"type A = (a)", TS, "Decl(type A = Paren(a))"},
		{"type A = () => void", TS, "Decl(type A = FuncType(Params() => void))"},

		// mapped types versus type literals
		{"type A = { [K in T]: K }", TS, "Decl(type A = { [K in T]: K })"},
		{"type A = { [k: string]: T }", TS, "Decl(type A = { [k: string]: T })"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			program, ds, _ := Parse([]byte(tt.js), Options{SourceType: tt.st})
			if tt.expected == "" {
				test.That(t, 0 < len(ds), "must have diagnostics")
				return
			}
			test.T(t, len(ds), 0, "diagnostics", ds)
			test.String(t, program.String(), tt.expected)
		})
	}
}
