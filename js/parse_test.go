package js

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
)

type parseTest struct {
	js       string
	expected string
}

func runParseTests(t *testing.T, st SourceType, tests []parseTest) {
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			program, ds, fatal := Parse([]byte(tt.js), Options{SourceType: st})
			test.That(t, !fatal, "must not stop at a fatal error")
			test.T(t, len(ds), 0, "diagnostics", ds)
			test.String(t, program.String(), tt.expected)
		})
	}
}

func TestParseScript(t *testing.T) {
	runParseTests(t, Script, []parseTest{
		{"{}", "Stmt({ })"},
		{";", "Stmt()"},
		{"a", "Stmt(a)"},
		{`"use strict"; a`, `Directive("use strict") Stmt(a)`},
		{"var a = b", "Decl(var a = b)"},
		{"if (a) b; else c", "Stmt(if a Stmt(b) else Stmt(c))"},
		{"label: for (;;) break label", "Stmt(label : Stmt(for ; ; Stmt(break label)))"},
		{"for (const x of xs);", "Stmt(for Decl(const x) of xs Stmt())"},
		{"switch (a) { case 1: b; default: }", "Stmt(switch a Clause(case 1 Stmt(b)) Clause(default))"},
		{"try {} catch (e) {} finally {}", "Stmt(try Stmt({ }) catch e Stmt({ }) finally Stmt({ }))"},
		{"a + b", "Stmt((a + b))"},
		{"i++", "Stmt((i++))"},
		{"typeof a", "Stmt((typeof a))"},
		{"(a, b)", "Stmt(Group((a, b)))"},
		{"async (a, b) => { return a }", "Stmt(Arrow(async Params(a, b) => Stmt({ Stmt(return a) })))"},
		{"new Foo(1)", "Stmt((new Foo(1)))"},
		{"a?.b.c", "Stmt(Chain(a?.b.c))"},
		{"tag`x${y}z`", "Stmt(tag`x${y}z`)"},
		{"({a, b: c, ...d})", "Stmt(Group({a, b: c, ...d}))"},
		{"[a, , ...b]", "Stmt([a, , ...b])"},
		{"/re/g.test(s)", "Stmt(/re/g.test(s))"},
		{"function f(a, b = 1, ...c) {}", "Decl(function f Params(a, b = 1, ...c) Stmt({ }))"},
		{"class A extends B { static x = 1; #y; get z() { return 1 } }", "Decl(class A extends B { Field(static x = 1) Field(#y) Method(get z Params() Stmt({ Stmt(return 1) })) })"},
		{"x = 07 + 08 + 0.5 + 0", "Stmt((x = (((07 + 08) + 0.5) + 0)))"},
		{"{ using x = y }", "Stmt({ Decl(using x = y) })"},
		{"using\nx", "Stmt(using) Stmt(x)"},
	})
}

func TestParseModule(t *testing.T) {
	runParseTests(t, Module, []parseTest{
		{`import a, { b as c } from "m"`, `Stmt(import a , { b as c } from "m")`},
		{"export default function () {}", "Stmt(export default Decl(function Params() Stmt({ })))"},
		{"export { a as b }", "Stmt(export { a as b })"},
		{`export * as ns from "m"`, `Stmt(export * as ns from "m")`},
		{"using x = y", "Decl(using x = y)"},
		{"using x = y, z = w", "Decl(using x = y, z = w)"},
		{"async function f() { await using x = y }", "Decl(async function f Params() Stmt({ Decl(await using x = y) }))"},
		{"for (using x of xs);", "Stmt(for Decl(using x) of xs Stmt())"},
		{"for (await using x of xs);", "Stmt(for Decl(await using x) of xs Stmt())"},
		{"using\nx", "Stmt(using) Stmt(x)"},
		{"using(x)", "Stmt(using(x))"},
		{"for (using of xs);", "Stmt(for using of xs Stmt())"},
	})
}

func TestParseTypeScript(t *testing.T) {
	runParseTests(t, TS, []parseTest{
		{"let x: number = 1", "Decl(let x: number = 1)"},
		{`type A<T> = T extends string ? "s" : never`, `Decl(type A<T> = (T extends string ? "s" : never))`},
		{"interface I extends J { a?: string; m(): void }", "Decl(interface I extends J { a?: string; m Params(): void })"},
		{"enum E { A = 1, B }", "Decl(enum E { A = 1, B })"},
		{"namespace A.B { export const x = 1 }", "Decl(namespace A Decl(namespace B Stmt({ Stmt(export Decl(const x = 1)) })))"},
		{"abstract class A { abstract m(): void; }", "Decl(abstract class A { Method(abstract m Params(): void) })"},
		{"declare function f(): void;", "Decl(declare function f Params(): void)"},
		{"declare function f(x): asserts x;", "Decl(declare function f Params(x): asserts x)"},
		{"declare function f(x): asserts x is string;", "Decl(declare function f Params(x): asserts x is string)"},
		{"declare function f(x): x is string;", "Decl(declare function f Params(x): x is string)"},
		{"declare function f(x): asserts;", "Decl(declare function f Params(x): asserts)"},
		{"x as const", "Stmt((x as const))"},
		{"x!", "Stmt(x!)"},
		{"f<T>(x)", "Stmt(f<T>(x))"},
		{"a < b > c", "Stmt(((a < b) > c))"},
		{"const f = <T>(x: T): T => x", "Decl(const f = Arrow(<T>Params(x: T): T => x))"},
		{"type M = { readonly [K in keyof T]?: T[K] }", "Decl(type M = { readonly [K in (keyof T)]?: T[K] })"},
		{"type L = { [k: string]: number }", "Decl(type L = { [k: string]: number })"},
		{"type F = (a: string) => void", "Decl(type F = FuncType(Params(a: string) => void))"},
		{"type P = (string | number)[]", "Decl(type P = Paren((string | number))[])"},
		{"x = a < b", "Stmt((x = (a < b)))"},
		{"new Foo<T>", "Stmt((new Foo<T>))"},
	})
}

func TestParseJSX(t *testing.T) {
	runParseTests(t, JSX, []parseTest{
		{`<div className="a">hi {x}</div>`, `Stmt(<div className="a">hi {x}</div>)`},
		{"<><A.B /></>", "Stmt(<><A.B /></>)"},
		{"<A.B />", "Stmt(<A.B />)"},
	})
	runParseTests(t, TSX, []parseTest{
		{"<T,>(x: T) => x", "Stmt(Arrow(<T>Params(x: T) => x))"},
	})
}

func TestParseErrors(t *testing.T) {
	var tests = []struct {
		js  string
		st  SourceType
		err string
	}{
		{"a +", Script, "unexpected end of input in expression"},
		{"({a = 1})", Script, "invalid shorthand property initializer"},
		{"1 = 2", Script, "invalid assignment target"},
		{"a ?? b || c", Script, "'??' cannot be mixed with '&&' or '||' without parentheses"},
		{"-a ** 2", Script, "unary expression cannot be the left operand of '**'"},
		{"return 1", Script, "return statement is not allowed outside of a function"},
		{"if (a) const b = 1", Script, "declaration cannot appear in a single-statement context"},
		{`import a from "m"`, Script, "import declarations may only appear at the top level of a module"},
		{"with (a) b", Module, "with statement is not allowed in strict mode"},
		{"<a></b>", JSX, "expected corresponding JSX closing tag for 'a'"},
		{"var a = 'b", Script, "unterminated string literal"},
		{"using x = y", Script, "using declarations are not allowed at the top level of a script"},
		{"{ using [a] = b }", Module, "using declarations may not have binding patterns"},
		{"{ using x }", Module, "missing initializer in using declaration"},
		{"for (using x in y);", Module, "using declarations are not allowed in a for-in statement"},
		{"if (a) using x = y", Module, "declaration cannot appear in a single-statement context"},
		{"07", Module, "legacy octal literals are not allowed in strict mode"},
		{"let x = 08", Module, "decimals with leading zeros are not allowed in strict mode"},
		{`"use strict"; 09.5`, Script, "decimals with leading zeros are not allowed in strict mode"},
		{"class A { m() { return { 01: 1 } } }", Script, "legacy octal literals are not allowed in strict mode"},
		{"`a${x y}b`", Script, "expected '}' instead of 'y' in template literal"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			_, ds, fatal := Parse([]byte(tt.js), Options{SourceType: tt.st})
			test.That(t, !fatal, "must not stop at a fatal error")
			require.NotEmpty(t, ds)
			messages := make([]string, len(ds))
			for i, d := range ds {
				messages[i] = d.Message
			}
			assert.Contains(t, strings.Join(messages, "\n"), tt.err)
		})
	}
}

func TestParseRecovery(t *testing.T) {
	// every statement is kept, even the broken ones
	program, ds, fatal := Parse([]byte("a = ;\nb = 1\nc ="), Options{SourceType: Script})
	test.That(t, !fatal)
	test.T(t, len(ds), 2)
	test.T(t, len(program.List), 3)
	for i := 1; i < len(ds); i++ {
		test.That(t, ds[i-1].Span.Start <= ds[i].Span.Start, "diagnostics must be ordered by position")
	}
}

func TestParseFatal(t *testing.T) {
	src := "a;\nb = `abc${x"
	program, ds, fatal := Parse([]byte(src), Options{SourceType: Module})
	test.That(t, fatal, "must stop at the unterminated template")
	test.T(t, len(program.List), 1, "statements before the fatal one are kept")

	n := 0
	for _, d := range ds {
		if d.Kind == FatalError {
			n++
		}
	}
	test.T(t, n, 1, "exactly one fatal error")
	d, ok := ds.Fatal()
	test.That(t, ok)
	test.String(t, d.Message, "unterminated template literal")
	test.T(t, ds[len(ds)-1].Kind, FatalError, "nothing is reported after the fatal error")
}

func TestParseTemplateRecovery(t *testing.T) {
	// the template continues after a broken substitution
	program, ds, fatal := Parse([]byte("`a${x y}b`; c"), Options{SourceType: Script})
	test.That(t, !fatal)
	require.Len(t, ds, 1)
	test.T(t, ds[0].Kind, SyntaxError)
	test.T(t, len(program.List), 2)

	// an unclosed substitution only reports the unterminated template
	for _, src := range []string{"`a${x y", "type A = `a${string"} {
		_, ds, fatal = Parse([]byte(src), Options{SourceType: TS})
		test.That(t, fatal, src)
		require.Len(t, ds, 1, src)
		test.T(t, ds[0].Kind, FatalError, src)
		test.String(t, ds[0].Message, "unterminated template literal", src)
	}
}

func TestParseTypeArgsAtEnd(t *testing.T) {
	// a < at the end of the input is not mistaken for type arguments
	for _, src := range []string{"a as T < b", "let x: Foo<T", "f<T", "new Foo<", "x = a <"} {
		assert.NotPanics(t, func() {
			Parse([]byte(src), Options{SourceType: TS})
		}, src)
	}
}

func TestParseEOFLoop(t *testing.T) {
	// a parser stuck at the end of input stops instead of looping
	src := strings.Repeat("(", 2000)
	_, ds, _ := Parse([]byte(src), Options{SourceType: Script})
	require.NotEmpty(t, ds)
}

func TestParseHashbang(t *testing.T) {
	program, ds, _ := Parse([]byte("#!/usr/bin/env node\nx"), Options{SourceType: Module})
	test.T(t, len(ds), 0)
	test.String(t, string(program.Hashbang), "#!/usr/bin/env node")
	test.String(t, program.String(), "Stmt(x)")
}

func TestParseComments(t *testing.T) {
	src := "// a\nx /* b */ + y"
	program, _, _ := Parse([]byte(src), Options{SourceType: Script})
	require.Len(t, program.Comments, 2)
	test.String(t, string(program.Comments[0].Span.Text([]byte(src))), "// a")
	test.String(t, string(program.Comments[1].Span.Text([]byte(src))), "/* b */")
	test.T(t, program.Comments[1].Kind, MultiLineCommentToken)
}

func TestProgramArena(t *testing.T) {
	program, _, _ := Parse([]byte("a + b * c"), Options{SourceType: Script})
	nodes, size := program.Arena().Stats()
	test.That(t, 6 <= nodes, "at least program, statement, three vars and two binary expressions")
	test.That(t, 0 < size)
}

func TestSourceTypeModuleGoal(t *testing.T) {
	// await is an identifier in scripts and a keyword at the module top level
	_, ds, _ := Parse([]byte("var await = 1"), Options{SourceType: Script})
	test.T(t, len(ds), 0)
	_, ds, _ = Parse([]byte("var await = 1"), Options{SourceType: Module})
	test.That(t, 0 < len(ds))
}
