package js

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

type walker struct{}

func (w *walker) Enter(n INode) IVisitor {
	switch n := n.(type) {
	case *Var:
		if bytes.Equal(n.Data, []byte("x")) {
			n.Data = []byte("obj")
		}
	}
	return w
}

func TestWalk(t *testing.T) {
	js := `
	if (true) {
		for (i = 0; i < 1; i++) {
			x.y = i
		}
	}`
	program, ds, _ := Parse([]byte(js), Options{SourceType: Script})
	test.T(t, len(ds), 0)

	Walk(&walker{}, program)
	test.String(t, program.String(), "Stmt(if true Stmt({ Stmt(for (i = 0) ; (i < 1) ; (i++) Stmt({ Stmt((obj.y = i)) })) }))")
}

func TestWalkOrder(t *testing.T) {
	program, _, _ := Parse([]byte("f(a, b + c)[d]"), Options{SourceType: Script})
	var names []string
	Inspect(program, func(n INode) bool {
		if v, ok := n.(*Var); ok {
			names = append(names, string(v.Data))
		}
		return true
	})
	test.String(t, strings.Join(names, " "), "f a b c d")
}

func TestInspectSkip(t *testing.T) {
	program, _, _ := Parse([]byte("a; function f() { b }; c"), Options{SourceType: Script})
	var names []string
	Inspect(program, func(n INode) bool {
		if v, ok := n.(*Var); ok {
			names = append(names, string(v.Data))
		}
		_, isFunc := n.(*FuncDecl)
		return !isFunc
	})
	test.String(t, strings.Join(names, " "), "a c")
}

func TestWalkOptional(t *testing.T) {
	// absent optional children are skipped
	program, _, _ := Parse([]byte("for (;;) {} class A {}"), Options{SourceType: Script})
	var names []string
	Inspect(program, func(n INode) bool {
		names = append(names, nodeName(n))
		return true
	})
	test.String(t, strings.Join(names, " "), "Program ForStmt BlockStmt ClassDecl BindingName")
}

func TestPrint(t *testing.T) {
	program, _, _ := Parse([]byte("a + 1"), Options{SourceType: Script})
	var buf bytes.Buffer
	test.Error(t, Print(&buf, program))
	test.String(t, buf.String(), "Program\n  ExprStmt\n    BinaryExpr +\n      Var a\n      LiteralExpr 1\n")
}

func TestPrintPositions(t *testing.T) {
	src := []byte("a +\n1")
	program, _, _ := Parse(src, Options{SourceType: Script})
	var buf bytes.Buffer
	test.Error(t, PrintPositions(&buf, program, src))
	test.String(t, buf.String(), `Program @1:1 [0,5)
  ExprStmt @1:1 [0,5)
    BinaryExpr + @1:1 [0,5)
      Var a @1:1 [0,1)
      LiteralExpr 1 @2:1 [4,5)
`)
}

type spanChecker struct {
	t      *testing.T
	src    []byte
	parent INode
}

func (c spanChecker) Enter(n INode) IVisitor {
	span := n.Loc()
	if span.End < span.Start || len(c.src) < int(span.End) {
		c.t.Errorf("%s has invalid span %v", nodeName(n), span)
	} else if c.parent != nil && !c.parent.Loc().Contains(span) {
		c.t.Errorf("%s %v of %q is not within its parent %s %v", nodeName(n), span, span.Text(c.src), nodeName(c.parent), c.parent.Loc())
	}
	return spanChecker{c.t, c.src, n}
}

var spanTests = []struct {
	js string
	st SourceType
}{
	{"var a = 1, [b, ...c] = d, {e, f: g = 2} = h;", Script},
	{"label: for (let i = 0; i < n; i++) { if (i) continue label; else break }", Script},
	{"for (const [k, v] of m) while (k) do v--; while (0)", Script},
	{"switch (x) { case 1: case 2: y(); break; default: z }", Script},
	{"try { throw new Error('e') } catch ({ message }) {} finally { debugger }", Script},
	{"async function* g(a = 1, ...b) { yield* await a; return `t${b}u` }", Module},
	{"class A extends B { static #x = 1; get y() { return this.#x } static { z() } }", Module},
	{"x = { a, b: 2, [c]: 3, ...d, m() {}, get n() { return 1 } }", Module},
	{"a?.b?.[c]?.(d); new.target; import.meta.url; import('m')", Module},
	{"a ? b : c ?? d ** -e", Module},
	{`import def, * as ns from "m"; export { a as b } from "n"; export default class {}`, Module},
	{"let f = async (a, { b }) => ({ a, b }), g = x => y => x + y", Module},
	{"type A<T extends object = {}> = { readonly [K in keyof T]?: T[K] } & B", TS},
	{"interface I<T> extends J, K<T> { (a: T): void; new (): I<T>; [k: string]: any; m?<U>(u: U): U }", TS},
	{"function f(this: Window, a?: string, ...r: number[]): asserts a is string {}", TS},
	{"let x = <T>(a: T): T => a, y = z as unknown as T[], w = v!", TS},
	{"declare module 'm' { export const a: number; }", TS},
	{"enum E { A = 1 << 0, B = A | 2 }; namespace N.M { export type T = [a: string, b?: number, ...c: boolean[]] }", TS},
	{"abstract class C<T> implements I { private constructor(public readonly a: T) { super() } abstract m(): void }", TS},
	{"type F = new (...args: any[]) => object; type G = typeof import('m'); type H = `a${string}b`", TS},
	{"type C<T> = T extends (infer U)[] ? U : T extends Promise<infer V> ? V : never", TS},
	{`<div className="a" {...props}>text {x} <b/> <ns:tag a-b='c' /></div>`, JSX},
	{"const el = <></>; const f = <T,>(x: T) => <A<T> x={x}>{x}</A>", TSX},
}

func TestSpans(t *testing.T) {
	for _, tt := range spanTests {
		t.Run(tt.js, func(t *testing.T) {
			src := []byte(tt.js)
			program, ds, _ := Parse(src, Options{SourceType: tt.st})
			test.T(t, len(ds), 0, "diagnostics", ds)
			Walk(spanChecker{t: t, src: src}, program)
		})
	}
}
