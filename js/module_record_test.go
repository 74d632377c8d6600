package js

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
)

func (e ImportEntry) String() string {
	s := string(e.Module) + ":"
	if e.ImportName == nil {
		s += "*"
	} else {
		s += string(e.ImportName)
	}
	s += "=" + string(e.LocalName)
	if e.TypeOnly {
		s += " type"
	}
	return s
}

func (e ExportEntry) String() string {
	s := "*"
	if e.ExportName != nil {
		s = string(e.ExportName)
	}
	if e.Module == nil {
		return s + "=" + string(e.LocalName)
	}
	if e.ImportName == nil {
		return s + "=*<" + string(e.Module)
	}
	return s + "=" + string(e.ImportName) + "<" + string(e.Module)
}

func TestModuleRecord(t *testing.T) {
	src := `import a, { b as c, type d } from "m"; import * as ns from 'n'; export { c as e }; export * from "o"; export * as p from "q"; export default function f() {}; export const [g, { h }] = x; export { i as "j k" } from "r"`
	program, ds, _ := Parse([]byte(src), Options{SourceType: TS})
	test.T(t, len(ds), 0, "diagnostics", ds)
	require.NotNil(t, program.Module)

	imports := []string{}
	for _, e := range program.Module.Imports {
		imports = append(imports, e.String())
	}
	test.T(t, imports, []string{"m:default=a", "m:b=c", "m:d=d type", "n:*=ns"})

	exports := []string{}
	for _, e := range program.Module.Exports {
		exports = append(exports, e.String())
	}
	test.T(t, exports, []string{"e=c", "*=*<o", "p=*<q", "default=f", "g=g", "h=h", "j k=i<r"})
}

func TestModuleRecordDuplicates(t *testing.T) {
	var tests = []struct {
		js        string
		duplicate string // empty when no duplicate is reported
	}{
		{"export let a; export let a", "a"},
		{"export { b as a }; export const a = 1", "a"},
		{"export default 1; export default 2", "default"},
		{"export { a as default }; export default 1", "default"},
		{"export * as ns from 'm'; export const ns = 1", "ns"},
		{"export const [a, { b: [a] }] = x", "a"},
		{"export * from 'a'; export * from 'b'", ""},
		{"export function f(): void; export function f(a?) {}", ""},
		{"export interface A {} export interface A {}", ""},
		{"export enum E { A } export enum E { B = 1 }", ""},
		{"export type T = 1; export { T }", ""},
		{"let a; export { a, a as b }", ""},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			_, ds, fatal := Parse([]byte(tt.js), Options{SourceType: TS})
			test.That(t, !fatal)
			if tt.duplicate == "" {
				test.T(t, len(ds), 0, "diagnostics", ds)
				return
			}
			require.Len(t, ds, 1)
			test.T(t, ds[0].Kind, SyntaxError)
			test.String(t, ds[0].Message, "duplicate export of '"+tt.duplicate+"'")
		})
	}
}

func TestModuleRecordSpan(t *testing.T) {
	// the second declaration is reported
	_, ds, _ := Parse([]byte("export let a; export let a"), Options{SourceType: Module})
	require.Len(t, ds, 1)
	test.T(t, ds[0].Span.Start, uint32(25))
}

func TestModuleRecordScript(t *testing.T) {
	program, _, _ := Parse([]byte("var a"), Options{SourceType: Script})
	test.That(t, program.Module == nil, "scripts have no module record")

	program, _, _ = Parse([]byte("var a"), Options{SourceType: Module})
	require.NotNil(t, program.Module)
	test.T(t, len(program.Module.Imports)+len(program.Module.Exports), 0)
}
