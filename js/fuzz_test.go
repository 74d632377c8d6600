package js

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	for _, tt := range spanTests {
		f.Add(tt.js, tt.st.TypeScript, tt.st.JSX)
	}
	f.Add("`a${", false, false)
	f.Add("<a><b></a>", false, true)
	f.Add("f<<T>(x: T) => T>(g)", true, false)
	f.Add("((((((", false, false)
	f.Add("/[/", false, false)
	f.Add("x = a < b", true, false)
	f.Add("new Foo<T>", true, false)
	f.Add("let x: Foo<T", true, false)
	f.Add("for (await using x of xs);", false, false)
	f.Add("export let a; export let a", false, false)
	f.Add("let x = 08", false, false)

	f.Fuzz(func(t *testing.T, js string, typescript, jsx bool) {
		src := []byte(js)
		st := SourceType{Module: true, TypeScript: typescript, JSX: jsx}
		program, ds, fatal := Parse(src, Options{SourceType: st})

		fatals := 0
		for i, d := range ds {
			if 0 < i && d.Span.Start < ds[i-1].Span.Start {
				t.Fatalf("diagnostics out of order: %v", ds)
			} else if len(src) < int(d.Span.End) || d.Span.End < d.Span.Start {
				t.Fatalf("invalid diagnostic span: %v", d)
			}
			if d.Kind == FatalError {
				fatals++
			}
		}
		if 1 < fatals || fatal != (fatals == 1) {
			t.Fatalf("fatal=%v with %d fatal diagnostics", fatal, fatals)
		}
		Inspect(program, func(n INode) bool {
			if span := n.Loc(); len(src) < int(span.End) || span.End < span.Start {
				t.Fatalf("%s has invalid span %v", nodeName(n), span)
			}
			return true
		})
	})
}
