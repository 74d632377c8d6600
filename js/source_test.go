package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSourceTypeFromPath(t *testing.T) {
	var tests = []struct {
		path     string
		expected string
	}{
		{"a.js", "module"},
		{"dir/a.mjs", "module"},
		{"a.cjs", "script"},
		{"a.jsx", "module+jsx"},
		{"a.ts", "module+ts"},
		{"a.tsx", "module+ts+jsx"},
		{"lib/a.d.ts", "module+dts"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			st, err := SourceTypeFromPath(tt.path)
			test.Error(t, err)
			test.String(t, st.String(), tt.expected)
		})
	}

	_, err := SourceTypeFromPath("a.css")
	test.That(t, err != nil)
}

func TestDefinitionFile(t *testing.T) {
	st, _ := SourceTypeFromPath("a.d.ts")
	_, ds, _ := Parse([]byte("const a: number; function f(): void;"), Options{SourceType: st})
	test.T(t, len(ds), 0, "declarations are ambient in definition files", ds)
}

func TestParseSourceType(t *testing.T) {
	var tests = []struct {
		name     string
		expected string
	}{
		{"script", "script"},
		{"module", "module"},
		{"TS", "module+ts"},
		{"tsx", "module+ts+jsx"},
		{"jsx", "module+jsx"},
		{"dts", "module+dts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseSourceType(tt.name)
			test.Error(t, err)
			test.String(t, st.String(), tt.expected)
		})
	}

	_, err := ParseSourceType("coffee")
	test.That(t, err != nil)
}
