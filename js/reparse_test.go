package js

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/tdewolff/test"
)

// stripComments blanks out comments while keeping every offset and line terminator in place.
func stripComments(src []byte, comments []Comment) []byte {
	dst := append([]byte{}, src...)
	for _, c := range comments {
		for i := int(c.Span.Start); i < int(c.Span.End); {
			r, n := utf8.DecodeRune(dst[i:])
			if r != '\n' && r != '\r' && r != '\u2028' && r != '\u2029' {
				for j := 0; j < n; j++ {
					dst[i+j] = ' '
				}
			}
			i += n
		}
	}
	return dst
}

func printTree(t *testing.T, program *Program, src []byte) string {
	var buf bytes.Buffer
	test.Error(t, PrintPositions(&buf, program, src))
	return buf.String()
}

func TestReparseWithoutComments(t *testing.T) {
	var tests = []struct {
		js string
		st SourceType
	}{
		{"a /* x */ + b // y\nc", Script},
		{"a /* multi\nline */ ++b", Script},
		{"return /*\n*/ a", Script},
		{"<!-- html\nx --> y\n--> z", Script},
		{"x = 1 /* a b */ y = 2", Script},
		{"/** @type {number} */ let n = /* inline */ 5 // trailing", Module},
		{"function f(/* no params */) { /* empty */ }", Module},
		{"type A = /* union */ | 'a' // first\n| 'b'", TS},
		{"<div>{/* comment child */}</div>", JSX},
	}
	for _, tt := range spanTests {
		tests = append(tests, struct {
			js string
			st SourceType
		}{tt.js, tt.st})
	}

	dmp := diffmatchpatch.New()
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			src := []byte(tt.js)
			program, ds, _ := Parse(src, Options{SourceType: tt.st})
			stripped := stripComments(src, program.Comments)
			reparsed, ds2, _ := Parse(stripped, Options{SourceType: tt.st})
			test.T(t, len(reparsed.Comments), 0, "comments left in", string(stripped))
			test.T(t, len(ds2), len(ds))

			expected := printTree(t, program, src)
			got := printTree(t, reparsed, stripped)
			if got != expected {
				diffs := dmp.DiffMain(expected, got, false)
				t.Errorf("trees differ after removing comments:\n%s", dmp.DiffPrettyText(diffs))
			}
		})
	}
}
