package parse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestPosition(t *testing.T) {
	var newlineTests = []struct {
		offset int
		buf    string
		line   int
		col    int
	}{
		{0, "x", 1, 1},
		{1, "xx", 1, 2},
		{2, "x\nx", 2, 1},
		{2, "\n\nx", 3, 1},
		{3, "\nxxx", 2, 3},
		{2, "\r\nx", 2, 1},
		{1, "\rx", 2, 1},
		{3, "\u2028x", 2, 1},
		{2, "\u00ebx", 1, 2},

		// edge cases
		{0, "", 1, 1},
		{0, "\n", 1, 1},
		{1, "\r\n", 1, 2},
		{-1, "x", 1, 2}, // continue till the end
		{5, "x", 1, 2},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			line, col, _ := Position([]byte(tt.buf), tt.offset)
			test.T(t, line, tt.line, "line")
			test.T(t, col, tt.col, "column")
		})
	}
}

func TestPositionContext(t *testing.T) {
	long := strings.Repeat("0123456789", 8)
	var newlineTests = []struct {
		offset  int
		buf     string
		context string
	}{
		{1, "abc\ndef", "abc"},
		{5, "abc\r\ndef", "def"},
		{10, long, long[:60] + "..."},
		{60, long, "..." + long[31:]},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			_, _, context := Position([]byte(tt.buf), tt.offset)
			i := strings.IndexByte(context, '\n')
			test.T(t, context[7:i], tt.context)
		})
	}
}

func TestPositionCaret(t *testing.T) {
	_, _, context := Position([]byte("var a = ;"), 8)
	test.String(t, context, "    1: var a = ;\n"+strings.Repeat(" ", 15)+"^")
}
