package parse

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestError(t *testing.T) {
	err := NewError([]byte("buffer"), 3, "message")

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 4, "column")
	test.T(t, context, "    1: buffer\n"+strings.Repeat(" ", 10)+"^", "context")

	test.T(t, err.Error(), "message on line 1 and column 4\n    1: buffer\n"+strings.Repeat(" ", 10)+"^", "error")
}

func TestErrorSpan(t *testing.T) {
	err := NewErrorSpan([]byte("a\nbuffer"), NewSpan(4, 6), "expected %s", "'x'")
	test.T(t, err.Message, "expected 'x'")
	test.T(t, err.Offset, 4)
	test.T(t, err.Line, 2, "line")
	test.T(t, err.Column, 3, "column")
}
