package parse

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/tdewolff/test"
)

func TestInput(t *testing.T) {
	s := `Lorem ipsum dolor sit amet, consectetur adipiscing elit.`
	z := NewInput(bytes.NewBufferString(s))

	test.T(t, z.Offset(), 0, "offset")
	test.T(t, z.Peek(0), byte('L'), "first character must be 'L'")
	test.T(t, z.Peek(1), byte('o'), "second character must be 'o'")

	z.Move(1)
	test.T(t, z.Peek(0), byte('o'), "must be 'o' at position 1")
	test.T(t, z.Peek(1), byte('r'), "must be 'r' at position 1")
	z.Rewind(6)
	test.T(t, z.Peek(0), byte('i'), "must be 'i' at position 6")
	test.T(t, z.Peek(1), byte('p'), "must be 'p' at position 7")

	test.Bytes(t, z.Lexeme(), []byte("Lorem "), "buffered string must now read 'Lorem ' when at position 6")
	test.Bytes(t, z.Shift(), []byte("Lorem "), "shift must return the buffered string")
	test.T(t, z.Pos(), 0, "after shifting position must be 0")
	test.T(t, z.Start(), 6, "after shifting the start mark must be 6")
	test.T(t, z.Peek(0), byte('i'), "must be 'i' at position 0 after shifting")
	test.T(t, z.Peek(1), byte('p'), "must be 'p' at position 1 after shifting")
	test.T(t, z.Err(), nil, "error must be nil at this point")

	z.Move(len(s) - len("Lorem ") - 1)
	test.T(t, z.Err(), nil, "error must be nil just before the end of the buffer")
	z.Skip()
	test.T(t, z.Pos(), 0, "after skipping position must be 0")
	z.Move(1)
	test.T(t, z.Err(), io.EOF, "error must be EOF when past the buffer")
	test.T(t, z.Peek(0), byte(0), "peeking past the end returns 0")
	z.Move(-1)
	test.T(t, z.Err(), nil, "error must be nil just before the end of the buffer, even when it has been past the buffer")

	z.Seek(12)
	test.T(t, z.Offset(), 12)
	test.T(t, z.Start(), 12)
	z.Seek(1000)
	test.T(t, z.Offset(), len(s))
}

func TestInputReader(t *testing.T) {
	z := NewInput(strings.NewReader("abc"))
	test.T(t, z.Err(), nil)
	test.T(t, z.Peek(2), byte('c'))

	errRead := errors.New("read failed")
	z = NewInput(io.MultiReader(strings.NewReader("ab"), iotest.ErrReader(errRead)))
	test.T(t, z.Err(), errRead)
	test.T(t, z.Peek(1), byte('b'), "bytes read before the error are kept")
}

func TestInputRunes(t *testing.T) {
	z := NewInputString("a\u00eb\u2003")
	r, n := z.PeekRune(0)
	test.T(t, r, 'a')
	test.T(t, n, 1)
	r, n = z.PeekRune(1)
	test.T(t, r, '\u00eb')
	test.T(t, n, 2)
	z.MoveRune()
	z.MoveRune()
	r, n = z.PeekRune(0)
	test.T(t, r, '\u2003')
	test.T(t, n, 3)
	z.MoveRune()
	r, n = z.PeekRune(0)
	test.T(t, n, 0)
	test.T(t, z.Len(), 6)
	test.Bytes(t, z.Bytes(), []byte("a\u00eb\u2003"))
}
