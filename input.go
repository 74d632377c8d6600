package parse

import (
	"io"
	"unicode/utf8"
)

// Input is a cursor over an in-memory source buffer. A lexeme runs from the start mark to the current position; Peek and Move are relative to the position, Offset and Start are absolute.
type Input struct {
	buf   []byte
	err   error
	pos   int
	start int
}

// NewInput reads all of r into a new Input. A read error other than io.EOF is returned by Err.
func NewInput(r io.Reader) *Input {
	if fr, ok := r.(interface {
		Bytes() []byte
	}); ok {
		return &Input{buf: fr.Bytes()}
	}
	b, err := io.ReadAll(r)
	return &Input{buf: b, err: err}
}

// NewInputBytes returns a new Input for b. The bytes are not copied.
func NewInputBytes(b []byte) *Input {
	return &Input{buf: b}
}

// NewInputString returns a new Input for s.
func NewInputString(s string) *Input {
	return &Input{buf: []byte(s)}
}

// Err returns the read error, or io.EOF once the position has reached the end of the buffer.
func (z *Input) Err() error {
	if z.err != nil {
		return z.err
	} else if len(z.buf) <= z.pos {
		return io.EOF
	}
	return nil
}

// Peek returns the byte at position pos+i, or 0 when that is out of range.
func (z *Input) Peek(i int) byte {
	if i += z.pos; 0 <= i && i < len(z.buf) {
		return z.buf[i]
	}
	return 0
}

// PeekRune returns the rune and its width at position pos+i.
func (z *Input) PeekRune(i int) (rune, int) {
	i += z.pos
	if len(z.buf) <= i {
		return 0, 0
	}
	c := z.buf[i]
	if c < 0xC0 {
		return rune(c), 1
	}
	return utf8.DecodeRune(z.buf[i:])
}

// Move advances the position by n bytes.
func (z *Input) Move(n int) {
	z.pos += n
}

// MoveRune advances the position by one rune.
func (z *Input) MoveRune() {
	_, n := z.PeekRune(0)
	if n == 0 {
		n = 1
	}
	z.pos += n
}

// Pos returns the position relative to the start mark.
func (z *Input) Pos() int {
	return z.pos - z.start
}

// Rewind sets the position relative to the start mark.
func (z *Input) Rewind(pos int) {
	z.pos = z.start + pos
}

// Offset returns the absolute position.
func (z *Input) Offset() int {
	return z.pos
}

// Start returns the absolute position of the start mark.
func (z *Input) Start() int {
	return z.start
}

// Seek moves both the start mark and the position to the absolute offset.
func (z *Input) Seek(offset int) {
	if offset < 0 {
		offset = 0
	} else if len(z.buf) < offset {
		offset = len(z.buf)
	}
	z.pos = offset
	z.start = offset
}

// Lexeme returns the bytes between the start mark and the position.
func (z *Input) Lexeme() []byte {
	end := z.pos
	if len(z.buf) < end {
		end = len(z.buf)
	}
	return z.buf[z.start:end:end]
}

// Skip sets the start mark to the position.
func (z *Input) Skip() {
	z.start = z.pos
}

// Shift returns the lexeme and sets the start mark to the position.
func (z *Input) Shift() []byte {
	b := z.Lexeme()
	z.start = z.pos
	return b
}

// Len returns the length of the underlying buffer.
func (z *Input) Len() int {
	return len(z.buf)
}

// Bytes returns the underlying buffer.
func (z *Input) Bytes() []byte {
	return z.buf
}
