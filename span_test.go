package parse

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSpan(t *testing.T) {
	a := NewSpan(2, 5)
	b := NewSpan(3, 4)
	test.T(t, a.Len(), 3)
	test.T(t, a.Contains(b), true)
	test.T(t, b.Contains(a), false)
	test.T(t, a.Contains(a), true)
	test.T(t, b.Merge(NewSpan(7, 9)), NewSpan(3, 9))
	test.T(t, NewSpan(4, 4).Empty(), true)
	test.T(t, a.Loc(), a)
	test.String(t, a.String(), "[2,5)")
	test.Bytes(t, a.Text([]byte("abcdef")), []byte("cde"))
	test.Bytes(t, NewSpan(4, 10).Text([]byte("abcdef")), []byte("ef"))
}
