package js

import (
	"reflect"
	"unsafe"
)

const (
	minChunkSize = 16
	maxChunkSize = 1024
)

// slab hands out pointers into chunks of T. A full chunk is replaced rather than grown, so earlier pointers stay valid.
type slab[T any] struct {
	chunk []T
	n     int
}

func (s *slab[T]) alloc() *T {
	if len(s.chunk) == cap(s.chunk) {
		size := 2 * cap(s.chunk)
		if size < minChunkSize {
			size = minChunkSize
		} else if maxChunkSize < size {
			size = maxChunkSize
		}
		s.chunk = make([]T, 0, size)
	}
	s.chunk = s.chunk[:len(s.chunk)+1]
	s.n++
	return &s.chunk[len(s.chunk)-1]
}

// Arena owns the nodes of one parse. Nodes are never freed individually; they live as long as the arena is reachable.
type Arena struct {
	slabs map[reflect.Type]interface{}
	nodes int
	bytes uintptr
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{slabs: map[reflect.Type]interface{}{}}
}

// Alloc moves v into the arena and returns its stable address.
func Alloc[T any](a *Arena, v T) *T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	s, ok := a.slabs[t].(*slab[T])
	if !ok {
		s = &slab[T]{}
		a.slabs[t] = s
	}
	n := s.alloc()
	*n = v
	a.nodes++
	a.bytes += unsafe.Sizeof(v)
	return n
}

// Stats returns the number of allocated nodes and their total size in bytes, excluding child slices.
func (a *Arena) Stats() (nodes int, bytes uint64) {
	return a.nodes, uint64(a.bytes)
}
