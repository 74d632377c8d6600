// Package parse contains the source primitives shared by the parsers in its subpackages: spans, input buffers, positions and errors.
package parse

import "strconv"

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan returns the span [start, end).
func NewSpan(start, end int) Span {
	return Span{uint32(start), uint32(end)}
}

// Loc returns the span itself so that types embedding a Span satisfy interfaces asking for their location.
func (s Span) Loc() Span {
	return s
}

// Len returns the number of bytes covered.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// Empty returns true for zero-width spans.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Contains returns true if o lies within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Merge returns the smallest span covering both s and o.
func (s Span) Merge(o Span) Span {
	if o.Start < s.Start {
		s.Start = o.Start
	}
	if s.End < o.End {
		s.End = o.End
	}
	return s
}

// Text returns the source bytes the span covers, clamped to src.
func (s Span) Text(src []byte) []byte {
	start, end := int(s.Start), int(s.End)
	if len(src) < end {
		end = len(src)
	}
	if end < start {
		return nil
	}
	return src[start:end]
}

func (s Span) String() string {
	return "[" + strconv.Itoa(int(s.Start)) + "," + strconv.Itoa(int(s.End)) + ")"
}
