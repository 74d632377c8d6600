package parse

import (
	"fmt"
)

// Error is a parsing error returned by parser. It contains a message and the position at which the error occurred.
type Error struct {
	Message string
	Offset  int
	Line    int
	Column  int
	Context string
}

// NewError creates a new error for the given offset into src.
func NewError(src []byte, offset int, message string, a ...interface{}) *Error {
	line, column, context := Position(src, offset)
	if 0 < len(a) {
		message = fmt.Sprintf(message, a...)
	}
	return &Error{
		Message: message,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Context: context,
	}
}

// NewErrorSpan creates a new error at the start of the span.
func NewErrorSpan(src []byte, span Span, message string, a ...interface{}) *Error {
	return NewError(src, int(span.Start), message, a...)
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}
