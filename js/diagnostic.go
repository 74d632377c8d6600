package js

import (
	"sort"
	"strconv"

	"github.com/jsfront/parse"
)

// ErrorKind classifies a diagnostic.
type ErrorKind uint8

// ErrorKind values.
const (
	LexError ErrorKind = iota
	SyntaxError
	FatalError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case FatalError:
		return "FatalError"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Diagnostic is an error found while lexing or parsing.
type Diagnostic struct {
	Kind    ErrorKind
	Message string
	Span    parse.Span
}

func (d Diagnostic) Error() string {
	return d.Message + " at " + d.Span.String()
}

// Position converts the diagnostic to an error with line, column, and context.
func (d Diagnostic) Position(src []byte) *parse.Error {
	return parse.NewErrorSpan(src, d.Span, d.Message)
}

// Diagnostics is a list of diagnostics ordered by position.
type Diagnostics []Diagnostic

// Fatal returns the fatal diagnostic, if any.
func (ds Diagnostics) Fatal() (Diagnostic, bool) {
	for _, d := range ds {
		if d.Kind == FatalError {
			return d, true
		}
	}
	return Diagnostic{}, false
}

// Err returns the first diagnostic as a positioned error, or nil.
func (ds Diagnostics) Err(src []byte) error {
	if len(ds) == 0 {
		return nil
	}
	return ds[0].Position(src)
}

func mergeDiagnostics(lexErrs, parseErrs []Diagnostic, fatal *Diagnostic) Diagnostics {
	ds := make(Diagnostics, 0, len(lexErrs)+len(parseErrs)+1)
	ds = append(ds, lexErrs...)
	ds = append(ds, parseErrs...)
	if fatal != nil {
		ds = append(ds, *fatal)
	}
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Span.Start < ds[j].Span.Start
	})
	return ds
}
