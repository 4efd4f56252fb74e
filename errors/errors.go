package errors

import "fmt"

// ParseError represents a single error that occurred while building the
// element tree. Line is 1-based; Column is 0 when the tokenizer does not
// report one.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (p ParseError) Error() string {
	if p.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %s", p.Line, p.Column, p.Message)
	}
	return fmt.Sprintf("line %d: %s", p.Line, p.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	// The collection reports the first error; the tree builder stops there.
	return "exml: parsing error at " + p[0].Error()
}
