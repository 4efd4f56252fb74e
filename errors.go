package exml

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDocument is returned, wrapped, when the input is not a
// well-formed element tree. The wrapped chain also carries the positioned
// errors.ParseErrors from the tree builder.
var ErrMalformedDocument = errors.New("exml: malformed document")

type malformedError struct {
	err error
}

func (e *malformedError) Error() string { return e.err.Error() }

func (e *malformedError) Is(target error) bool { return target == ErrMalformedDocument }

func (e *malformedError) Unwrap() error { return e.err }

// An UnknownKindError reports an item element whose tag is not one of
// favorite, folder or appwidget.
type UnknownKindError struct {
	Tag    string
	Region string
	Line   int
}

func (e *UnknownKindError) Error() string {
	msg := fmt.Sprintf("exml: unknown item kind <%s>", e.Tag)
	if e.Region != "" {
		msg += " in <" + e.Region + ">"
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	return msg
}

// A ValueError reports an attribute or element value that could not be
// converted to the field's type. Attr is empty when the value came from the
// element's inner text.
type ValueError struct {
	Element string
	Attr    string
	Value   string
	Line    int
	Err     error
}

func (e *ValueError) Error() string {
	where := "<" + e.Element + ">"
	if e.Attr != "" {
		where = "attribute " + e.Attr + " of " + where
	}
	msg := fmt.Sprintf("exml: invalid value %q for %s", e.Value, where)
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ValueError) Unwrap() error { return e.Err }

// A Warning is a non-fatal problem found while decoding. The decoded value
// fell back to its default, or the offending item was skipped.
type Warning struct {
	Err error
}

func (w Warning) Error() string { return w.Err.Error() }

func (w Warning) Unwrap() error { return w.Err }

// Warnings is a slice of Warning that implements the error interface.
type Warnings []Warning

func (ws Warnings) Error() string {
	msgs := make([]string, len(ws))
	for i, w := range ws {
		msgs[i] = w.Error()
	}
	return strings.Join(msgs, "\n")
}
