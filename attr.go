package exml

import (
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-exml/ast"
)

// readString returns the attribute called name, or def when it is absent.
func readString(el *ast.Element, name, def string) string {
	if v, ok := el.Attr(name); ok {
		return v
	}
	return def
}

// readInt parses the attribute called name as a decimal integer. An absent
// attribute yields def; an unparsable one yields def and a *ValueError.
func readInt(el *ast.Element, name string, def int) (int, error) {
	v, ok := el.Attr(name)
	if !ok {
		return def, nil
	}
	n, err := parseInt(v)
	if err != nil {
		return def, &ValueError{Element: el.Name, Attr: name, Value: v, Line: el.Line, Err: err}
	}
	return n, nil
}

// readBool reports whether the attribute called name is "true" or "1".
// Any other present value is false; an absent attribute yields def.
func readBool(el *ast.Element, name string, def bool) bool {
	v, ok := el.Attr(name)
	if !ok {
		return def
	}
	return v == "true" || v == "1"
}

func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 0)
	if err != nil {
		// Drop the strconv prefix; ValueError already names the input.
		if ne, ok := err.(*strconv.NumError); ok {
			return 0, ne.Err
		}
		return 0, err
	}
	return int(n), nil
}

// writeString sets the attribute only when v is non-empty.
func writeString(el *ast.Element, name, v string) {
	if v != "" {
		el.SetAttr(name, v)
	}
}

// writeInt sets the attribute only when keep accepts v.
func writeInt(el *ast.Element, name string, v int, keep func(int) bool) {
	if keep(v) {
		el.SetAttr(name, strconv.Itoa(v))
	}
}

// writeFlag sets the attribute to "1" when v is true and omits it otherwise.
func writeFlag(el *ast.Element, name string, v bool) {
	if v {
		el.SetAttr(name, "1")
	}
}

// textElement returns a child element carrying text as its content.
func textElement(name, text string) *ast.Element {
	el := ast.NewElement(name)
	el.SetText(text)
	return el
}
