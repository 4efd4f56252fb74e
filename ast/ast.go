package ast

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Node is the base interface for all tree nodes.
type Node interface {
	// String returns a compact markup representation of the node.
	String() string
}

// Document is the root node of a parsed EXML file.
type Document struct {
	// Declaration holds the raw XML declaration instruction, if any.
	Declaration string
	Root        *Element
}

// String returns a string representation of the node.
func (d *Document) String() string {
	var out bytes.Buffer
	if d.Declaration != "" {
		out.WriteString("<?xml " + d.Declaration + "?>")
	}
	if d.Root != nil {
		out.WriteString(d.Root.String())
	}
	return out.String()
}

// Attr is a single name="value" pair on an element.
type Attr struct {
	Name  string
	Value string
}

// Element is an attributed node with ordered children.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
	// Line is the 1-based source line of the start tag, 0 for built elements.
	Line int
}

// NewElement returns an empty element named name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Attr returns the value of the attribute called name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the attribute called name, replacing an existing value.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// SetText replaces the inner text of the element.
func (e *Element) SetText(text string) {
	e.Text = text
}

// Append adds child as the last child element.
func (e *Element) Append(child *Element) {
	e.Children = append(e.Children, child)
}

// Child returns the first direct child called name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct children called name in document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Elements returns all direct children in document order.
func (e *Element) Elements() []*Element {
	return e.Children
}

// String returns a compact markup representation of the element.
func (e *Element) String() string {
	var out bytes.Buffer
	out.WriteString("<" + e.Name)
	for _, a := range e.Attrs {
		out.WriteString(" " + a.Name + `="` + escape(a.Value) + `"`)
	}
	if e.Text == "" && len(e.Children) == 0 {
		out.WriteString("/>")
		return out.String()
	}
	out.WriteString(">")
	out.WriteString(escape(e.Text))
	for _, c := range e.Children {
		out.WriteString(c.String())
	}
	out.WriteString("</" + e.Name + ">")
	return out.String()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
