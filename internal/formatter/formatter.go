package formatter

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-exml/ast"
)

const (
	defaultIndent = 2
)

// Formatter writes an element tree to an output stream.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
}

// New returns a new formatter that writes to w. A nil indentSpaces selects
// the default indentation; zero produces compact output on a single line.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes the markup representation of node to the writer.
func (f *Formatter) Format(node ast.Node) error {
	return f.writeNode(node)
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeEscaped(s string) error {
	return xml.EscapeText(f.w, []byte(s))
}

func (f *Formatter) newline() error {
	if f.indent == "" {
		return nil
	}
	return f.write("\n")
}

func (f *Formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	for i := 0; i < f.depth; i++ {
		if err := f.write(f.indent); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Document:
		if n.Declaration != "" {
			if err := f.write("<?xml " + n.Declaration + "?>"); err != nil {
				return err
			}
			if err := f.newline(); err != nil {
				return err
			}
		}
		if n.Root == nil {
			return nil
		}
		if err := f.writeElement(n.Root); err != nil {
			return err
		}
		return f.newline()

	case *ast.Element:
		return f.writeElement(n)

	default:
		return fmt.Errorf("exml: unsupported node type for formatting: %T", n)
	}
}

func (f *Formatter) writeElement(el *ast.Element) error {
	if err := f.writeIndent(); err != nil {
		return err
	}
	if err := f.write("<" + el.Name); err != nil {
		return err
	}
	for _, a := range el.Attrs {
		if err := f.write(" " + a.Name + `="`); err != nil {
			return err
		}
		if err := f.writeEscaped(a.Value); err != nil {
			return err
		}
		if err := f.write(`"`); err != nil {
			return err
		}
	}

	if el.Text == "" && len(el.Children) == 0 {
		return f.write("/>")
	}
	if err := f.write(">"); err != nil {
		return err
	}
	if err := f.writeEscaped(el.Text); err != nil {
		return err
	}

	if len(el.Children) > 0 {
		f.depth++
		for _, c := range el.Children {
			if err := f.newline(); err != nil {
				return err
			}
			if err := f.writeElement(c); err != nil {
				return err
			}
		}
		f.depth--
		if err := f.newline(); err != nil {
			return err
		}
		if err := f.writeIndent(); err != nil {
			return err
		}
	}
	return f.write("</" + el.Name + ">")
}
