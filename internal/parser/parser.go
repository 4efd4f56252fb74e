package parser

import (
	"bytes"
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-exml/ast"
	"github.com/KimNorgaard/go-exml/errors"
)

// DefaultMaxDepth bounds element nesting when New is given a non-positive depth.
const DefaultMaxDepth = 64

// Parser builds an element tree from EXML source.
type Parser struct {
	dec      *xml.Decoder
	maxDepth int
	errors   errors.ParseErrors

	stack []*ast.Element
}

// New creates a new parser over src.
func New(src []byte, maxDepth int) *Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	dec := xml.NewDecoder(bytes.NewReader(src))
	// Backups written by the launcher declare UTF-8; anything else is passed
	// through byte for byte.
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }
	return &Parser{dec: dec, maxDepth: maxDepth}
}

// Errors returns the errors encountered during parsing.
func (p *Parser) Errors() errors.ParseErrors {
	return p.errors
}

// Parse reads the whole input and returns the document. On failure the
// returned document is nil and Errors is non-empty.
func (p *Parser) Parse() *ast.Document {
	doc := &ast.Document{}

	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.syntaxError(err)
			return nil
		}

		switch t := tok.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				doc.Declaration = strings.TrimSpace(string(t.Inst))
			}
		case xml.StartElement:
			if len(p.stack) == 0 && doc.Root != nil {
				p.errorf("multiple root elements: <%s> after <%s>", t.Name.Local, doc.Root.Name)
				return nil
			}
			if len(p.stack) >= p.maxDepth {
				p.errorf("maximum nesting depth %d exceeded at <%s>", p.maxDepth, t.Name.Local)
				return nil
			}
			el := p.startElement(t)
			if len(p.stack) == 0 {
				doc.Root = el
			} else {
				p.top().Append(el)
			}
			p.stack = append(p.stack, el)
		case xml.EndElement:
			el := p.top()
			if len(el.Children) > 0 && strings.TrimSpace(el.Text) == "" {
				el.Text = ""
			}
			p.stack = p.stack[:len(p.stack)-1]
		case xml.CharData:
			if len(p.stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					p.errorf("text outside the root element")
					return nil
				}
				continue
			}
			p.top().Text += string(t)
		}
	}

	if doc.Root == nil {
		p.errorf("document has no root element")
		return nil
	}
	return doc
}

func (p *Parser) startElement(t xml.StartElement) *ast.Element {
	line, _ := p.dec.InputPos()
	el := &ast.Element{Name: t.Name.Local, Line: line}
	for _, a := range t.Attr {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + name
		}
		el.Attrs = append(el.Attrs, ast.Attr{Name: name, Value: a.Value})
	}
	return el
}

func (p *Parser) top() *ast.Element {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) syntaxError(err error) {
	var se *xml.SyntaxError
	if stderrors.As(err, &se) {
		p.errors = append(p.errors, errors.ParseError{Message: se.Msg, Line: se.Line})
		return
	}
	p.errorf("%s", err)
}

func (p *Parser) errorf(format string, args ...any) {
	line, col := p.dec.InputPos()
	p.errors = append(p.errors, errors.ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  col,
	})
}
