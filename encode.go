package exml

import (
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/KimNorgaard/go-exml/ast"
	"github.com/KimNorgaard/go-exml/internal/formatter"
	"github.com/KimNorgaard/go-exml/internal/mapper"
)

// Encoder writes launcher backups to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the encoding of doc to the stream.
func (e *Encoder) Encode(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("exml: Encode(nil document)")
	}
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	root, err := encodeDocument(doc, o.rootName)
	if err != nil {
		return err
	}
	tree := &ast.Document{Root: root}
	if !o.omitDeclaration {
		tree.Declaration = defaultDeclaration
	}
	return formatter.New(e.w, o.indent).Format(tree)
}

// encodeDocument builds the root element: layout settings first, then every
// non-empty region in Regions order. Nothing is returned if any item has an
// unknown kind.
func encodeDocument(doc *Document, rootName string) (*ast.Element, error) {
	root := ast.NewElement(rootName)
	encodeLayout(root, doc.layout)

	for _, name := range Regions {
		if doc.Len(name) == 0 {
			continue
		}
		container := ast.NewElement(name)
		var items []Item
		if paged := doc.Paged(name); paged != nil {
			for _, page := range paged.Pages() {
				items = append(items, paged.pages[page]...)
			}
		} else {
			items = doc.List(name).items
		}
		for _, it := range items {
			el, err := encodeItem(it)
			if err != nil {
				return nil, fmt.Errorf("%w in <%s>", err, name)
			}
			container.Append(el)
		}
		root.Append(container)
	}
	return root, nil
}

// encodeItem builds the element for it, eliding every attribute that holds
// its default value.
func encodeItem(it Item) (*ast.Element, error) {
	if !it.Kind.Valid() {
		return nil, fmt.Errorf("exml: cannot encode item of kind %d", int(it.Kind))
	}
	el := ast.NewElement(it.Kind.String())
	if it.Kind == Folder {
		writeString(el, attrTitle, it.Title)
	}
	writeString(el, attrPackageName, it.PackageName)
	writeString(el, attrClassName, it.ClassName)
	for _, f := range itemIntFields {
		writeInt(el, f.name, *f.ptr(&it), f.keep)
	}
	writeFlag(el, attrHidden, it.Hidden)

	if it.Kind == Folder {
		for _, c := range it.Contents {
			child, err := encodeItem(c)
			if err != nil {
				return nil, err
			}
			el.Append(child)
		}
	}
	return el, nil
}

// encodeLayout appends one element per setting to root. Text settings are
// skipped when empty; numbers and booleans are always written.
func encodeLayout(root *ast.Element, cfg LayoutConfig) {
	rv := reflect.ValueOf(cfg)
	for _, f := range mapper.Fields(rv.Type()) {
		fv := rv.FieldByIndex(f.Index)
		var text string
		switch f.Kind {
		case reflect.String:
			text = fv.String()
			if f.OmitEmpty && text == "" {
				continue
			}
		case reflect.Int:
			text = strconv.FormatInt(fv.Int(), 10)
		case reflect.Bool:
			text = strconv.FormatBool(fv.Bool())
		default:
			continue
		}
		root.Append(textElement(f.Name, text))
	}
}
