package exml

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	"github.com/KimNorgaard/go-exml/ast"
	"github.com/KimNorgaard/go-exml/internal/mapper"
	"github.com/KimNorgaard/go-exml/internal/parser"
)

// Decoder reads and decodes a launcher backup from an input stream.
type Decoder struct {
	r        io.Reader
	opts     []Option
	warnings Warnings
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the decoding process,
// such as failing on malformed values with StrictValues.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Warnings returns the non-fatal problems found by the last call to Decode.
func (d *Decoder) Warnings() Warnings {
	return d.warnings
}

// Decode reads the whole input and returns the decoded document.
//
// If the input is not a well-formed element tree, Decode returns an error
// matching ErrMalformedDocument and no document. Malformed values and items of
// unknown kind are recorded as warnings unless the corresponding strict option
// is set, in which case the first one aborts the decode.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() (*Document, error) {
	d.warnings = nil
	if d.r == nil {
		return nil, fmt.Errorf("exml: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}

	p := parser.New(data, o.maxDepth)
	tree := p.Parse()
	if tree == nil {
		return nil, &malformedError{err: p.Errors()}
	}

	ds := &decodeState{opts: o}
	doc, err := ds.decodeDocument(tree.Root)
	d.warnings = ds.warnings
	if err != nil {
		return nil, err
	}
	return doc, nil
}

type decodeState struct {
	opts     *options
	warnings Warnings
}

// warn records err as a warning, or returns it when strict is set.
func (ds *decodeState) warn(err error, strict bool) error {
	if strict {
		return err
	}
	ds.warnings = append(ds.warnings, Warning{Err: err})
	if ds.opts.logger != nil {
		ds.opts.logger.Warn("exml: decode warning", slog.Any("err", err))
	}
	return nil
}

func (ds *decodeState) badValue(err error) error {
	return ds.warn(err, ds.opts.strictValues)
}

func (ds *decodeState) decodeDocument(root *ast.Element) (*Document, error) {
	doc := New()
	if err := ds.decodeLayout(root, &doc.layout); err != nil {
		return nil, err
	}

	for _, name := range Regions {
		container := root.Child(name)
		if container == nil {
			continue
		}
		items, err := ds.decodeRegion(container)
		if err != nil {
			return nil, err
		}
		if paged := doc.Paged(name); paged != nil {
			for _, it := range items {
				paged.Add(it.Screen, it)
			}
			continue
		}
		list := doc.List(name)
		for _, it := range items {
			list.Add(it)
		}
	}
	return doc, nil
}

func (ds *decodeState) decodeRegion(container *ast.Element) ([]Item, error) {
	items := make([]Item, 0, len(container.Elements()))
	for _, el := range container.Elements() {
		it, err := ds.decodeItem(el)
		if err != nil {
			var uk *UnknownKindError
			if errors.As(err, &uk) {
				uk.Region = container.Name
				if werr := ds.warn(uk, ds.opts.disallowKinds); werr != nil {
					return nil, werr
				}
				continue
			}
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// decodeItem maps one item element, and for folders their nested icons.
func (ds *decodeState) decodeItem(el *ast.Element) (Item, error) {
	kind, ok := ParseKind(el.Name)
	if !ok {
		return Item{}, &UnknownKindError{Tag: el.Name, Line: el.Line}
	}

	it := NewItem(kind)
	it.PackageName = readString(el, attrPackageName, "")
	it.ClassName = readString(el, attrClassName, "")
	for _, f := range itemIntFields {
		v, err := readInt(el, f.name, f.def)
		if err != nil {
			if werr := ds.badValue(err); werr != nil {
				return Item{}, werr
			}
		}
		*f.ptr(&it) = v
	}
	it.Hidden = readBool(el, attrHidden, false)

	if kind == Folder {
		it.Title = readString(el, attrTitle, "")
		for _, child := range el.ChildrenNamed(Icon.String()) {
			c, err := ds.decodeItem(child)
			if err != nil {
				return Item{}, err
			}
			it.Contents = append(it.Contents, c)
		}
	}
	return it, nil
}

// decodeLayout overwrites the fields of cfg whose element is present under
// root. Numeric and boolean fields prefer a value attribute and fall back to
// the trimmed inner text.
func (ds *decodeState) decodeLayout(root *ast.Element, cfg *LayoutConfig) error {
	rv := reflect.ValueOf(cfg).Elem()
	for _, f := range mapper.Fields(rv.Type()) {
		el := root.Child(f.Name)
		if el == nil {
			continue
		}
		fv := rv.FieldByIndex(f.Index)

		if f.Kind == reflect.String {
			fv.SetString(el.Text)
			continue
		}

		raw, fromAttr, ok := scalarValue(el)
		if !ok {
			continue
		}
		switch f.Kind {
		case reflect.Int:
			n, err := parseInt(raw)
			if err != nil {
				verr := &ValueError{Element: el.Name, Value: raw, Line: el.Line, Err: err}
				if fromAttr {
					verr.Attr = attrValue
				}
				if werr := ds.badValue(verr); werr != nil {
					return werr
				}
				continue
			}
			fv.SetInt(int64(n))
		case reflect.Bool:
			if fromAttr {
				fv.SetBool(readBool(el, attrValue, fv.Bool()))
			} else {
				fv.SetBool(raw == "true")
			}
		}
	}
	return nil
}

const attrValue = "value"

// scalarValue returns the value carried by a setting element, either as a
// value attribute or as trimmed text. ok is false for an empty element.
func scalarValue(el *ast.Element) (raw string, fromAttr, ok bool) {
	if v, found := el.Attr(attrValue); found {
		return v, true, true
	}
	text := strings.TrimSpace(el.Text)
	if text == "" {
		return "", false, false
	}
	return text, false, true
}
