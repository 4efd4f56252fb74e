package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Field describes one tagged struct field.
type Field struct {
	// Name is the external element name.
	Name      string
	Index     []int
	Kind      reflect.Kind
	OmitEmpty bool
}

// fieldCache caches the ordered field list for a given struct type.
var fieldCache sync.Map

// Fields returns the exported fields of struct type t in declaration order,
// named by their `exml` tag. Untagged fields use the Go field name; fields
// tagged "-" and unexported fields are skipped. The result is cached per type
// and must not be modified.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("exml")
		if tag == "-" {
			continue
		}

		f := Field{Index: sf.Index, Kind: sf.Type.Kind()}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			f.Name = name
		} else {
			f.Name = sf.Name
		}

		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			if opt == "omitempty" {
				f.OmitEmpty = true
			}
		}
		fields = append(fields, f)
	}

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]Field)
}
