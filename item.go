package exml

import (
	"fmt"
	"slices"
)

// Kind identifies the variant of an Item.
type Kind int

const (
	// Icon is an application shortcut, tagged <favorite>.
	Icon Kind = iota
	// Folder groups icons under a title, tagged <folder>.
	Folder
	// Widget is a placed app widget, tagged <appwidget>.
	Widget
)

var kindTags = [...]string{
	Icon:   "favorite",
	Folder: "folder",
	Widget: "appwidget",
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindTags)
}

// String returns the element tag of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTags[k]
}

// ParseKind returns the kind for an element tag.
func ParseKind(tag string) (Kind, bool) {
	for k, t := range kindTags {
		if t == tag {
			return Kind(k), true
		}
	}
	return 0, false
}

// Unplaced is the default Screen, X and Y of an item. Positions below zero
// are never written.
const Unplaced = -1

// Item is a unit placed in a region: an icon, a folder or a widget.
// Title and Contents are only meaningful for folders.
type Item struct {
	Kind        Kind
	PackageName string
	ClassName   string
	Title       string
	Screen      int
	X, Y        int
	SpanX       int
	SpanY       int
	AppWidgetID int
	Options     int
	Color       int
	Hidden      bool
	Contents    []Item
}

// NewItem returns an item of the given kind with every field at its default.
func NewItem(kind Kind) Item {
	return Item{
		Kind:   kind,
		Screen: Unplaced,
		X:      Unplaced,
		Y:      Unplaced,
		SpanX:  1,
		SpanY:  1,
		Color:  -1,
	}
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	if it.Contents != nil {
		contents := make([]Item, len(it.Contents))
		for i, c := range it.Contents {
			contents[i] = c.Clone()
		}
		it.Contents = contents
	}
	return it
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Equal reports whether two items have the same fields and contents.
func (it Item) Equal(other Item) bool {
	if it.Kind != other.Kind ||
		it.PackageName != other.PackageName ||
		it.ClassName != other.ClassName ||
		it.Title != other.Title ||
		it.Hidden != other.Hidden {
		return false
	}
	for _, f := range itemIntFields {
		if *f.ptr(&it) != *f.ptr(&other) {
			return false
		}
	}
	return slices.EqualFunc(it.Contents, other.Contents, Item.Equal)
}

// intField is one integer attribute of an item: its default when absent and
// the predicate deciding whether the encoder writes it.
type intField struct {
	name string
	def  int
	keep func(int) bool
	ptr  func(*Item) *int
}

func nonNegative(v int) bool { return v >= 0 }
func spans(v int) bool       { return v > 1 }
func positive(v int) bool    { return v > 0 }
func nonZero(v int) bool     { return v != 0 }
func colorSet(v int) bool    { return v != -1 }

// itemIntFields lists the integer attributes in encode order.
var itemIntFields = []intField{
	{"screen", Unplaced, nonNegative, func(it *Item) *int { return &it.Screen }},
	{"x", Unplaced, nonNegative, func(it *Item) *int { return &it.X }},
	{"y", Unplaced, nonNegative, func(it *Item) *int { return &it.Y }},
	{"spanX", 1, spans, func(it *Item) *int { return &it.SpanX }},
	{"spanY", 1, spans, func(it *Item) *int { return &it.SpanY }},
	{"appWidgetID", 0, positive, func(it *Item) *int { return &it.AppWidgetID }},
	{"options", 0, nonZero, func(it *Item) *int { return &it.Options }},
	{"color", -1, colorSet, func(it *Item) *int { return &it.Color }},
}

const (
	attrTitle       = "title"
	attrPackageName = "packageName"
	attrClassName   = "className"
	attrHidden      = "hidden"
)
