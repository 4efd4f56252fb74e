package exml

import (
	"maps"
	"slices"
)

// PagedRegion is a region whose items are grouped by page index, such as the
// home screen. Items keep their insertion order within a page. A page that
// loses its last item is removed.
//
// Items are copied on the way in and out; callers never share storage with
// the region. Stored items always carry their page index in Screen. A page
// below zero is kept in memory, but Screen is not written for it, so it
// decodes back as page Unplaced.
//
// The zero value is an empty region ready to use.
type PagedRegion struct {
	pages map[int][]Item
}

// PageCount returns the number of pages holding at least one item.
func (r *PagedRegion) PageCount() int {
	return len(r.pages)
}

// Pages returns the page indexes in ascending order.
func (r *PagedRegion) Pages() []int {
	return slices.Sorted(maps.Keys(r.pages))
}

// Len returns the number of items across all pages.
func (r *PagedRegion) Len() int {
	n := 0
	for _, items := range r.pages {
		n += len(items)
	}
	return n
}

// Items returns a copy of the items on page, or nil if the page is absent.
func (r *PagedRegion) Items(page int) []Item {
	items, ok := r.pages[page]
	if !ok {
		return nil
	}
	return cloneItems(items)
}

// Add appends item to page, creating the page if needed.
func (r *PagedRegion) Add(page int, item Item) {
	item = item.Clone()
	item.Screen = page
	if r.pages == nil {
		r.pages = make(map[int][]Item)
	}
	r.pages[page] = append(r.pages[page], item)
}

// Remove deletes the first item on page matching packageName and className.
// It reports whether an item was removed.
func (r *PagedRegion) Remove(page int, packageName, className string) bool {
	items, ok := r.pages[page]
	if !ok {
		return false
	}
	i := indexOf(items, packageName, className)
	if i < 0 {
		return false
	}
	r.set(page, slices.Delete(items, i, i+1))
	return true
}

// Move takes the item at fromIndex on fromPage and inserts it at toIndex on
// toPage. toIndex is clamped to the destination's bounds and a missing
// destination page is created. Move reports false, changing nothing, when
// fromPage is absent or fromIndex is out of range.
func (r *PagedRegion) Move(fromPage, fromIndex, toPage, toIndex int) bool {
	items, ok := r.pages[fromPage]
	if !ok || fromIndex < 0 || fromIndex >= len(items) {
		return false
	}
	item := items[fromIndex]
	r.set(fromPage, slices.Delete(items, fromIndex, fromIndex+1))

	item.Screen = toPage
	dst := r.pages[toPage]
	r.pages[toPage] = slices.Insert(dst, clamp(toIndex, len(dst)), item)
	return true
}

// Find returns copies of all items with the given package name, in
// ascending page order and then by position.
func (r *PagedRegion) Find(packageName string) []Item {
	var out []Item
	for _, page := range r.Pages() {
		out = appendMatches(out, r.pages[page], packageName)
	}
	return out
}

// Each calls fn for every item in page-then-position order until fn returns
// false. The item passed to fn is a copy.
func (r *PagedRegion) Each(fn func(page int, item Item) bool) {
	for _, page := range r.Pages() {
		for _, it := range r.pages[page] {
			if !fn(page, it.Clone()) {
				return
			}
		}
	}
}

func (r *PagedRegion) set(page int, items []Item) {
	if len(items) == 0 {
		delete(r.pages, page)
		return
	}
	r.pages[page] = items
}

func (r *PagedRegion) clear() {
	clear(r.pages)
}

// ListRegion is a region holding a single ordered sequence, such as the
// hotseat. Items are copied on the way in and out.
type ListRegion struct {
	items []Item
}

// Count returns the number of items.
func (r *ListRegion) Count() int {
	return len(r.items)
}

// Items returns a copy of the items in order.
func (r *ListRegion) Items() []Item {
	return cloneItems(r.items)
}

// Add appends item.
func (r *ListRegion) Add(item Item) {
	r.items = append(r.items, item.Clone())
}

// Remove deletes the first item matching packageName and className. It
// reports whether an item was removed.
func (r *ListRegion) Remove(packageName, className string) bool {
	i := indexOf(r.items, packageName, className)
	if i < 0 {
		return false
	}
	r.items = slices.Delete(r.items, i, i+1)
	return true
}

// Move takes the item at fromIndex and reinserts it at toIndex, clamped to
// the bounds of the remaining sequence. It reports false, changing nothing,
// when fromIndex is out of range.
func (r *ListRegion) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(r.items) {
		return false
	}
	item := r.items[fromIndex]
	r.items = slices.Delete(r.items, fromIndex, fromIndex+1)
	r.items = slices.Insert(r.items, clamp(toIndex, len(r.items)), item)
	return true
}

// Find returns copies of all items with the given package name, in order.
func (r *ListRegion) Find(packageName string) []Item {
	return appendMatches(nil, r.items, packageName)
}

func (r *ListRegion) clear() {
	r.items = nil
}

func indexOf(items []Item, packageName, className string) int {
	return slices.IndexFunc(items, func(it Item) bool {
		return it.PackageName == packageName && it.ClassName == className
	})
}

func appendMatches(out, items []Item, packageName string) []Item {
	for _, it := range items {
		if it.PackageName == packageName {
			out = append(out, it.Clone())
		}
	}
	return out
}

func clamp(i, n int) int {
	return max(0, min(i, n))
}
