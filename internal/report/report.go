// Package report summarizes launcher backups for people: item counts per
// region, the layout grid, and where a given package is placed.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KimNorgaard/go-exml"
)

// RegionSummary counts the items of one region.
type RegionSummary struct {
	Name    string `json:"name" yaml:"name"`
	Items   int    `json:"items" yaml:"items"`
	Pages   []int  `json:"pages,omitempty" yaml:"pages,omitempty"`
	Icons   int    `json:"icons" yaml:"icons"`
	Folders int    `json:"folders" yaml:"folders"`
	Widgets int    `json:"widgets" yaml:"widgets"`
	Hidden  int    `json:"hidden" yaml:"hidden"`
	// Nested counts the icons held inside folders.
	Nested int `json:"nested" yaml:"nested"`
}

// Summary describes a whole document.
type Summary struct {
	Rows      int             `json:"rows" yaml:"rows"`
	Columns   int             `json:"columns" yaml:"columns"`
	PageCount int             `json:"pageCount" yaml:"pageCount"`
	Category  string          `json:"category,omitempty" yaml:"category,omitempty"`
	Regions   []RegionSummary `json:"regions" yaml:"regions"`
}

// Total returns the number of top-level items across all regions.
func (s Summary) Total() int {
	n := 0
	for _, r := range s.Regions {
		n += r.Items
	}
	return n
}

// Summarize counts the items of every region in encoding order.
func Summarize(doc *exml.Document) Summary {
	cfg := doc.Layout()
	s := Summary{
		Rows:      cfg.Rows,
		Columns:   cfg.Columns,
		PageCount: cfg.PageCount,
		Category:  cfg.Category,
	}
	for _, name := range exml.Regions {
		rs := RegionSummary{Name: name}
		if paged := doc.Paged(name); paged != nil {
			rs.Pages = paged.Pages()
			paged.Each(func(_ int, it exml.Item) bool {
				rs.count(it)
				return true
			})
		} else {
			for _, it := range doc.List(name).Items() {
				rs.count(it)
			}
		}
		s.Regions = append(s.Regions, rs)
	}
	return s
}

func (rs *RegionSummary) count(it exml.Item) {
	rs.Items++
	switch it.Kind {
	case exml.Icon:
		rs.Icons++
	case exml.Folder:
		rs.Folders++
		rs.Nested += len(it.Contents)
	case exml.Widget:
		rs.Widgets++
	}
	if it.Hidden {
		rs.Hidden++
	}
}

// Location is where an item sits in a document. Page is only meaningful for
// page-keyed regions; Folder is the title of the enclosing folder when the
// match is nested.
type Location struct {
	Region string    `json:"region" yaml:"region"`
	Paged  bool      `json:"paged" yaml:"paged"`
	Page   int       `json:"page" yaml:"page"`
	Index  int       `json:"index" yaml:"index"`
	Folder string    `json:"folder,omitempty" yaml:"folder,omitempty"`
	Item   exml.Item `json:"-" yaml:"-"`
}

func (l Location) String() string {
	var b strings.Builder
	b.WriteString(l.Region)
	if l.Paged {
		fmt.Fprintf(&b, " page %d", l.Page)
	}
	fmt.Fprintf(&b, " #%d", l.Index)
	if l.Folder != "" {
		fmt.Fprintf(&b, " in folder %q", l.Folder)
	}
	return b.String()
}

// Locate returns every placement of packageName, including icons nested in
// folders, in region order and then page-then-position order.
func Locate(doc *exml.Document, packageName string) []Location {
	var out []Location
	match := func(loc Location, it exml.Item) {
		if it.PackageName == packageName {
			loc.Item = it
			out = append(out, loc)
		}
		if it.Kind != exml.Folder {
			return
		}
		for _, c := range it.Contents {
			if c.PackageName == packageName {
				nested := loc
				nested.Folder = it.Title
				nested.Item = c
				out = append(out, nested)
			}
		}
	}

	for _, name := range exml.Regions {
		if paged := doc.Paged(name); paged != nil {
			for _, page := range paged.Pages() {
				for i, it := range paged.Items(page) {
					match(Location{Region: name, Paged: true, Page: page, Index: i}, it)
				}
			}
			continue
		}
		for i, it := range doc.List(name).Items() {
			match(Location{Region: name, Index: i}, it)
		}
	}
	return out
}

// Write prints a human readable summary of doc to w.
func Write(w io.Writer, doc *exml.Document) error {
	s := Summarize(doc)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "grid\t%dx%d\n", s.Columns, s.Rows)
	fmt.Fprintf(tw, "pages\t%d\n", s.PageCount)
	if s.Category != "" {
		fmt.Fprintf(tw, "category\t%s\n", s.Category)
	}
	fmt.Fprintf(tw, "items\t%d\n", s.Total())
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "REGION\tITEMS\tICONS\tFOLDERS\tWIDGETS\tHIDDEN\tPAGES")
	for _, r := range s.Regions {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.Name, r.Items, r.Icons, r.Folders, r.Widgets, r.Hidden, pageList(r))
	}
	return tw.Flush()
}

func pageList(r RegionSummary) string {
	if r.Pages == nil {
		return "-"
	}
	parts := make([]string, len(r.Pages))
	for i, p := range r.Pages {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ",")
}
