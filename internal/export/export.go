// Package export converts launcher backups to and from JSON, YAML and
// MessagePack snapshots.
//
// A snapshot carries every item field explicitly, defaults included, so it
// can be imported back into an identical document.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-exml"
)

// Format names a snapshot encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, MsgPack}

// ParseFormat returns the format called s, case-insensitively. "yml" is
// accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mpk":
		return MsgPack, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// ContentType returns the media type for f.
func (f Format) ContentType() string {
	switch f {
	case JSON:
		return "application/json"
	case YAML:
		return "application/yaml"
	case MsgPack:
		return "application/msgpack"
	}
	return "application/octet-stream"
}

// Item is the snapshot form of an exml.Item.
type Item struct {
	Kind        string `json:"kind" yaml:"kind" msgpack:"kind"`
	PackageName string `json:"packageName,omitempty" yaml:"packageName,omitempty" msgpack:"packageName,omitempty"`
	ClassName   string `json:"className,omitempty" yaml:"className,omitempty" msgpack:"className,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty" msgpack:"title,omitempty"`
	Screen      int    `json:"screen" yaml:"screen" msgpack:"screen"`
	X           int    `json:"x" yaml:"x" msgpack:"x"`
	Y           int    `json:"y" yaml:"y" msgpack:"y"`
	SpanX       int    `json:"spanX" yaml:"spanX" msgpack:"spanX"`
	SpanY       int    `json:"spanY" yaml:"spanY" msgpack:"spanY"`
	AppWidgetID int    `json:"appWidgetID" yaml:"appWidgetID" msgpack:"appWidgetID"`
	Options     int    `json:"options" yaml:"options" msgpack:"options"`
	Color       int    `json:"color" yaml:"color" msgpack:"color"`
	Hidden      bool   `json:"hidden" yaml:"hidden" msgpack:"hidden"`
	Contents    []Item `json:"contents,omitempty" yaml:"contents,omitempty" msgpack:"contents,omitempty"`
}

// Page is one page of a page-keyed region.
type Page struct {
	Index int    `json:"index" yaml:"index" msgpack:"index"`
	Items []Item `json:"items" yaml:"items" msgpack:"items"`
}

// Layout is the snapshot form of exml.LayoutConfig.
type Layout struct {
	Category                 string `json:"category,omitempty" yaml:"category,omitempty" msgpack:"category,omitempty"`
	FolderGrid               string `json:"folderGrid,omitempty" yaml:"folderGrid,omitempty" msgpack:"folderGrid,omitempty"`
	RestoreMaxSizeGrid       bool   `json:"restoreMaxSizeGrid" yaml:"restoreMaxSizeGrid" msgpack:"restoreMaxSizeGrid"`
	ZeroPageContents         string `json:"zeroPageContents,omitempty" yaml:"zeroPageContents,omitempty" msgpack:"zeroPageContents,omitempty"`
	SelectedMinusonePackage  string `json:"selectedMinusonePackage,omitempty" yaml:"selectedMinusonePackage,omitempty" msgpack:"selectedMinusonePackage,omitempty"`
	ZeroPage                 bool   `json:"zeroPage" yaml:"zeroPage" msgpack:"zeroPage"`
	NotificationPanelSetting bool   `json:"notificationPanelSetting" yaml:"notificationPanelSetting" msgpack:"notificationPanelSetting"`
	LockLayoutSetting        bool   `json:"lockLayoutSetting" yaml:"lockLayoutSetting" msgpack:"lockLayoutSetting"`
	QuickAccessFinder        bool   `json:"quickAccessFinder" yaml:"quickAccessFinder" msgpack:"quickAccessFinder"`
	BadgeOnOffSetting        int    `json:"badgeOnOffSetting" yaml:"badgeOnOffSetting" msgpack:"badgeOnOffSetting"`
	OnlyPortraitModeSetting  bool   `json:"onlyPortraitModeSetting" yaml:"onlyPortraitModeSetting" msgpack:"onlyPortraitModeSetting"`
	AddIconToHomeSetting     bool   `json:"addIconToHomeSetting" yaml:"addIconToHomeSetting" msgpack:"addIconToHomeSetting"`
	SuggestedApps            bool   `json:"suggestedApps" yaml:"suggestedApps" msgpack:"suggestedApps"`
	ExpandHotseatSize        int    `json:"expandHotseatSize" yaml:"expandHotseatSize" msgpack:"expandHotseatSize"`
	HomeGridList             string `json:"homeGridList,omitempty" yaml:"homeGridList,omitempty" msgpack:"homeGridList,omitempty"`
	AppsGridList             string `json:"appsGridList,omitempty" yaml:"appsGridList,omitempty" msgpack:"appsGridList,omitempty"`
	ViewTypeAppOrder         string `json:"viewTypeAppOrder,omitempty" yaml:"viewTypeAppOrder,omitempty" msgpack:"viewTypeAppOrder,omitempty"`
	Rows                     int    `json:"rows" yaml:"rows" msgpack:"rows"`
	Columns                  int    `json:"columns" yaml:"columns" msgpack:"columns"`
	PageCount                int    `json:"pageCount" yaml:"pageCount" msgpack:"pageCount"`
	ScreenIndex              int    `json:"screenIndex" yaml:"screenIndex" msgpack:"screenIndex"`
}

// Snapshot is a complete document in a format-neutral shape.
type Snapshot struct {
	Layout          Layout `json:"layout" yaml:"layout" msgpack:"layout"`
	Home            []Page `json:"home,omitempty" yaml:"home,omitempty" msgpack:"home,omitempty"`
	Hotseat         []Item `json:"hotseat,omitempty" yaml:"hotseat,omitempty" msgpack:"hotseat,omitempty"`
	HomeOnly        []Page `json:"homeOnly,omitempty" yaml:"homeOnly,omitempty" msgpack:"homeOnly,omitempty"`
	HotseatHomeOnly []Item `json:"hotseatHomeOnly,omitempty" yaml:"hotseatHomeOnly,omitempty" msgpack:"hotseatHomeOnly,omitempty"`
	AppOrder        []Item `json:"appOrder,omitempty" yaml:"appOrder,omitempty" msgpack:"appOrder,omitempty"`
}

// Take returns the snapshot of doc.
func Take(doc *exml.Document) *Snapshot {
	return &Snapshot{
		Layout:          Layout(doc.Layout()),
		Home:            fromPaged(doc.Home()),
		Hotseat:         fromItems(doc.Hotseat().Items()),
		HomeOnly:        fromPaged(doc.HomeOnly()),
		HotseatHomeOnly: fromItems(doc.HotseatHomeOnly().Items()),
		AppOrder:        fromItems(doc.AppOrder().Items()),
	}
}

// Document rebuilds the document described by s.
func (s *Snapshot) Document() (*exml.Document, error) {
	doc := exml.New()
	doc.SetLayout(exml.LayoutConfig(s.Layout))

	for _, r := range []struct {
		pages  []Page
		region *exml.PagedRegion
	}{
		{s.Home, doc.Home()},
		{s.HomeOnly, doc.HomeOnly()},
	} {
		for _, p := range r.pages {
			items, err := toItems(p.Items)
			if err != nil {
				return nil, err
			}
			for _, it := range items {
				r.region.Add(p.Index, it)
			}
		}
	}

	for _, r := range []struct {
		items  []Item
		region *exml.ListRegion
	}{
		{s.Hotseat, doc.Hotseat()},
		{s.HotseatHomeOnly, doc.HotseatHomeOnly()},
		{s.AppOrder, doc.AppOrder()},
	} {
		items, err := toItems(r.items)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			r.region.Add(it)
		}
	}
	return doc, nil
}

func fromPaged(r *exml.PagedRegion) []Page {
	var pages []Page
	for _, idx := range r.Pages() {
		pages = append(pages, Page{Index: idx, Items: fromItems(r.Items(idx))})
	}
	return pages
}

func fromItems(items []exml.Item) []Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item{
			Kind:        it.Kind.String(),
			PackageName: it.PackageName,
			ClassName:   it.ClassName,
			Title:       it.Title,
			Screen:      it.Screen,
			X:           it.X,
			Y:           it.Y,
			SpanX:       it.SpanX,
			SpanY:       it.SpanY,
			AppWidgetID: it.AppWidgetID,
			Options:     it.Options,
			Color:       it.Color,
			Hidden:      it.Hidden,
			Contents:    fromItems(it.Contents),
		}
	}
	return out
}

func toItems(items []Item) ([]exml.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]exml.Item, len(items))
	for i, si := range items {
		kind, ok := exml.ParseKind(si.Kind)
		if !ok {
			return nil, fmt.Errorf("export: unknown item kind %q", si.Kind)
		}
		contents, err := toItems(si.Contents)
		if err != nil {
			return nil, err
		}
		out[i] = exml.Item{
			Kind:        kind,
			PackageName: si.PackageName,
			ClassName:   si.ClassName,
			Title:       si.Title,
			Screen:      si.Screen,
			X:           si.X,
			Y:           si.Y,
			SpanX:       si.SpanX,
			SpanY:       si.SpanY,
			AppWidgetID: si.AppWidgetID,
			Options:     si.Options,
			Color:       si.Color,
			Hidden:      si.Hidden,
			Contents:    contents,
		}
	}
	return out, nil
}

// Encode writes the snapshot of doc to w in format f.
func Encode(w io.Writer, doc *exml.Document, f Format) error {
	s := Take(doc)
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(s)
	}
	return fmt.Errorf("export: unknown format %q", f)
}

// Decode reads a snapshot in format f from r and rebuilds its document.
// Layout fields missing from the input keep their defaults.
func Decode(r io.Reader, f Format) (*exml.Document, error) {
	s := Snapshot{Layout: Layout(exml.DefaultLayoutConfig())}
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&s)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&s)
	case MsgPack:
		err = msgpack.NewDecoder(r).Decode(&s)
	default:
		return nil, fmt.Errorf("export: unknown format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("export: decoding %s: %w", f, err)
	}
	return s.Document()
}
