package exml

// Region names as they appear in the document.
const (
	RegionHome            = "home"
	RegionHotseat         = "hotseat"
	RegionHomeOnly        = "homeOnly"
	RegionHotseatHomeOnly = "hotseat_homeOnly"
	RegionAppOrder        = "appOrder"
)

// Regions lists the region names in the order the encoder writes them.
var Regions = []string{
	RegionHome,
	RegionHotseat,
	RegionHomeOnly,
	RegionHotseatHomeOnly,
	RegionAppOrder,
}

// Document is an in-memory launcher layout backup.
//
// The zero value is an empty document with a zero layout configuration; use
// New for the defaults. A Document is not safe for concurrent use; callers
// sharing one across goroutines must serialize access.
type Document struct {
	layout LayoutConfig

	home            PagedRegion
	homeOnly        PagedRegion
	hotseat         ListRegion
	hotseatHomeOnly ListRegion
	appOrder        ListRegion
}

// New returns an empty document with the default layout configuration.
func New() *Document {
	return &Document{layout: DefaultLayoutConfig()}
}

// Layout returns the layout configuration.
func (d *Document) Layout() LayoutConfig {
	return d.layout
}

// SetLayout replaces the layout configuration.
func (d *Document) SetLayout(cfg LayoutConfig) {
	d.layout = cfg
}

// Home returns the home screen region.
func (d *Document) Home() *PagedRegion { return &d.home }

// HomeOnly returns the home-only variant of the home screen region.
func (d *Document) HomeOnly() *PagedRegion { return &d.homeOnly }

// Hotseat returns the dock region.
func (d *Document) Hotseat() *ListRegion { return &d.hotseat }

// HotseatHomeOnly returns the home-only variant of the dock region.
func (d *Document) HotseatHomeOnly() *ListRegion { return &d.hotseatHomeOnly }

// AppOrder returns the app drawer ordering region.
func (d *Document) AppOrder() *ListRegion { return &d.appOrder }

// Paged returns the page-keyed region called name, or nil.
func (d *Document) Paged(name string) *PagedRegion {
	switch name {
	case RegionHome:
		return &d.home
	case RegionHomeOnly:
		return &d.homeOnly
	}
	return nil
}

// List returns the list region called name, or nil.
func (d *Document) List(name string) *ListRegion {
	switch name {
	case RegionHotseat:
		return &d.hotseat
	case RegionHotseatHomeOnly:
		return &d.hotseatHomeOnly
	case RegionAppOrder:
		return &d.appOrder
	}
	return nil
}

// Len returns the number of items in the region called name, or 0 for an
// unknown name.
func (d *Document) Len(name string) int {
	if r := d.Paged(name); r != nil {
		return r.Len()
	}
	if r := d.List(name); r != nil {
		return r.Count()
	}
	return 0
}

// Clear empties every region and resets the layout configuration.
func (d *Document) Clear() {
	d.home.clear()
	d.homeOnly.clear()
	d.hotseat.clear()
	d.hotseatHomeOnly.clear()
	d.appOrder.clear()
	d.layout = DefaultLayoutConfig()
}
