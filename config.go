package exml

// LayoutConfig holds the launcher settings stored as direct children of the
// root element. Each field maps to the element named by its exml tag; fields
// are encoded in declaration order. Text fields carry omitempty and are
// skipped when empty; numeric and boolean fields are always written.
type LayoutConfig struct {
	Category                 string `exml:"category,omitempty"`
	FolderGrid               string `exml:"FolderGrid,omitempty"`
	RestoreMaxSizeGrid       bool   `exml:"restore_max_size_grid"`
	ZeroPageContents         string `exml:"zeroPageContents,omitempty"`
	SelectedMinusonePackage  string `exml:"selectedMinusonePackage,omitempty"`
	ZeroPage                 bool   `exml:"zeroPage"`
	NotificationPanelSetting bool   `exml:"notification_panel_setting"`
	LockLayoutSetting        bool   `exml:"lock_layout_setting"`
	QuickAccessFinder        bool   `exml:"quick_access_finder"`
	BadgeOnOffSetting        int    `exml:"badge_on_off_setting"`
	OnlyPortraitModeSetting  bool   `exml:"only_portrait_mode_setting"`
	AddIconToHomeSetting     bool   `exml:"add_icon_to_home_setting"`
	SuggestedApps            bool   `exml:"suggested_apps"`
	ExpandHotseatSize        int    `exml:"expand_hotseat_size"`
	HomeGridList             string `exml:"home_grid_list,omitempty"`
	AppsGridList             string `exml:"apps_grid_list,omitempty"`
	ViewTypeAppOrder         string `exml:"viewType_appOrder,omitempty"`
	Rows                     int    `exml:"Rows"`
	Columns                  int    `exml:"Columns"`
	PageCount                int    `exml:"PageCount"`
	ScreenIndex              int    `exml:"ScreenIndex"`
}

// DefaultLayoutConfig returns the settings of a freshly created document.
// The decoder starts from these values, so an absent element keeps its
// default.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		RestoreMaxSizeGrid:       true,
		NotificationPanelSetting: true,
		QuickAccessFinder:        true,
		OnlyPortraitModeSetting:  true,
		SuggestedApps:            true,
		ExpandHotseatSize:        5,
		Rows:                     5,
		Columns:                  4,
		PageCount:                1,
	}
}
