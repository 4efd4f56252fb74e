package exml_test

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-exml"
	"github.com/stretchr/testify/require"
)

// marshalCompact encodes doc on a single line without the declaration.
func marshalCompact(t *testing.T, doc *exml.Document) string {
	t.Helper()
	b, err := exml.Marshal(doc, exml.Indent(0), exml.OmitDeclaration())
	require.NoError(t, err)
	return string(b)
}

func regionXML(t *testing.T, doc *exml.Document, region string) string {
	t.Helper()
	s := marshalCompact(t, doc)
	start := strings.Index(s, "<"+region+">")
	require.NotEqual(t, -1, start, "region %s missing in %s", region, s)
	end := strings.Index(s[start:], "</"+region+">")
	return s[start+len(region)+2 : start+end]
}

func TestMarshal_ItemElision(t *testing.T) {
	t.Run("All defaults encode to a bare tag", func(t *testing.T) {
		for _, kind := range []exml.Kind{exml.Icon, exml.Folder, exml.Widget} {
			doc := exml.New()
			doc.Hotseat().Add(exml.NewItem(kind))
			require.Equal(t, "<"+kind.String()+"/>", regionXML(t, doc, "hotseat"))
		}
	})

	t.Run("Non-default values are written", func(t *testing.T) {
		w := exml.NewItem(exml.Widget)
		w.PackageName = "com.clock"
		w.ClassName = "com.clock.Widget"
		w.Screen, w.X, w.Y = 0, 0, 1
		w.SpanX, w.SpanY = 4, 2
		w.AppWidgetID = 17
		w.Options = 3
		w.Color = 0
		w.Hidden = true

		doc := exml.New()
		doc.AppOrder().Add(w)
		require.Equal(t,
			`<appwidget packageName="com.clock" className="com.clock.Widget" screen="0" x="0" y="1" `+
				`spanX="4" spanY="2" appWidgetID="17" options="3" color="0" hidden="1"/>`,
			regionXML(t, doc, "appOrder"))
	})

	t.Run("Boundary values are elided", func(t *testing.T) {
		it := exml.NewItem(exml.Icon)
		it.SpanX, it.SpanY = 0, 1
		it.AppWidgetID = -3
		it.Screen, it.X, it.Y = -2, -1, -7

		doc := exml.New()
		doc.Hotseat().Add(it)
		require.Equal(t, "<favorite/>", regionXML(t, doc, "hotseat"))
	})

	t.Run("Title is only written for folders", func(t *testing.T) {
		it := exml.NewItem(exml.Icon)
		it.Title = "ignored"
		f := exml.NewItem(exml.Folder)
		f.Title = "Games"

		doc := exml.New()
		doc.Hotseat().Add(it)
		doc.Hotseat().Add(f)
		require.Equal(t, `<favorite/><folder title="Games"/>`, regionXML(t, doc, "hotseat"))
	})

	t.Run("Folder contents are nested in order", func(t *testing.T) {
		f := exml.NewItem(exml.Folder)
		f.Title = "Tools"
		f.Screen = 1
		f.Contents = []exml.Item{icon("com.a", "A"), icon("com.b", "B")}

		doc := exml.New()
		doc.Home().Add(1, f)
		require.Equal(t,
			`<folder title="Tools" screen="1"><favorite packageName="com.a" className="A"/>`+
				`<favorite packageName="com.b" className="B"/></folder>`,
			regionXML(t, doc, "home"))
	})
}

func TestMarshal_Layout(t *testing.T) {
	t.Run("Defaults write every number and boolean", func(t *testing.T) {
		s := marshalCompact(t, exml.New())
		require.Equal(t, "<LauncherBackup>"+
			"<restore_max_size_grid>true</restore_max_size_grid>"+
			"<zeroPage>false</zeroPage>"+
			"<notification_panel_setting>true</notification_panel_setting>"+
			"<lock_layout_setting>false</lock_layout_setting>"+
			"<quick_access_finder>true</quick_access_finder>"+
			"<badge_on_off_setting>0</badge_on_off_setting>"+
			"<only_portrait_mode_setting>true</only_portrait_mode_setting>"+
			"<add_icon_to_home_setting>false</add_icon_to_home_setting>"+
			"<suggested_apps>true</suggested_apps>"+
			"<expand_hotseat_size>5</expand_hotseat_size>"+
			"<Rows>5</Rows>"+
			"<Columns>4</Columns>"+
			"<PageCount>1</PageCount>"+
			"<ScreenIndex>0</ScreenIndex>"+
			"</LauncherBackup>", s)
	})

	t.Run("Text settings are written when set", func(t *testing.T) {
		doc := exml.New()
		cfg := doc.Layout()
		cfg.Category = "home_apps"
		cfg.FolderGrid = "4x4"
		cfg.ZeroPageContents = "com.news"
		cfg.SelectedMinusonePackage = "com.feed"
		cfg.HomeGridList = "4x5,5x5"
		cfg.AppsGridList = "4x6"
		cfg.ViewTypeAppOrder = "CUSTOM_GRID"
		doc.SetLayout(cfg)

		s := marshalCompact(t, doc)
		for _, want := range []string{
			"<category>home_apps</category>",
			"<FolderGrid>4x4</FolderGrid>",
			"<zeroPageContents>com.news</zeroPageContents>",
			"<selectedMinusonePackage>com.feed</selectedMinusonePackage>",
			"<home_grid_list>4x5,5x5</home_grid_list>",
			"<apps_grid_list>4x6</apps_grid_list>",
			"<viewType_appOrder>CUSTOM_GRID</viewType_appOrder>",
		} {
			require.Contains(t, s, want)
		}
		require.True(t, strings.HasPrefix(s, "<LauncherBackup><category>home_apps</category><FolderGrid>4x4</FolderGrid>"))
	})
}

func TestMarshal_RegionOrder(t *testing.T) {
	doc := exml.New()
	doc.AppOrder().Add(icon("com.e", ""))
	doc.HotseatHomeOnly().Add(icon("com.d", ""))
	doc.HomeOnly().Add(0, icon("com.c", ""))
	doc.Hotseat().Add(icon("com.b", ""))
	doc.Home().Add(3, icon("com.a2", ""))
	doc.Home().Add(1, icon("com.a1", ""))

	s := marshalCompact(t, doc)
	last := -1
	for _, tag := range []string{"<ScreenIndex>", "<home>", "<hotseat>", "<homeOnly>", "<hotseat_homeOnly>", "<appOrder>"} {
		i := strings.Index(s, tag)
		require.Greater(t, i, last, "%s out of order in %s", tag, s)
		last = i
	}
	require.Less(t, strings.Index(s, "com.a1"), strings.Index(s, "com.a2"), "pages are written in ascending order")
}

func TestMarshal_EmptyRegionsOmitted(t *testing.T) {
	doc := exml.New()
	doc.Hotseat().Add(icon("com.a", ""))
	doc.Hotseat().Remove("com.a", "")

	s := marshalCompact(t, doc)
	for _, region := range exml.Regions {
		require.NotContains(t, s, "<"+region+">")
		require.NotContains(t, s, "<"+region+"/>")
	}
}

func TestMarshal_Options(t *testing.T) {
	doc := exml.New()
	doc.Hotseat().Add(icon("com.a", ""))

	t.Run("Default output has a declaration and indentation", func(t *testing.T) {
		b, err := exml.Marshal(doc)
		require.NoError(t, err)
		s := string(b)
		require.True(t, strings.HasPrefix(s, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<LauncherBackup>\n  <restore_max_size_grid>"))
		require.Contains(t, s, "  <hotseat>\n    <favorite packageName=\"com.a\"/>\n  </hotseat>\n")
		require.True(t, strings.HasSuffix(s, "</LauncherBackup>\n"))
	})

	t.Run("Custom root name", func(t *testing.T) {
		b, err := exml.Marshal(doc, exml.RootName("Backup"), exml.Indent(0), exml.OmitDeclaration())
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(b), "<Backup>"))
		require.True(t, strings.HasSuffix(string(b), "</Backup>"))
	})

	t.Run("Invalid options", func(t *testing.T) {
		_, err := exml.Marshal(doc, exml.Indent(-1))
		require.EqualError(t, err, "exml: indent spaces cannot be negative")

		_, err = exml.Marshal(doc, exml.RootName(""))
		require.EqualError(t, err, "exml: root name cannot be empty")
	})

	t.Run("Nil document", func(t *testing.T) {
		_, err := exml.Marshal(nil)
		require.EqualError(t, err, "exml: Encode(nil document)")
	})

	t.Run("Unknown kind", func(t *testing.T) {
		bad := exml.New()
		bad.AppOrder().Add(exml.NewItem(exml.Kind(7)))
		b, err := exml.Marshal(bad)
		require.EqualError(t, err, "exml: cannot encode item of kind 7 in <appOrder>")
		require.Nil(t, b)
	})

	t.Run("Unknown kind inside a folder", func(t *testing.T) {
		folder := exml.NewItem(exml.Folder)
		folder.Title = "Tools"
		folder.Contents = []exml.Item{icon("com.a", "A"), exml.NewItem(exml.Kind(-1))}
		bad := exml.New()
		bad.Home().Add(0, folder)

		var buf strings.Builder
		err := exml.NewEncoder(&buf).Encode(bad)
		require.EqualError(t, err, "exml: cannot encode item of kind -1 in <home>")
		require.Empty(t, buf.String())
	})
}
