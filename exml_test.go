package exml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-exml"
	"github.com/stretchr/testify/require"
)

// requireSameDocument compares every observable part of two documents.
func requireSameDocument(t *testing.T, want, got *exml.Document) {
	t.Helper()
	require.Equal(t, want.Layout(), got.Layout())

	for _, name := range []string{exml.RegionHome, exml.RegionHomeOnly} {
		w, g := want.Paged(name), got.Paged(name)
		require.Equal(t, w.Pages(), g.Pages(), "pages of %s", name)
		for _, page := range w.Pages() {
			requireSameItems(t, w.Items(page), g.Items(page))
		}
	}
	for _, name := range []string{exml.RegionHotseat, exml.RegionHotseatHomeOnly, exml.RegionAppOrder} {
		requireSameItems(t, want.List(name).Items(), got.List(name).Items())
	}
}

func requireSameItems(t *testing.T, want, got []exml.Item) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, want[i].Equal(got[i]), "item %d:\nwant %+v\ngot  %+v", i, want[i], got[i])
	}
}

func sampleDocument() *exml.Document {
	doc := exml.New()

	cfg := doc.Layout()
	cfg.Rows, cfg.Columns, cfg.PageCount, cfg.ScreenIndex = 6, 5, 3, 1
	cfg.Category = "home_only_mode"
	cfg.HomeGridList = "4x5,5x6"
	cfg.ZeroPage = true
	cfg.SuggestedApps = false
	cfg.BadgeOnOffSetting = 2
	doc.SetLayout(cfg)

	a := icon("com.a", "com.a.Main")
	a.X, a.Y = 0, 0
	doc.Home().Add(0, a)

	w := exml.NewItem(exml.Widget)
	w.PackageName, w.ClassName = "com.clock", "com.clock.Provider"
	w.X, w.Y, w.SpanX, w.SpanY, w.AppWidgetID = 0, 1, 4, 2, 31
	doc.Home().Add(0, w)

	f := exml.NewItem(exml.Folder)
	f.Title = "Social & Chat"
	f.X, f.Y, f.Color, f.Options = 2, 3, 4, 8
	f.Contents = []exml.Item{icon("com.chat", "com.chat.Main"), icon("com.mail", "com.mail.Main")}
	doc.Home().Add(2, f)

	hidden := icon("com.secret", "com.secret.Main")
	hidden.Hidden = true
	doc.HomeOnly().Add(5, hidden)

	for i, p := range []string{"com.phone", "com.sms", "com.camera"} {
		it := icon(p, p+".Main")
		it.Screen, it.X, it.Y = i, i, 0
		doc.Hotseat().Add(it)
		doc.HotseatHomeOnly().Add(it)
	}
	doc.AppOrder().Add(icon("com.z", "com.z.Main"))
	doc.AppOrder().Add(icon("com.y", "com.y.Main"))
	return doc
}

func TestRoundTrip(t *testing.T) {
	doc := sampleDocument()
	doc.Home().Move(2, 0, 1, 0)
	doc.Hotseat().Move(0, 10)

	for _, opts := range [][]exml.Option{
		nil,
		{exml.Indent(0)},
		{exml.Indent(4), exml.OmitDeclaration()},
	} {
		b, err := exml.Marshal(doc, opts...)
		require.NoError(t, err)

		got, err := exml.Unmarshal(b)
		require.NoError(t, err)
		requireSameDocument(t, doc, got)

		again, err := exml.Marshal(got, opts...)
		require.NoError(t, err)
		require.Equal(t, string(b), string(again), "encoding is stable")
	}
}

func TestRoundTrip_DefaultItem(t *testing.T) {
	doc := exml.New()
	doc.AppOrder().Add(exml.NewItem(exml.Icon))

	b, err := exml.Marshal(doc, exml.Indent(0), exml.OmitDeclaration())
	require.NoError(t, err)
	require.Contains(t, string(b), "<appOrder><favorite/></appOrder>")

	got, err := exml.Unmarshal(b)
	require.NoError(t, err)
	require.True(t, exml.NewItem(exml.Icon).Equal(got.AppOrder().Items()[0]))
}

func TestRoundTrip_FolderContents(t *testing.T) {
	one := icon("com.one", "One")
	one.Screen, one.X = 0, 0
	two := icon("com.two", "Two")
	two.Screen, two.X = 0, 1

	f := exml.NewItem(exml.Folder)
	f.Title = "Pair"
	f.Contents = []exml.Item{one, two}

	doc := exml.New()
	doc.Home().Add(0, f)

	b, err := exml.Marshal(doc)
	require.NoError(t, err)
	got, err := exml.Unmarshal(b)
	require.NoError(t, err)

	contents := got.Home().Items(0)[0].Contents
	require.Len(t, contents, 2)
	require.Equal(t, "com.one", contents[0].PackageName)
	require.Equal(t, "One", contents[0].ClassName)
	require.Equal(t, 0, contents[0].Screen)
	require.Equal(t, "com.two", contents[1].PackageName)
	require.Equal(t, "Two", contents[1].ClassName)
	require.Equal(t, 1, contents[1].X)
}

func TestRoundTrip_ClearedDocument(t *testing.T) {
	doc := sampleDocument()
	doc.Clear()

	b, err := exml.Marshal(doc)
	require.NoError(t, err)
	got, err := exml.Unmarshal(b)
	require.NoError(t, err)
	requireSameDocument(t, exml.New(), got)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.exml")

	doc := sampleDocument()
	require.NoError(t, exml.Save(path, doc))

	got, err := exml.Load(path)
	require.NoError(t, err)
	requireSameDocument(t, doc, got)

	// Overwriting keeps a single file and leaves no temporaries behind.
	got.AppOrder().Add(icon("com.new", ""))
	require.NoError(t, exml.Save(path, got, exml.Indent(0)))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	again, err := exml.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, again.AppOrder().Count())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := exml.Load(filepath.Join(dir, "missing.exml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.exml")
	require.NoError(t, os.WriteFile(bad, []byte("<LauncherBackup>"), 0o644))
	_, err = exml.Load(bad)
	require.ErrorIs(t, err, exml.ErrMalformedDocument)
	require.Contains(t, err.Error(), "bad.exml: exml: parsing error")
}

func TestSave_InvalidOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.exml")
	err := exml.Save(path, exml.New(), exml.Indent(-2))
	require.Error(t, err)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}
