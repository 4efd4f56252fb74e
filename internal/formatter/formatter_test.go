package formatter_test

import (
	"bytes"
	"testing"

	"github.com/KimNorgaard/go-exml/ast"
	"github.com/KimNorgaard/go-exml/internal/formatter"
	"github.com/stretchr/testify/require"
)

func element(name string, attrs ...string) *ast.Element {
	el := ast.NewElement(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		el.SetAttr(attrs[i], attrs[i+1])
	}
	return el
}

func textElement(name, text string) *ast.Element {
	el := ast.NewElement(name)
	el.SetText(text)
	return el
}

func withChildren(el *ast.Element, children ...*ast.Element) *ast.Element {
	for _, c := range children {
		el.Append(c)
	}
	return el
}

// Centralized test cases to be used across different format settings.
var testCases = []struct {
	name             string
	node             ast.Node
	expectedCompact  string
	expectedIndented string // 2 spaces
}{
	{
		name:             "Empty element",
		node:             element("favorite"),
		expectedCompact:  `<favorite/>`,
		expectedIndented: `<favorite/>`,
	},
	{
		name:             "Attributes in insertion order",
		node:             element("favorite", "packageName", "com.a", "screen", "0"),
		expectedCompact:  `<favorite packageName="com.a" screen="0"/>`,
		expectedIndented: `<favorite packageName="com.a" screen="0"/>`,
	},
	{
		name:             "Escaped attribute and text",
		node:             withChildren(element("folder", "title", `A<"B">`), textElement("category", "x&y")),
		expectedCompact:  `<folder title="A&lt;&#34;B&#34;&gt;"><category>x&amp;y</category></folder>`,
		expectedIndented: "<folder title=\"A&lt;&#34;B&#34;&gt;\">\n  <category>x&amp;y</category>\n</folder>",
	},
	{
		name: "Nested children",
		node: withChildren(element("home"),
			withChildren(element("folder"), element("favorite")),
		),
		expectedCompact:  `<home><folder><favorite/></folder></home>`,
		expectedIndented: "<home>\n  <folder>\n    <favorite/>\n  </folder>\n</home>",
	},
	{
		name: "Document with declaration",
		node: &ast.Document{
			Declaration: `version="1.0" encoding="UTF-8"`,
			Root:        withChildren(element("LauncherBackup"), textElement("Rows", "5")),
		},
		expectedCompact:  `<?xml version="1.0" encoding="UTF-8"?><LauncherBackup><Rows>5</Rows></LauncherBackup>`,
		expectedIndented: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<LauncherBackup>\n  <Rows>5</Rows>\n</LauncherBackup>\n",
	},
}

func TestFormat(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.name+"/compact", func(t *testing.T) {
			var buf bytes.Buffer
			indent := 0
			require.NoError(t, formatter.New(&buf, &indent).Format(tc.node))
			require.Equal(t, tc.expectedCompact, buf.String())
		})
		t.Run(tc.name+"/indented", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, formatter.New(&buf, nil).Format(tc.node))
			require.Equal(t, tc.expectedIndented, buf.String())
		})
	}
}

func TestFormat_CustomIndent(t *testing.T) {
	var buf bytes.Buffer
	indent := 4
	node := withChildren(element("hotseat"), element("favorite"))
	require.NoError(t, formatter.New(&buf, &indent).Format(node))
	require.Equal(t, "<hotseat>\n    <favorite/>\n</hotseat>", buf.String())
}
