/*
Package exml reads and writes launcher layout backups (EXML): a layout
configuration plus five regions of placed items. The home screen and its
home-only variant are keyed by page; the hotseat dock, its home-only variant
and the app drawer order are plain ordered lists.

Decoding and encoding mirror the standard library's codec packages:

	doc, err := exml.Unmarshal(data)
	if err != nil {
		// errors.Is(err, exml.ErrMalformedDocument) for unparsable input
	}

	it := exml.NewItem(exml.Icon)
	it.PackageName, it.X, it.Y = "com.example", 1, 2
	doc.Home().Add(0, it)
	doc.Hotseat().Move(0, 3)

	out, err := exml.Marshal(doc, exml.Indent(2))

The decoder is lenient by default. A malformed integer falls back to the
field's default and an item with an unknown tag is skipped. Both are reported
as a Warning, available from Decoder.Warnings or logged through the Logger
option. StrictValues and DisallowUnknownKinds turn them into errors.

The encoder omits an item attribute when it equals its default, so an item
built with NewItem encodes to a bare tag. Layout settings are treated the
other way round: every numeric and boolean setting is written even at its
default, and only empty text settings are left out. Empty regions produce
no container element.

Output is semantically round-trippable rather than byte-identical: attribute
order, whitespace and comments of the source are not preserved.
*/
package exml
