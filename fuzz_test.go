//go:build go1.18

package exml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-exml"
	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	// Seed the corpus with the backups from the testdata directory.
	seedFiles, err := filepath.Glob("testdata/*.exml")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}

	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte("<r/>"))
	f.Add([]byte(`<r><home><favorite screen="-5"/><favorite screen="3"/></home></r>`))
	f.Add([]byte(`<r><hotseat><folder title="a&amp;b"><favorite x="1"/><appwidget/></folder></hotseat></r>`))
	f.Add([]byte(`<r><Rows value=" 7 "/><category> x </category></r>`))

	f.Fuzz(func(t *testing.T, originalData []byte) {
		doc, err := exml.Unmarshal(originalData)
		if err != nil {
			// Invalid input is expected; the fuzzer is looking for panics.
			return
		}

		// Encoding a document the decoder just produced must never fail,
		// and neither may decoding that encoding.
		first, err := exml.Marshal(doc)
		require.NoError(t, err, "Marshal failed for a successfully decoded document")

		again, err := exml.Unmarshal(first)
		require.NoError(t, err, "Unmarshal failed on our own encoded output")

		second, err := exml.Marshal(again)
		require.NoError(t, err)
		require.Equal(t, string(first), string(second), "Document is not stable after an encode/decode round trip")
	})
}
