package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"testing"

	"github.com/KimNorgaard/go-exml"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// SampleBackup is the embedded backup shared by the internal package tests.
// It holds four home items over two pages, two hotseat items and three
// appOrder items; com.android.chrome appears on both home pages and in
// appOrder.
const SampleBackup = "launcher.exml"

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// LoadSample decodes SampleBackup, failing the test on error.
func LoadSample(t testing.TB) *exml.Document {
	t.Helper()
	data, err := ReadTestData(SampleBackup)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := exml.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}
