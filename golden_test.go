package exml_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-exml"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.exml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			// Backups that fail to decode record the error message instead
			// of the canonical re-encoding.
			actual, err := exml.Format(src, exml.Indent(2))
			if err != nil {
				actual = []byte(err.Error())
			}

			goldenFile := strings.Replace(file, ".exml", ".golden", 1)
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), string(actual), "Canonical output does not match golden file.")
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	src, err := os.ReadFile("testdata/basic.exml")
	require.NoError(t, err)

	once, err := exml.Format(src)
	require.NoError(t, err)
	twice, err := exml.Format(once)
	require.NoError(t, err)
	require.Equal(t, string(once), string(twice))
}

func TestFormat_StrictOptions(t *testing.T) {
	src, err := os.ReadFile("testdata/lenient.exml")
	require.NoError(t, err)

	_, err = exml.Format(src, exml.DisallowUnknownKinds())
	var uk *exml.UnknownKindError
	require.ErrorAs(t, err, &uk)
	require.Equal(t, "hotseat_homeOnly", uk.Region)

	_, err = exml.Format(src, exml.StrictValues())
	var verr *exml.ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "x", verr.Attr)
}
