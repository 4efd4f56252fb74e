package digest_test

import (
	"testing"

	"github.com/KimNorgaard/go-exml"
	"github.com/KimNorgaard/go-exml/internal/digest"
	"github.com/KimNorgaard/go-exml/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestSum_IgnoresFormatting(t *testing.T) {
	a, err := exml.Unmarshal([]byte(`<LauncherBackup>
  <hotseat>
    <favorite className="B" packageName="com.b" spanX="1" color="-1"/>
  </hotseat>
</LauncherBackup>`))
	require.NoError(t, err)

	b, err := exml.Unmarshal([]byte(`<Other><Rows value="5"/><hotseat><favorite packageName="com.b" className="B"/></hotseat></Other>`))
	require.NoError(t, err)

	same, err := digest.Equal(a, b)
	require.NoError(t, err)
	require.True(t, same)
}

func TestSum_DetectsChanges(t *testing.T) {
	doc := testutil.LoadSample(t)
	before, err := digest.Sum(doc)
	require.NoError(t, err)

	require.True(t, doc.Hotseat().Move(0, 1))
	after, err := digest.Sum(doc)
	require.NoError(t, err)
	require.NotEqual(t, before, after)

	require.True(t, doc.Hotseat().Move(1, 0))
	restored, err := digest.Sum(doc)
	require.NoError(t, err)
	require.Equal(t, before, restored)
}

func TestParse(t *testing.T) {
	d, err := digest.Sum(exml.New())
	require.NoError(t, err)
	require.Len(t, d.String(), 2*digest.Size)
	require.Len(t, d.Short(), 20)

	parsed, err := digest.Parse(d.String())
	require.NoError(t, err)
	require.Equal(t, d, parsed)

	_, err = digest.Parse("zz")
	require.Error(t, err)
	_, err = digest.Parse("abcd")
	require.EqualError(t, err, "digest: want 32 bytes, got 2")
}
