package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/chwzr/ag-grid-treedata/export"
	"github.com/chwzr/ag-grid-treedata/treedata"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{
		"": export.FormatJSON, "JSON": export.FormatJSON, "yaml": export.FormatYAML, "yml": export.FormatYAML,
	} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := export.ParseFormat("csv")
	require.Error(t, err)
}

func TestNewDocument(t *testing.T) {
	seed := int64(7)
	cfg := treedata.ExampleConfig()
	entries, err := treedata.GenerateTree(cfg, treedata.WithSeed(seed))
	require.NoError(t, err)

	doc := export.NewDocument(cfg, entries, &seed)
	_, err = uuid.Parse(doc.ID)
	require.NoError(t, err)
	require.False(t, doc.GeneratedAt.IsZero())
	require.NoError(t, doc.Verify())

	other := export.NewDocument(cfg, entries, nil)
	require.NotEqual(t, doc.ID, other.ID)
}

// Both encodings must carry enough to re-verify the dataset after decoding.
func TestEncodeDecode_Verifies(t *testing.T) {
	seed := int64(3)
	cfg := treedata.ExampleConfig()
	entries, err := treedata.GenerateTree(cfg, treedata.WithSeed(seed))
	require.NoError(t, err)
	doc := export.NewDocument(cfg, entries, &seed)

	for _, f := range []export.Format{export.FormatJSON, export.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, export.Encode(&buf, doc, f))

			got, err := export.Decode(&buf, f)
			require.NoError(t, err)
			require.Equal(t, doc.ID, got.ID)
			require.Equal(t, seed, *got.Seed)
			require.Equal(t, doc.Entries, got.Entries)
			require.NoError(t, got.Verify())
		})
	}
}

func TestEncode_JSONShape(t *testing.T) {
	cfg := treedata.DefaultConfig()
	cfg.Levels = [][]string{{"A"}}
	cfg.Periods = []string{"jan"}
	entries, err := treedata.GenerateTree(cfg, treedata.WithSeed(1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, export.NewDocument(cfg, entries, nil), export.FormatJSON))

	out := buf.String()
	require.Contains(t, out, `"path": [`)
	require.Contains(t, out, `"plan": {`)
	require.Contains(t, out, `"jan": 100`)
	require.NotContains(t, out, `"seed"`)
}

func TestDecode_Errors(t *testing.T) {
	_, err := export.Decode(strings.NewReader("{"), export.FormatJSON)
	require.Error(t, err)

	_, err = export.Decode(strings.NewReader(`{"id":"not-a-uuid"}`), export.FormatJSON)
	require.Error(t, err)

	_, err = export.Decode(strings.NewReader(`{}`), "xml")
	require.Error(t, err)
}
