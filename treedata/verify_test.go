package treedata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chwzr/ag-grid-treedata/treedata"
)

func TestVerify_DetectsViolations(t *testing.T) {
	t.Parallel()

	cfg := treedata.DefaultConfig()
	cfg.Levels = [][]string{{"A", "B"}, {"x", "y"}}
	cfg.Periods = []string{"jan", "feb"}
	cfg.IncludeRel = true

	fresh := func(t *testing.T) []treedata.Entry {
		entries, err := treedata.GenerateTree(cfg, treedata.WithSeed(11))
		require.NoError(t, err)
		require.NoError(t, treedata.Verify(entries, cfg))
		return entries
	}

	tests := []struct {
		name   string
		breakC func([]treedata.Entry) []treedata.Entry
	}{
		{"missing entry", func(e []treedata.Entry) []treedata.Entry { return e[:len(e)-1] }},
		{"sum off by one", func(e []treedata.Entry) []treedata.Entry {
			e[1].Values[treedata.SeriesPlan]["feb"]++
			return e
		}},
		{"forecast off", func(e []treedata.Entry) []treedata.Entry {
			e[0].Values[treedata.SeriesForecast]["jan"] -= 3
			return e
		}},
		{"unknown label", func(e []treedata.Entry) []treedata.Entry {
			e[2].Path = []string{"A", "q"}
			return e
		}},
		{"duplicate path", func(e []treedata.Entry) []treedata.Entry {
			e[2].Path = []string{"A", "x"}
			return e
		}},
		{"too deep", func(e []treedata.Entry) []treedata.Entry {
			e[2].Path = []string{"A", "x", "x"}
			return e
		}},
		{"rel out of bounds", func(e []treedata.Entry) []treedata.Entry {
			e[3].Values[treedata.SeriesRel]["jan"] = treedata.RelMax + 1
			return e
		}},
		{"rel missing", func(e []treedata.Entry) []treedata.Entry {
			delete(e[3].Values, treedata.SeriesRel)
			return e
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := treedata.Verify(tc.breakC(fresh(t)), cfg)
			require.ErrorIs(t, err, treedata.ErrInvariant)
		})
	}
}

func TestVerify_RelNotRequested(t *testing.T) {
	t.Parallel()

	cfg := treedata.DefaultConfig()
	cfg.Levels = [][]string{{"A", "B"}}
	entries, err := treedata.GenerateTree(cfg, treedata.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, treedata.Verify(entries, cfg))

	entries[0].Values[treedata.SeriesRel] = treedata.SeriesValues{"jan": 3}
	require.ErrorIs(t, treedata.Verify(entries, cfg), treedata.ErrInvariant)
}

func TestVerify_InvalidConfig(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, treedata.Verify(nil, treedata.DefaultConfig()), treedata.ErrValidation)
}
