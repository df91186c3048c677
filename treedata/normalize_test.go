package treedata_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chwzr/ag-grid-treedata/treedata"
)

// flatEntries builds depth-1 entries with identical plan/forecast values.
func flatEntries(labels []string, values []int64) []treedata.Entry {
	entries := make([]treedata.Entry, len(labels))
	for i, l := range labels {
		entries[i] = treedata.Entry{
			Path: []string{l},
			Values: map[treedata.Series]treedata.SeriesValues{
				treedata.SeriesPlan:     {"jan": values[i]},
				treedata.SeriesForecast: {"jan": values[i]},
				treedata.SeriesRel:      {"jan": 7},
			},
		}
	}
	return entries
}

func plans(entries []treedata.Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.Value(treedata.SeriesPlan, "jan")
	}
	return out
}

func TestNormalizeLevel_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		labels       []string
		raw          []int64
		constraint   int64
		want         []int64
		wantAdjusted int
	}{
		{"halves", []string{"A", "B"}, []int64{100, 100}, 100, []int64{50, 50}, 0},
		{"positive residual on last", []string{"A", "B", "C"}, []int64{33, 33, 33}, 100, []int64{33, 33, 34}, 2},
		{"negative residual on last", []string{"A", "B", "C", "D"}, []int64{1, 1, 1, 1}, 10, []int64{3, 3, 3, 1}, 2},
		{"single child takes all", []string{"A"}, []int64{417}, 100, []int64{100}, 0},
		{"uneven weights", []string{"A", "B", "C"}, []int64{1, 2, 7}, 100, []int64{10, 20, 70}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			entries := flatEntries(tc.labels, tc.raw)

			stats, err := treedata.NormalizeLevel(entries, 1, []string{"jan"}, tc.constraint)
			require.NoError(t, err)
			require.Equal(t, tc.want, plans(entries))
			require.Equal(t, 1, stats.Groups)
			require.Equal(t, len(tc.labels), stats.Entries)
			require.Equal(t, tc.wantAdjusted, stats.Adjusted, "plan and forecast adjust together")

			for _, e := range entries {
				require.Equal(t, int64(7), e.Value(treedata.SeriesRel, "jan"), "rel is never normalized")
			}
		})
	}
}

func TestNormalizeLevel_Idempotent(t *testing.T) {
	t.Parallel()

	entries := flatEntries([]string{"A", "B", "C"}, []int64{33, 33, 33})
	_, err := treedata.NormalizeLevel(entries, 1, []string{"jan"}, 100)
	require.NoError(t, err)

	stats, err := treedata.NormalizeLevel(entries, 1, []string{"jan"}, 100)
	require.NoError(t, err)
	require.Zero(t, stats.Adjusted)
	require.Equal(t, []int64{33, 33, 34}, plans(entries))
}

func TestNormalizeLevel_DegenerateGroup(t *testing.T) {
	t.Parallel()

	entries := flatEntries([]string{"A", "B", "C"}, []int64{0, 0, 0})
	_, err := treedata.NormalizeLevel(entries, 1, []string{"jan"}, 100)
	require.ErrorIs(t, err, treedata.ErrDegenerateGroup)

	var dErr *treedata.DegenerateGroupError
	require.True(t, errors.As(err, &dErr))
	require.Equal(t, 1, dErr.Depth)
	require.Nil(t, dErr.Parent)
	require.Equal(t, "jan", dErr.Period)
	require.Equal(t, treedata.SeriesPlan, dErr.Series)
}

func TestNormalizeLevel_DegenerateLeavesValuesUntouched(t *testing.T) {
	t.Parallel()

	// group "A" is fine, group "B" sums to zero: nothing may be rescaled.
	entries := []treedata.Entry{
		{Path: []string{"A", "x"}, Values: map[treedata.Series]treedata.SeriesValues{
			treedata.SeriesPlan: {"jan": 10}, treedata.SeriesForecast: {"jan": 10}}},
		{Path: []string{"A", "y"}, Values: map[treedata.Series]treedata.SeriesValues{
			treedata.SeriesPlan: {"jan": 30}, treedata.SeriesForecast: {"jan": 30}}},
		{Path: []string{"B", "x"}, Values: map[treedata.Series]treedata.SeriesValues{
			treedata.SeriesPlan: {"jan": 5}, treedata.SeriesForecast: {"jan": 0}}},
	}

	_, err := treedata.NormalizeLevel(entries, 2, []string{"jan"}, 100)
	var dErr *treedata.DegenerateGroupError
	require.True(t, errors.As(err, &dErr))
	require.Equal(t, []string{"B"}, dErr.Parent)
	require.Equal(t, treedata.SeriesForecast, dErr.Series)
	require.Equal(t, int64(10), entries[0].Value(treedata.SeriesPlan, "jan"))
	require.Equal(t, int64(30), entries[1].Value(treedata.SeriesPlan, "jan"))
}

func TestNormalizeLevel_GroupsByParent(t *testing.T) {
	t.Parallel()

	mk := func(path []string, v int64) treedata.Entry {
		return treedata.Entry{Path: path, Values: map[treedata.Series]treedata.SeriesValues{
			treedata.SeriesPlan: {"jan": v}, treedata.SeriesForecast: {"jan": v}}}
	}
	entries := []treedata.Entry{
		mk([]string{"A"}, 999),
		mk([]string{"A", "x"}, 1),
		mk([]string{"A", "y"}, 3),
		mk([]string{"B"}, 999),
		mk([]string{"B", "x"}, 50),
		mk([]string{"B", "y"}, 50),
	}

	stats, err := treedata.NormalizeLevel(entries, 2, []string{"jan"}, 100)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Groups)
	require.Equal(t, 4, stats.Entries)
	require.Equal(t, []int64{999, 25, 75, 999, 50, 50}, plans(entries), "depth-1 entries untouched")
}

func TestNormalizeLevel_BadDepth(t *testing.T) {
	t.Parallel()

	_, err := treedata.NormalizeLevel(nil, 0, []string{"jan"}, 100)
	require.ErrorIs(t, err, treedata.ErrValidation)
}

func TestNormalizeLevel_MissingSeriesMap(t *testing.T) {
	t.Parallel()

	entries := []treedata.Entry{
		{Path: []string{"A"}, Values: map[treedata.Series]treedata.SeriesValues{
			treedata.SeriesPlan: {"jan": 4}, treedata.SeriesForecast: {"jan": 4}}},
		{Path: []string{"B"}},
	}

	_, err := treedata.NormalizeLevel(entries, 1, []string{"jan"}, 100)
	require.NoError(t, err)
	require.Equal(t, int64(100), entries[0].Value(treedata.SeriesPlan, "jan"))
	require.Equal(t, int64(0), entries[1].Value(treedata.SeriesPlan, "jan"))
}

func TestNormalizeLevel_RejectsUnsafeMagnitudes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		values     []int64
		constraint int64
	}{
		{"sum wraps", []int64{treedata.MaxSafeMagnitude, treedata.MaxSafeMagnitude}, 100},
		{"constraint too large", []int64{1, 1}, treedata.MaxSafeMagnitude + 1},
		{"mixed signs rescale too far", []int64{1 << 40, 1 - 1<<40}, 1 << 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entries := flatEntries([]string{"A", "B"}, tc.values)
			_, err := treedata.NormalizeLevel(entries, 1, []string{"jan"}, tc.constraint)
			require.ErrorIs(t, err, treedata.ErrValidation)
			require.Equal(t, tc.values, plans(entries), "rejected level is left untouched")
		})
	}
}
