package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chwzr/ag-grid-treedata/config"
	"github.com/chwzr/ag-grid-treedata/treedata"
)

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
levels:
  - [A, B]
  - [x, y, z]
`))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"A", "B"}, {"x", "y", "z"}}, cfg.Levels)
	require.Equal(t, treedata.DefaultConstraint, cfg.Constraint)
	require.Equal(t, treedata.DefaultPeriods, cfg.Periods)
	require.Equal(t, treedata.Range{Min: 100, Max: 1000}, cfg.Range)
	require.False(t, cfg.IncludeRel)
}

func TestParse_AllFields(t *testing.T) {
	cfg, err := config.Parse([]byte(`
levels: [[EMEA, APAC]]
constraint: 1000
periods: [q1, q2]
range: {min: 5, max: 50}
includeRel: true
`))
	require.NoError(t, err)
	require.Equal(t, int64(1000), cfg.Constraint)
	require.Equal(t, []string{"q1", "q2"}, cfg.Periods)
	require.Equal(t, treedata.Range{Min: 5, Max: 50}, cfg.Range)
	require.True(t, cfg.IncludeRel)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		validation bool
	}{
		{"empty document", ``, true},
		{"empty level", "levels: [[A], []]", true},
		{"inverted range", "levels: [[A]]\nrange: {min: 9, max: 1}", true},
		{"unknown key", "levels: [[A]]\nconstrain: 5", false},
		{"malformed", "levels: [[A]", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.Error(t, err)
			if tc.validation {
				require.ErrorIs(t, err, treedata.ErrValidation)
			} else {
				require.NotErrorIs(t, err, treedata.ErrValidation)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "treedata.yaml")
	want := treedata.ExampleConfig()

	require.NoError(t, config.Save(path, want))
	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	err := config.Save(path, treedata.DefaultConfig())
	require.ErrorIs(t, err, treedata.ErrValidation)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
