// SPDX-License-Identifier: MIT
// Package: treedata
//
// types.go - dataset model: series, entries and the generation config.
//
// Contract:
//   - Entry.Path identifies a node from the root; len(Path) is its depth.
//   - Siblings share Path[:len(Path)-1] (the parent path).
//   - Values maps a series to per-period integer magnitudes.
//   - Config is plain data; runtime knobs (rng, logger, observer) are Options.

package treedata

import (
	"strconv"
	"strings"
)

// Series names one numeric signal carried by every entry.
type Series string

const (
	// SeriesPlan is the base sample, normalized per sibling group.
	SeriesPlan Series = "plan"
	// SeriesForecast is plan perturbed by ±5%, normalized per sibling group.
	SeriesForecast Series = "forecast"
	// SeriesRel is an independent raw sample in [RelMin, RelMax]; never normalized.
	SeriesRel Series = "rel"
)

// normalizedSeries lists the series rescaled by NormalizeLevel, in processing order.
var normalizedSeries = []Series{SeriesPlan, SeriesForecast}

// SeriesValues maps a period key to the series magnitude for that period.
type SeriesValues map[string]int64

// Entry is one node of the generated tree.
type Entry struct {
	// Path from the root to this node, length 1..len(levels).
	Path []string `json:"path" yaml:"path"`
	// Values per series; rel is present only when requested.
	Values map[Series]SeriesValues `json:"values" yaml:"values"`
}

// Depth returns the node depth (1 for root-level entries).
func (e Entry) Depth() int { return len(e.Path) }

// Parent returns the parent path, or nil for a root-level entry.
func (e Entry) Parent() []string {
	if len(e.Path) <= 1 {
		return nil
	}

	return e.Path[:len(e.Path)-1]
}

// Value returns the magnitude of series s at period p (0 when absent).
func (e Entry) Value(s Series, p string) int64 {
	return e.Values[s][p]
}

// Range is the inclusive sampling interval for base plan values.
type Range struct {
	Min int64 `json:"min" yaml:"min"`
	Max int64 `json:"max" yaml:"max" validate:"gtefield=Min"`
}

// Config describes the dataset to generate.
//
// Start from DefaultConfig and override fields; the zero value of a field is
// taken literally (a zero Constraint means every group sums to 0).
type Config struct {
	// Levels are the label sets per depth; validated by validateLevels.
	Levels [][]string `json:"levels" yaml:"levels"`
	// Constraint is the exact per-group sum for plan and forecast.
	Constraint int64 `json:"constraint" yaml:"constraint"`
	// Periods are the sampled period keys, in iteration order.
	Periods []string `json:"periods" yaml:"periods" validate:"min=1,unique,dive,required"`
	// Range bounds the raw plan samples.
	Range Range `json:"range" yaml:"range"`
	// IncludeRel attaches the raw rel series.
	IncludeRel bool `json:"includeRel" yaml:"includeRel"`
}

// DefaultConfig returns a Config with the documented defaults and no levels.
func DefaultConfig() Config {
	periods := make([]string, len(DefaultPeriods))
	copy(periods, DefaultPeriods)

	return Config{
		Constraint: DefaultConstraint,
		Periods:    periods,
		Range:      Range{Min: DefaultRangeMin, Max: DefaultRangeMax},
	}
}

// MaxDepth returns the number of levels, i.e. the deepest path length.
func (c Config) MaxDepth() int { return len(c.Levels) }

// ExpectedEntries returns Σ_{k=1..d} Π_{i=1..k} |Levels[i]|.
func (c Config) ExpectedEntries() int {
	total, width := 0, 1
	for _, level := range c.Levels {
		width *= len(level)
		total += width
	}

	return total
}

// pathKey renders a path as an unambiguous map key.
// Each label is quoted, so separators inside labels cannot collide.
func pathKey(path []string) string {
	var b strings.Builder
	for i, label := range path {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strconv.Quote(label))
	}

	return b.String()
}

// FormatPath renders a path for humans and error messages ("A/x/1").
func FormatPath(path []string) string {
	return strings.Join(path, "/")
}
