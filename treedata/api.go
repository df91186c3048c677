// SPDX-License-Identifier: MIT
// Package: treedata
//
// api.go - Dataset Builder: the public entry point.
//
// Design contract (strict):
//   - One orchestrator: GenerateTree(cfg, opts...). Validates cfg, enumerates
//     every prefix path with the Value Sampler, then runs the Level
//     Normalizer for depth 1..d in increasing order.
//   - Functional options resolve into a private genConfig (no global state).
//   - Determinism: same cfg + same seed ⇒ identical entries.
//   - Safety: never panics; returns *ValidationError / *DegenerateGroupError
//     wrapped with "GenerateTree: %w". No partial output on error.

package treedata

import (
	"time"
)

// GenerateTree builds the flat entry collection described by cfg.
//
// Errors:
//   - ErrValidation: cfg rejected before any sampling.
//   - ErrDegenerateGroup: a sibling group summed to zero for some period.
//
// Complexity: O(N · (d + P)) time, N entries, d levels, P periods.
func GenerateTree(cfg Config, opts ...Option) ([]Entry, error) {
	gc := newGenConfig(opts...)

	entries, err := generate(cfg, gc)
	gc.observer.GenerationDone(len(entries), err)
	if err != nil {
		return nil, methodErrorf(MethodGenerateTree, "%w", err)
	}

	return entries, nil
}

func generate(cfg Config, gc genConfig) ([]Entry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	log := gc.logger.With("levels", len(cfg.Levels), "periods", len(cfg.Periods))
	log.Debug("generating tree", "constraint", cfg.Constraint, "include_rel", cfg.IncludeRel)

	sample := gc.sampleFn
	if sample == nil {
		sample = NewSampler(cfg).Func(gc.rng)
	}

	entries, err := EnumeratePaths(cfg.Levels, sample)
	if err != nil {
		return nil, err
	}
	gc.observer.EntriesEnumerated(len(entries))

	// Shallow levels first; groups at each depth are independent.
	for depth := 1; depth <= cfg.MaxDepth(); depth++ {
		stats, err := normalizeLevel(entries, depth, cfg.Periods, cfg.Constraint, gc.observer)
		if err != nil {
			return nil, err
		}
		log.Debug("level normalized",
			"depth", stats.Depth, "groups", stats.Groups,
			"entries", stats.Entries, "adjusted", stats.Adjusted)
	}

	log.Debug("tree generated", "entries", len(entries), "elapsed", time.Since(start))

	return entries, nil
}

// ExampleLevels is the fixed demonstration hierarchy used by GenerateExample:
// region → channel → product line.
var ExampleLevels = [][]string{
	{"EMEA", "Americas", "APAC"},
	{"Retail", "Wholesale", "Online"},
	{"Hardware", "Software", "Services"},
}

// ExampleConfig returns DefaultConfig with ExampleLevels and rel enabled.
func ExampleConfig() Config {
	cfg := DefaultConfig()
	cfg.Levels = make([][]string, len(ExampleLevels))
	for i, level := range ExampleLevels {
		cfg.Levels[i] = append([]string(nil), level...)
	}
	cfg.IncludeRel = true

	return cfg
}

// GenerateExample is a convenience wrapper: GenerateTree(ExampleConfig(), opts...).
func GenerateExample(opts ...Option) ([]Entry, error) {
	return GenerateTree(ExampleConfig(), opts...)
}
