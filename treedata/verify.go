// SPDX-License-Identifier: MIT
// Package: treedata
//
// verify.go - invariant checker for generated (or decoded) datasets.
//
// Checks, in order, reporting the first violation as ErrInvariant:
//   1. count: len(entries) == Σ_{k=1..d} Π_{i=1..k} |L_i|
//   2. path:  1 ≤ len(path) ≤ d, each label belongs to its level, paths are
//             unique, every non-root parent path is present
//   3. sum:   every sibling group sums to Constraint for plan and forecast,
//             for every period
//   4. rel:   present iff IncludeRel, within [RelMin, RelMax]
//
// Complexity: O(N · (d + P)).

package treedata

// Verify reports whether entries satisfy the dataset invariants for cfg.
func Verify(entries []Entry, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return methodErrorf(MethodVerify, "%w", err)
	}
	if want := cfg.ExpectedEntries(); len(entries) != want {
		return methodErrorf(MethodVerify, "entry count %d, want %d: %w", len(entries), want, ErrInvariant)
	}
	// the checkers tag their own errors
	if err := verifyPaths(entries, cfg.Levels); err != nil {
		return err
	}
	if err := verifySums(entries, cfg); err != nil {
		return err
	}

	return verifyRel(entries, cfg)
}

func verifyPaths(entries []Entry, levels [][]string) error {
	// label membership per depth
	allowed := make([]map[string]bool, len(levels))
	for i, level := range levels {
		allowed[i] = make(map[string]bool, len(level))
		for _, label := range level {
			allowed[i][label] = true
		}
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Depth() < 1 || e.Depth() > len(levels) {
			return methodErrorf(MethodVerify, "path %q has depth %d outside [1,%d]: %w",
				FormatPath(e.Path), e.Depth(), len(levels), ErrInvariant)
		}
		for i, label := range e.Path {
			if !allowed[i][label] {
				return methodErrorf(MethodVerify, "path %q: label %q not in level %d: %w",
					FormatPath(e.Path), label, i+1, ErrInvariant)
			}
		}
		key := pathKey(e.Path)
		if seen[key] {
			return methodErrorf(MethodVerify, "duplicate path %q: %w", FormatPath(e.Path), ErrInvariant)
		}
		seen[key] = true
	}

	for _, e := range entries {
		if parent := e.Parent(); parent != nil && !seen[pathKey(parent)] {
			return methodErrorf(MethodVerify, "path %q has no parent entry: %w", FormatPath(e.Path), ErrInvariant)
		}
	}

	return nil
}

func verifySums(entries []Entry, cfg Config) error {
	for depth := 1; depth <= cfg.MaxDepth(); depth++ {
		for _, g := range groupByParent(entries, depth) {
			for _, p := range cfg.Periods {
				for _, s := range normalizedSeries {
					got, ok := checkedSum(entries, g.members, s, p)
					if !ok {
						return methodErrorf(MethodVerify, "%s under %q, period %q leaves ±%d: %w",
							s, FormatPath(g.parent), p, MaxSafeMagnitude, ErrInvariant)
					}
					if got != cfg.Constraint {
						return methodErrorf(MethodVerify, "%s under %q, period %q sums to %d, want %d: %w",
							s, FormatPath(g.parent), p, got, cfg.Constraint, ErrInvariant)
					}
				}
			}
		}
	}

	return nil
}

func verifyRel(entries []Entry, cfg Config) error {
	for _, e := range entries {
		rel, ok := e.Values[SeriesRel]
		if !cfg.IncludeRel {
			if ok {
				return methodErrorf(MethodVerify, "path %q carries rel but it was not requested: %w",
					FormatPath(e.Path), ErrInvariant)
			}
			continue
		}
		for _, p := range cfg.Periods {
			v, ok := rel[p]
			if !ok || v < RelMin || v > RelMax {
				return methodErrorf(MethodVerify, "path %q rel[%s]=%d outside [%d,%d]: %w",
					FormatPath(e.Path), p, v, RelMin, RelMax, ErrInvariant)
			}
		}
	}

	return nil
}
