// SPDX-License-Identifier: MIT
// Package: treedata
//
// enumerate.go - Path Enumerator: one entry for every prefix path.
//
// Contract:
//   - levels non-empty, every level non-empty with distinct labels
//     (else *ValidationError, before sample is ever called).
//   - Emits an entry at EVERY depth, not only at the leaves.
//   - Depth-first pre-order: a node precedes its children; children of one
//     parent follow the child level's label order. The normalizer relies on
//     that order to pick the sibling that absorbs the rounding residual.
//   - sample is invoked exactly once per entry, in emission order.
//
// Complexity:
//   - Time:  O(N · d) for N = Σ_{k=1..d} Π_{i=1..k} |L_i| (path copies).
//   - Space: O(N · d) for the paths; recursion depth d.

package treedata

// EnumeratePaths walks the label tree described by levels and returns one
// entry per node with its raw values from sample.
func EnumeratePaths(levels [][]string, sample SampleFn) ([]Entry, error) {
	if err := validateLevels(levels); err != nil {
		return nil, methodErrorf(MethodEnumeratePaths, "%w", err)
	}
	if sample == nil {
		return nil, methodErrorf(MethodEnumeratePaths, "nil sampler: %w",
			&ValidationError{Field: "sampler", Reason: "must not be nil"})
	}

	w := &pathWalker{
		levels:  levels,
		sample:  sample,
		entries: make([]Entry, 0, Config{Levels: levels}.ExpectedEntries()),
	}
	w.walk(nil, 0)

	return w.entries, nil
}

// pathWalker carries the walk state so the recursion stays explicit.
type pathWalker struct {
	levels  [][]string
	sample  SampleFn
	entries []Entry
}

// walk emits every child of prefix at level depth, each followed by its
// own subtree.
func (w *pathWalker) walk(prefix []string, depth int) {
	if depth == len(w.levels) {
		return
	}
	for _, label := range w.levels[depth] {
		path := extendPath(prefix, label)
		w.entries = append(w.entries, Entry{Path: path, Values: w.sample(path)})
		w.walk(path, depth+1)
	}
}
