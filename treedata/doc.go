// Package treedata generates synthetic hierarchical datasets whose sibling
// values sum exactly to a fixed constraint at every level of the tree.
//
// A dataset is described by an ordered list of levels, each a set of labels.
// Every prefix of every label combination becomes one Entry, so the flat
// output carries both summary rows (shallow paths) and detail rows (deep
// paths) of the same hierarchy:
//
//	levels = [[A B] [x y]]
//
//	A        B
//	A/x A/y  B/x B/y
//
// Each entry carries per-period values for the series "plan", "forecast"
// and (optionally) "rel". After generation, for every group of siblings,
// every period and each of plan/forecast, the values add up to the
// configured constraint exactly. The rel series keeps its raw samples.
//
// The package offers the following components:
//
//   - Value sampler:     Sampler.Sample draws one entry's raw series.
//   - Path enumerator:   EnumeratePaths walks every prefix path depth-first.
//   - Level normalizer:  NormalizeLevel rescales sibling groups at one depth
//     and puts the rounding residual on the last sibling.
//   - Dataset builder:   GenerateTree runs the three in order.
//   - Verification:      Verify checks count, path and sum invariants.
//
// Determinism:
//
//	The random source is explicit. WithSeed or WithRand freezes every draw;
//	without them each call draws from a freshly seeded source. The sum
//	invariant holds regardless of the random stream.
//
// Usage:
//
//	cfg := treedata.DefaultConfig()
//	cfg.Levels = [][]string{{"EMEA", "APAC"}, {"Retail", "Online"}}
//	entries, err := treedata.GenerateTree(cfg, treedata.WithSeed(42))
//	if errors.Is(err, treedata.ErrValidation) {
//	    // bad levels/range/periods
//	}
//
// Complexity:
//
//   - Enumeration: O(N) entries where N = Σ_{k=1..d} Π_{i=1..k} |L_i|.
//   - Normalization: O(N · P) per depth sweep, P = number of periods.
package treedata
