// SPDX-License-Identifier: MIT
// Package: treedata
//
// normalize.go - Level Normalizer: exact sibling sums at one depth.
//
// Contract:
//   - Only entries with len(Path) == depth are touched; only plan and
//     forecast are rescaled; Path and rel are never modified.
//   - Groups are keyed by parent path (depth 1 ⇒ a single root group).
//     Groups and their members keep enumeration order.
//   - Per group, per period, per series:
//       sum      = Σ values
//       scale    = constraint / sum
//       value    = round(value · scale)          (round half up)
//       residual = constraint − Σ rounded values → added to the LAST member
//   - A zero sum anywhere at this depth fails with *DegenerateGroupError,
//     and a value or sum beyond ±MaxSafeMagnitude with *ValidationError,
//     before any value is changed.
//   - Idempotent: a group already summing to constraint has scale 1 and
//     residual 0.
//
// Complexity:
//   - Time:  O(n · P) for n entries at depth and P periods (two passes).
//   - Space: O(n) for the grouping.

package treedata

import "fmt"

// LevelStats summarizes one NormalizeLevel pass.
type LevelStats struct {
	Depth   int // normalized depth
	Groups  int // sibling groups at this depth
	Entries int // entries at this depth
	// Adjusted counts (group, period, series) triples whose rounding left a
	// non-zero residual on the last sibling.
	Adjusted int
}

// siblingGroup is the ordered member list of one parent.
type siblingGroup struct {
	parent  []string
	members []int // indexes into the entry slice, in enumeration order
}

// NormalizeLevel rescales every sibling group at depth so that plan and
// forecast sum to constraint for each period. entries are modified in place.
func NormalizeLevel(entries []Entry, depth int, periods []string, constraint int64) (LevelStats, error) {
	return normalizeLevel(entries, depth, periods, constraint, NopObserver{})
}

func normalizeLevel(entries []Entry, depth int, periods []string, constraint int64, obs Observer) (LevelStats, error) {
	stats := LevelStats{Depth: depth}
	if depth < 1 {
		return stats, methodErrorf(MethodNormalizeLevel, "%w",
			&ValidationError{Field: "depth", Reason: "must be >= 1"})
	}

	if constraint > MaxSafeMagnitude || constraint < -MaxSafeMagnitude {
		return stats, methodErrorf(MethodNormalizeLevel, "%w", &ValidationError{
			Field: "constraint", Reason: fmt.Sprintf("must be within ±%d", MaxSafeMagnitude)})
	}

	groups := groupByParent(entries, depth)
	stats.Groups = len(groups)

	// Pass 1: reject degenerate groups before mutating anything.
	for _, g := range groups {
		stats.Entries += len(g.members)
		for _, p := range periods {
			for _, s := range normalizedSeries {
				sum, ok := checkedSum(entries, g.members, s, p)
				if !ok {
					// only reachable through WithSampler or hand-built entries
					return stats, methodErrorf(MethodNormalizeLevel, "%w", &ValidationError{
						Field:  "values." + string(s),
						Reason: fmt.Sprintf("group under %q, period %q leaves ±%d", FormatPath(g.parent), p, MaxSafeMagnitude),
					})
				}
				if sum == 0 {
					return stats, methodErrorf(MethodNormalizeLevel, "%w", &DegenerateGroupError{
						Depth: depth, Parent: g.parent, Period: p, Series: s,
					})
				}
				// |value·scale| must stay exact as well
				scaled := float64(maxAbsSeries(entries, g.members, s, p)) *
					float64(absInt64(constraint)) / float64(absInt64(sum))
				if scaled > float64(MaxSafeMagnitude) {
					return stats, methodErrorf(MethodNormalizeLevel, "%w", &ValidationError{
						Field:  "values." + string(s),
						Reason: fmt.Sprintf("group under %q, period %q rescales beyond ±%d", FormatPath(g.parent), p, MaxSafeMagnitude),
					})
				}
			}
		}
	}

	// Pass 2: rescale, round, reconcile.
	for _, g := range groups {
		for _, p := range periods {
			for _, s := range normalizedSeries {
				residual := rescaleGroup(entries, g.members, s, p, constraint)
				if residual != 0 {
					stats.Adjusted++
				}
				obs.GroupNormalized(depth, s, p, residual)
			}
		}
	}

	return stats, nil
}

// rescaleGroup scales series s at period p over members to sum to
// constraint and returns the residual placed on the last member.
// The caller guarantees a non-zero current sum.
func rescaleGroup(entries []Entry, members []int, s Series, p string, constraint int64) int64 {
	scale := float64(constraint) / float64(sumSeries(entries, members, s, p))

	var rounded int64
	for _, i := range members {
		v := roundHalfUp(float64(entries[i].Values[s][p]) * scale)
		ensureSeries(&entries[i], s)[p] = v
		rounded += v
	}

	residual := constraint - rounded
	last := members[len(members)-1]
	ensureSeries(&entries[last], s)[p] += residual

	return residual
}

// groupByParent partitions the entries at depth by parent path, keeping
// first-seen group order and member order.
func groupByParent(entries []Entry, depth int) []siblingGroup {
	var (
		groups []siblingGroup
		index  = make(map[string]int)
	)
	for i := range entries {
		if len(entries[i].Path) != depth {
			continue
		}
		parent := entries[i].Parent()
		key := pathKey(parent)
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, siblingGroup{parent: parent})
		}
		groups[gi].members = append(groups[gi].members, i)
	}

	return groups
}
