// Package treedata provides internal helpers shared by the sampler, the
// normalizer and the verifier.
package treedata

import "math"

// roundHalfUp rounds x to the nearest integer, halves toward +∞
// (2.5 → 3, -2.5 → -2).
// Complexity: O(1).
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// extendPath returns a fresh slice prefix+label; prefix is never aliased.
func extendPath(prefix []string, label string) []string {
	path := make([]string, len(prefix)+1)
	copy(path, prefix)
	path[len(prefix)] = label

	return path
}

// sumSeries adds series s at period p over the entries at idx.
func sumSeries(entries []Entry, idx []int, s Series, p string) int64 {
	var total int64
	for _, i := range idx {
		total += entries[i].Values[s][p]
	}

	return total
}

// ensureSeries returns e's values for s, allocating missing maps so a
// custom sampler that omits a series cannot cause a nil-map write.
func ensureSeries(e *Entry, s Series) SeriesValues {
	if e.Values == nil {
		e.Values = make(map[Series]SeriesValues, 3)
	}
	sv := e.Values[s]
	if sv == nil {
		sv = make(SeriesValues)
		e.Values[s] = sv
	}

	return sv
}

// absInt64 returns |x|; callers keep x within ±MaxSafeMagnitude.
func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// checkedSum is sumSeries for untrusted entries: ok is false when any value
// or partial sum leaves ±MaxSafeMagnitude.
func checkedSum(entries []Entry, idx []int, s Series, p string) (total int64, ok bool) {
	for _, i := range idx {
		v := entries[i].Values[s][p]
		if v > MaxSafeMagnitude || v < -MaxSafeMagnitude {
			return 0, false
		}
		total += v
		if total > MaxSafeMagnitude || total < -MaxSafeMagnitude {
			return 0, false
		}
	}

	return total, true
}

// maxAbsSeries returns the largest |value| of series s at period p over idx.
func maxAbsSeries(entries []Entry, idx []int, s Series, p string) int64 {
	var m int64
	for _, i := range idx {
		m = max(m, absInt64(entries[i].Values[s][p]))
	}

	return m
}
