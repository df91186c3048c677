// SPDX-License-Identifier: MIT
// Package: treedata
//
// sampler.go - Value Sampler: raw, pre-normalization series for one entry.
//
// Contract:
//   - Per period, in Periods order:
//       plan     = uniform integer in [Range.Min, Range.Max]
//       forecast = round(plan * (1 + v)),  v uniform in [-ForecastSpread, ForecastSpread]
//       rel      = uniform integer in [RelMin, RelMax]   (only if IncludeRel)
//   - Draw order per period is plan, v, rel; the stream is consumed
//     sequentially, so a seeded source yields identical datasets.
//   - Entries are sampled independently of each other.
//
// Complexity: O(P) time and space per entry, P = len(Periods).

package treedata

// SampleFn produces the raw series for the entry at path.
type SampleFn func(path []string) map[Series]SeriesValues

// Sampler draws raw values for one entry.
type Sampler struct {
	Periods    []string
	Range      Range
	IncludeRel bool
}

// NewSampler derives a Sampler from cfg.
func NewSampler(cfg Config) Sampler {
	return Sampler{Periods: cfg.Periods, Range: cfg.Range, IncludeRel: cfg.IncludeRel}
}

// Sample draws one entry's series from rng.
func (s Sampler) Sample(rng RandSource) map[Series]SeriesValues {
	values := make(map[Series]SeriesValues, 3)
	plan := make(SeriesValues, len(s.Periods))
	forecast := make(SeriesValues, len(s.Periods))
	values[SeriesPlan] = plan
	values[SeriesForecast] = forecast

	var rel SeriesValues
	if s.IncludeRel {
		rel = make(SeriesValues, len(s.Periods))
		values[SeriesRel] = rel
	}

	for _, p := range s.Periods {
		base := uniformInt(rng, s.Range.Min, s.Range.Max)
		plan[p] = base

		// v ∈ [-spread, spread): Float64 is half-open at 1.
		v := (rng.Float64()*2 - 1) * ForecastSpread
		forecast[p] = roundHalfUp(float64(base) * (1 + v))

		if rel != nil {
			rel[p] = uniformInt(rng, RelMin, RelMax)
		}
	}

	return values
}

// Func binds the sampler to rng, ignoring the entry path.
func (s Sampler) Func(rng RandSource) SampleFn {
	return func([]string) map[Series]SeriesValues {
		return s.Sample(rng)
	}
}

// uniformInt returns a uniform integer in [lo, hi]; lo ≤ hi and the span
// must fit in int64 (enforced by Config.Validate).
func uniformInt(rng RandSource, lo, hi int64) int64 {
	if lo == hi {
		return lo
	}

	return lo + rng.Int63n(hi-lo+1)
}
