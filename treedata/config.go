// SPDX-License-Identifier: MIT
// Package: treedata
//
// config.go - runtime knobs of a GenerateTree call and their defaults.
//
// Defaults:
//   • rng      = time-seeded *rand.Rand  (fresh dataset per call)
//   • logger   = discard                 (library stays silent)
//   • observer = NopObserver
//   • sampleFn = nil                     (Sampler built from Config)

package treedata

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// RandSource is the random stream consumed by the sampler.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Int63n returns a uniform int64 in [0, n); n > 0.
	Int63n(n int64) int64
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// Observer receives generation events. Implementations must be cheap;
// they run inline with generation.
type Observer interface {
	// EntriesEnumerated reports the entry count after enumeration.
	EntriesEnumerated(n int)
	// GroupNormalized reports one rescaled (group, period, series) triple
	// and the residual placed on its last member.
	GroupNormalized(depth int, series Series, period string, residual int64)
	// GenerationDone reports the outcome of a GenerateTree call.
	GenerationDone(entries int, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) EntriesEnumerated(int)                     {}
func (NopObserver) GroupNormalized(int, Series, string, int64) {}
func (NopObserver) GenerationDone(int, error)                 {}

// genConfig aggregates the runtime knobs of one GenerateTree call.
type genConfig struct {
	rng      RandSource
	logger   *slog.Logger
	observer Observer
	sampleFn SampleFn
}

// newGenConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve lazily so a seeded option never pays for the default source.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}
