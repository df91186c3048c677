// SPDX-License-Identifier: MIT
// Package: treedata
//
// options.go - functional options for GenerateTree.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors PANIC on meaningless inputs (nil rng/logger/...).
//     GenerateTree itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through genConfig.
//
// Hints:
//   • Prefer WithSeed in tests and golden files.
//   • WithSampler replaces the Value Sampler entirely (fixtures, replay).
//   • WithObserver feeds metrics; WithLogger feeds debug logs.

package treedata

import (
	"log/slog"
	"math/rand"
)

// Option customizes a GenerateTree call by mutating a genConfig before
// generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// WithRand provides an explicit random source.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r RandSource) Option {
	if r == nil {
		panic("treedata: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes generation debug logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("treedata: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.logger = l
	}
}

// WithObserver reports enumeration and normalization events to o.
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("treedata: WithObserver(nil)")
	}
	return func(c *genConfig) {
		c.observer = o
	}
}

// WithSampler overrides the per-entry sampler. fn must return the series
// for the given path and is called exactly once per entry, in enumeration
// order. Panics on nil.
func WithSampler(fn SampleFn) Option {
	if fn == nil {
		panic("treedata: WithSampler(nil)")
	}
	return func(c *genConfig) {
		c.sampleFn = fn
	}
}
