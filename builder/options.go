// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// options.go: functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the configuration shared by all constructors of
// one BuildGraph call.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to every constructor.
type builderConfig struct {
	// rng drives stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded RNG; same seed ⇒ same graph.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
