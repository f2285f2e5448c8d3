// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn   = DefaultIDFn   ("0","1","2",...)
//   • rng    = nil           (pure/deterministic unless seeded)
//   • labels = DegreeLabels  (label = vertex degree)

package builder

import "math/rand"

// centerVertexID is the fixed hub ID used by Star and Wheel.
const centerVertexID = "Center"

// builderConfig aggregates all knobs used by constructors and label schemes.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Label assignment applied after all constructors ran.
	labels LabelScheme
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		labels: DegreeLabels(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
