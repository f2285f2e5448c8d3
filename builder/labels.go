// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// labels.go: label schemes applied after topology construction.
//
// Contract:
//   • A LabelScheme is consulted once per vertex, in sorted vertex-ID order.
//   • Schemes return sentinel errors (never panic) when they cannot label.
//   • Stochastic schemes draw only from the rng handed in by BuildGraph.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/wlkernel/core"
)

const methodLabels = "Labels"

// VertexInfo describes the vertex a LabelScheme is asked to label.
type VertexInfo struct {
	// Index is the position of the vertex in sorted vertex-ID order.
	Index int
	// ID is the vertex identifier.
	ID string
	// Degree is the number of distinct neighbors.
	Degree int
}

// LabelScheme maps a vertex to its raw label.
type LabelScheme func(v VertexInfo, rng *rand.Rand) (string, error)

// DegreeLabels labels every vertex with its degree ("0","1",...).
func DegreeLabels() LabelScheme {
	return func(v VertexInfo, _ *rand.Rand) (string, error) {
		return strconv.Itoa(v.Degree), nil
	}
}

// ConstantLabels gives every vertex the same label.
func ConstantLabels(label string) LabelScheme {
	return func(VertexInfo, *rand.Rand) (string, error) {
		return label, nil
	}
}

// CyclicLabels walks the alphabet in vertex order: alphabet[Index % len].
func CyclicLabels(alphabet ...string) LabelScheme {
	return func(v VertexInfo, _ *rand.Rand) (string, error) {
		if len(alphabet) == 0 {
			return "", fmt.Errorf("%s: cyclic: %w", methodLabels, ErrEmptyAlphabet)
		}
		return alphabet[v.Index%len(alphabet)], nil
	}
}

// RandomLabels draws each label uniformly from alphabet. Requires a seeded RNG.
func RandomLabels(alphabet ...string) LabelScheme {
	return func(_ VertexInfo, rng *rand.Rand) (string, error) {
		if len(alphabet) == 0 {
			return "", fmt.Errorf("%s: random: %w", methodLabels, ErrEmptyAlphabet)
		}
		if rng == nil {
			return "", fmt.Errorf("%s: random: %w", methodLabels, ErrNeedRandSource)
		}
		return alphabet[rng.Intn(len(alphabet))], nil
	}
}

// applyLabels runs cfg.labels over every vertex of g in sorted ID order.
// Complexity: O(V log V) for the sorted vertex list plus one SetLabel per vertex.
func applyLabels(g *core.Graph, cfg builderConfig) error {
	for idx, id := range g.Vertices() {
		deg, err := g.Degree(id)
		if err != nil {
			return fmt.Errorf("%s: Degree(%s): %w", methodLabels, id, err)
		}
		label, err := cfg.labels(VertexInfo{Index: idx, ID: id, Degree: deg}, cfg.rng)
		if err != nil {
			return err
		}
		if err = g.SetLabel(id, label); err != nil {
			return fmt.Errorf("%s: SetLabel(%s): %w", methodLabels, id, err)
		}
	}

	return nil
}
