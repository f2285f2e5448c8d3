// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// impl_star.go: Star(n), hub "Center" plus n-1 leaves 0..n-2.
//
// Degree labels already separate hub and leaves; WL refinement adds no new
// split, which makes Star a convenient fixed point in tests.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlkernel/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with center "Center".
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		if err := addVertices(g, methodStar, n-1, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodStar, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
