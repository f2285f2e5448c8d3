// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// impl_complete.go: Complete(n), every unordered pair i<j joined.
// K_1 is a single isolated vertex. O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlkernel/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodComplete, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
