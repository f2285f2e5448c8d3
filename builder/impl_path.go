// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// impl_path.go: Path(n), the chain 0-1-...-(n-1).
//
// Under degree labels the two endpoints get "1" and the interior "2"; each
// WL round then tells apart one more layer counted from the ends, so P_n
// stabilizes after about n/2 rounds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlkernel/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodPath, n, cfg.idFn); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
