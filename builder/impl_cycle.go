// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// impl_cycle.go: Cycle(n), the ring 0-1-...-(n-1)-0.
//
// C_n is 2-regular. With degree or constant labels every WL round maps all
// vertices to one code, so cycles of equal length are indistinguishable and
// C_6 and two disjoint C_3 are too.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlkernel/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodCycle, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
