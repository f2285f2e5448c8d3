// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// shapes.go: name-based constructor lookup for config-driven callers.

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// Shape names accepted by ByName.
const (
	ShapePath     = "path"
	ShapeCycle    = "cycle"
	ShapeStar     = "star"
	ShapeWheel    = "wheel"
	ShapeComplete = "complete"
	ShapeGrid     = "grid"
)

var shapes = map[string]func(size int) Constructor{
	ShapePath:     Path,
	ShapeCycle:    Cycle,
	ShapeStar:     Star,
	ShapeWheel:    Wheel,
	ShapeComplete: Complete,
	ShapeGrid:     func(size int) Constructor { return Grid(size, size) },
}

// ByName resolves a shape name (case-insensitive) and size into a Constructor.
// For "grid" the size is the side length of a square grid.
func ByName(shape string, size int) (Constructor, error) {
	mk, ok := shapes[strings.ToLower(strings.TrimSpace(shape))]
	if !ok {
		return nil, fmt.Errorf("ByName: %q (known: %s): %w", shape, strings.Join(Shapes(), ", "), ErrUnknownShape)
	}

	return mk(size), nil
}

// Shapes lists the known shape names in sorted order.
func Shapes() []string {
	out := make([]string, 0, len(shapes))
	for name := range shapes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
