// SPDX-License-Identifier: MIT

// Package builder constructs deterministic labeled graph fixtures on top of
// core.Graph: paths, cycles, stars, wheels, complete graphs, grids and
// seeded random sparse graphs.
//
// A fixture is assembled by BuildGraph from one or more Constructor values.
// Constructors only emit topology; once every constructor has run, the
// configured LabelScheme assigns a raw label to every vertex. The default
// scheme labels a vertex with its degree, which is the usual starting point
// for Weisfeiler–Lehman experiments on unlabeled structure.
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithLabels(builder.CyclicLabels("C", "N", "O"))},
//	    builder.Cycle(6),
//	)
//
// Determinism: the same constructors, options and seed always produce the
// same vertex IDs, edges and labels.
package builder
